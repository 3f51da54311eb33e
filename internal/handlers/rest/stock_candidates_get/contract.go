//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_candidates_get_test
package stock_candidates_get

import (
	"context"

	"fleetdesk/internal/entities"
	"fleetdesk/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListCandidates(ctx context.Context) (map[int64][]entities.Order, error)
}
