//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_requests_get_test
package delivery_requests_get

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
	GetDeliveryRequests(ctx context.Context, ownerID *string) ([]entities.DeliveryRequest, error)
}
