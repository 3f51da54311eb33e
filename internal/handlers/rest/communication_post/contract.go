//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=communication_post_test
package communication_post

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
	AddCommunication(ctx context.Context, communicationModifyEntity entities.CommunicationModify) (*entities.Communication, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}
