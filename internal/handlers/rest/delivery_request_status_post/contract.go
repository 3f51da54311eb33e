//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_request_status_post_test
package delivery_request_status_post

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
	UpdateStatus(ctx context.Context, requestID int64, target entities.DeliveryRequestStatusType) (*entities.DeliveryRequest, error)
}
