//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_metrics_get_test
package dashboard_metrics_get

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
	GetMetrics(ctx context.Context, viewer entities.User) (*entities.DashboardMetrics, error)
}
