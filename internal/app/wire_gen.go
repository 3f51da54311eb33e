// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"fleetdesk/internal/gateway/kafka/orderevents"
	"fleetdesk/internal/handlers/rest/communication_post"
	"fleetdesk/internal/handlers/rest/communications_get"
	"fleetdesk/internal/handlers/rest/dashboard_metrics_get"
	"fleetdesk/internal/handlers/rest/delivery_request_post"
	"fleetdesk/internal/handlers/rest/delivery_request_status_post"
	"fleetdesk/internal/handlers/rest/delivery_requests_get"
	"fleetdesk/internal/handlers/rest/notification_read_post"
	"fleetdesk/internal/handlers/rest/notifications_get"
	"fleetdesk/internal/handlers/rest/order_get"
	"fleetdesk/internal/handlers/rest/order_post"
	"fleetdesk/internal/handlers/rest/order_status_post"
	"fleetdesk/internal/handlers/rest/orders_get"
	"fleetdesk/internal/handlers/rest/stock_candidates_get"
	"fleetdesk/internal/handlers/rest/stock_get"
	"fleetdesk/internal/handlers/rest/stock_post"
	"fleetdesk/internal/handlers/rest/stock_put"
	"fleetdesk/internal/handlers/rest/stock_reserve_post"
	"fleetdesk/internal/handlers/tasks/match_scan"
	"fleetdesk/internal/pkg/config"
	"fleetdesk/internal/repository/communication"
	"fleetdesk/internal/repository/dashboard"
	"fleetdesk/internal/repository/deliveryrequest"
	"fleetdesk/internal/repository/matching"
	notification2 "fleetdesk/internal/repository/notification"
	"fleetdesk/internal/repository/order"
	"fleetdesk/internal/repository/stock"
	communication2 "fleetdesk/internal/service/communication"
	dashboard2 "fleetdesk/internal/service/dashboard"
	deliveryrequest2 "fleetdesk/internal/service/deliveryrequest"
	"fleetdesk/internal/service/lifecycle"
	"fleetdesk/internal/service/matcher"
	"fleetdesk/internal/service/notification"
	order2 "fleetdesk/internal/service/order"
	stock2 "fleetdesk/internal/service/stock"
	"fleetdesk/pkg/background"
	"fleetdesk/pkg/logger"
	"fleetdesk/pkg/querier"
	"fleetdesk/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	order := provideServiceOrder(repository)
	gateway := provideOrderEventsGateway(producer, cfg)
	lifecycle := provideServiceLifecycle(log, repository, gateway)
	stockRepository := provideStockRepository(querier)
	stock := provideServiceStock(stockRepository)
	matchingRepository := provideMatchingRepository(querier)
	notificationRepository := provideNotificationRepository(querier)
	notification := provideServiceNotification(notificationRepository)
	manager := provideTxManager(pool)
	matcher := provideServiceMatcher(log, matchingRepository, gateway, notification, manager)
	dashboardRepository := provideDashboardRepository(querier)
	dashboard := provideServiceDashboard(dashboardRepository)
	deliveryrequestRepository := provideDeliveryRequestRepository(querier)
	deliveryRequest := provideServiceDeliveryRequest(log, deliveryrequestRepository, order, gateway)
	communicationRepository := provideCommunicationRepository(querier)
	communication := provideServiceCommunication(communicationRepository, order)
	matchScanInterval := provideMatchScanInterval(cfg)
	matchScan := provideMatchScanTask(log, matcher, matchScanInterval)
	v := provideTaskList(matchScan)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceOrder:           order,
		ServiceLifecycle:       lifecycle,
		ServiceStock:           stock,
		ServiceMatcher:         matcher,
		ServiceDashboard:       dashboard,
		ServiceDeliveryRequest: deliveryRequest,
		ServiceCommunication:   communication,
		ServiceNotification:    notification,
		BackgroundWorkers:      worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideNotificationRepository(querier)
	notification := provideServiceNotification(repository)
	kafkaWorkerApp := &KafkaWorkerApp{
		NotificationService: notification,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	MatchScanInterval time.Duration
)

type Application struct {
	ServiceOrder           ServiceOrder
	ServiceLifecycle       ServiceLifecycle
	ServiceStock           ServiceStock
	ServiceMatcher         ServiceMatcher
	ServiceDashboard       ServiceDashboard
	ServiceDeliveryRequest ServiceDeliveryRequest
	ServiceCommunication   ServiceCommunication
	ServiceNotification    ServiceNotification
	BackgroundWorkers      *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
}

type ServiceLifecycle interface {
	order_status_post.Service
}

type ServiceStock interface {
	stock_post.Service
	stock_get.Service
	stock_put.Service
}

type ServiceMatcher interface {
	stock_candidates_get.Service
	stock_reserve_post.Service
}

type ServiceDashboard interface {
	dashboard_metrics_get.Service
}

type ServiceDeliveryRequest interface {
	delivery_request_post.Service
	delivery_requests_get.Service
	delivery_request_status_post.Service
}

type ServiceCommunication interface {
	communication_post.Service
	communications_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

type KafkaWorkerApp struct {
	NotificationService *notification.Notification
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideStockRepository(querier2 *querier.Querier) *stock.Repository {
	return stock.New(querier2)
}

func provideMatchingRepository(querier2 *querier.Querier) *matching.Repository {
	return matching.New(querier2)
}

func provideDeliveryRequestRepository(querier2 *querier.Querier) *deliveryrequest.Repository {
	return deliveryrequest.New(querier2)
}

func provideCommunicationRepository(querier2 *querier.Querier) *communication.Repository {
	return communication.New(querier2)
}

func provideNotificationRepository(querier2 *querier.Querier) *notification2.Repository {
	return notification2.New(querier2)
}

func provideDashboardRepository(querier2 *querier.Querier) *dashboard.Repository {
	return dashboard.New(querier2)
}

func provideOrderEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *orderevents.Gateway {
	return orderevents.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrder(repository order2.Repository) *order2.Order {
	return order2.New(repository)
}

func provideServiceLifecycle(
	log logger.Logger,
	repository lifecycle.Repository,
	events lifecycle.EventPublisher,
) *lifecycle.Lifecycle {
	return lifecycle.New(log, repository, events)
}

func provideServiceStock(repository stock2.Repository) *stock2.Stock {
	return stock2.New(repository)
}

func provideServiceMatcher(
	log logger.Logger,
	repository matcher.Repository,
	events matcher.EventPublisher,
	notifications matcher.NotificationService,
	txManager matcher.TxManager,
) *matcher.Matcher {
	return matcher.New(log, repository, events, notifications, txManager)
}

func provideServiceDashboard(repository dashboard2.Repository) *dashboard2.Dashboard {
	return dashboard2.New(repository)
}

func provideServiceDeliveryRequest(
	log logger.Logger,
	repository deliveryrequest2.Repository,
	orderService deliveryrequest2.OrderService,
	events deliveryrequest2.EventPublisher,
) *deliveryrequest2.DeliveryRequest {
	return deliveryrequest2.New(log, repository, orderService, events)
}

func provideServiceCommunication(
	repository communication2.Repository,
	orderService communication2.OrderService,
) *communication2.Communication {
	return communication2.New(repository, orderService)
}

func provideServiceNotification(repository notification.Repository) *notification.Notification {
	return notification.New(repository)
}

func provideMatchScanInterval(cfg *config.Config) MatchScanInterval {
	return MatchScanInterval(cfg.Tasks.MatchScanInterval)
}

func provideMatchScanTask(
	log logger.Logger,
	matcherService match_scan.Service,
	interval MatchScanInterval,
) *match_scan.MatchScan {
	return match_scan.NewMatchScan(log, matcherService, time.Duration(interval))
}

func provideTaskList(
	matchScanTask *match_scan.MatchScan,
) []background.Task {
	return []background.Task{
		matchScanTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
