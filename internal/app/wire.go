//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	orderEvents "fleetdesk/internal/gateway/kafka/orderevents"
	communication_post "fleetdesk/internal/handlers/rest/communication_post"
	communications_get "fleetdesk/internal/handlers/rest/communications_get"
	dashboard_metrics_get "fleetdesk/internal/handlers/rest/dashboard_metrics_get"
	delivery_request_post "fleetdesk/internal/handlers/rest/delivery_request_post"
	delivery_request_status_post "fleetdesk/internal/handlers/rest/delivery_request_status_post"
	delivery_requests_get "fleetdesk/internal/handlers/rest/delivery_requests_get"
	notification_read_post "fleetdesk/internal/handlers/rest/notification_read_post"
	notifications_get "fleetdesk/internal/handlers/rest/notifications_get"
	order_get "fleetdesk/internal/handlers/rest/order_get"
	order_post "fleetdesk/internal/handlers/rest/order_post"
	order_status_post "fleetdesk/internal/handlers/rest/order_status_post"
	orders_get "fleetdesk/internal/handlers/rest/orders_get"
	stock_candidates_get "fleetdesk/internal/handlers/rest/stock_candidates_get"
	stock_get "fleetdesk/internal/handlers/rest/stock_get"
	stock_post "fleetdesk/internal/handlers/rest/stock_post"
	stock_put "fleetdesk/internal/handlers/rest/stock_put"
	stock_reserve_post "fleetdesk/internal/handlers/rest/stock_reserve_post"
	"fleetdesk/internal/handlers/tasks/match_scan"
	"fleetdesk/internal/pkg/config"

	communicationRepo "fleetdesk/internal/repository/communication"
	dashboardRepo "fleetdesk/internal/repository/dashboard"
	deliveryRequestRepo "fleetdesk/internal/repository/deliveryrequest"
	matchingRepo "fleetdesk/internal/repository/matching"
	notificationRepo "fleetdesk/internal/repository/notification"
	orderRepo "fleetdesk/internal/repository/order"
	stockRepo "fleetdesk/internal/repository/stock"
	communicationService "fleetdesk/internal/service/communication"
	dashboardService "fleetdesk/internal/service/dashboard"
	deliveryRequestService "fleetdesk/internal/service/deliveryrequest"
	lifecycleService "fleetdesk/internal/service/lifecycle"
	matcherService "fleetdesk/internal/service/matcher"
	notificationService "fleetdesk/internal/service/notification"
	orderService "fleetdesk/internal/service/order"
	stockService "fleetdesk/internal/service/stock"

	"fleetdesk/pkg/background"
	"fleetdesk/pkg/logger"
	"fleetdesk/pkg/querier"
	"fleetdesk/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideMatchScanInterval,

		provideOrderRepository,
		provideStockRepository,
		provideMatchingRepository,
		provideDeliveryRequestRepository,
		provideCommunicationRepository,
		provideNotificationRepository,
		provideDashboardRepository,

		provideOrderEventsGateway,

		provideServiceOrder,
		provideServiceLifecycle,
		provideServiceStock,
		provideServiceMatcher,
		provideServiceDashboard,
		provideServiceDeliveryRequest,
		provideServiceCommunication,
		provideServiceNotification,

		provideMatchScanTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Lifecycle)),
		wire.Bind(new(ServiceStock), new(*stockService.Stock)),
		wire.Bind(new(ServiceMatcher), new(*matcherService.Matcher)),
		wire.Bind(new(ServiceDashboard), new(*dashboardService.Dashboard)),
		wire.Bind(new(ServiceDeliveryRequest), new(*deliveryRequestService.DeliveryRequest)),
		wire.Bind(new(ServiceCommunication), new(*communicationService.Communication)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(lifecycleService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(stockService.Repository), new(*stockRepo.Repository)),
		wire.Bind(new(matcherService.Repository), new(*matchingRepo.Repository)),
		wire.Bind(new(deliveryRequestService.Repository), new(*deliveryRequestRepo.Repository)),
		wire.Bind(new(communicationService.Repository), new(*communicationRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(dashboardService.Repository), new(*dashboardRepo.Repository)),

		wire.Bind(new(lifecycleService.EventPublisher), new(*orderEvents.Gateway)),
		wire.Bind(new(matcherService.EventPublisher), new(*orderEvents.Gateway)),
		wire.Bind(new(deliveryRequestService.EventPublisher), new(*orderEvents.Gateway)),

		wire.Bind(new(matcherService.NotificationService), new(*notificationService.Notification)),
		wire.Bind(new(deliveryRequestService.OrderService), new(*orderService.Order)),
		wire.Bind(new(communicationService.OrderService), new(*orderService.Order)),

		wire.Bind(new(matcherService.TxManager), new(*tx.Manager)),

		wire.Bind(new(match_scan.Service), new(*matcherService.Matcher)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideNotificationRepository,
		provideServiceNotification,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideStockRepository(querier *querier.Querier) *stockRepo.Repository {
	return stockRepo.New(querier)
}

func provideMatchingRepository(querier *querier.Querier) *matchingRepo.Repository {
	return matchingRepo.New(querier)
}

func provideDeliveryRequestRepository(querier *querier.Querier) *deliveryRequestRepo.Repository {
	return deliveryRequestRepo.New(querier)
}

func provideCommunicationRepository(querier *querier.Querier) *communicationRepo.Repository {
	return communicationRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideDashboardRepository(querier *querier.Querier) *dashboardRepo.Repository {
	return dashboardRepo.New(querier)
}

func provideOrderEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *orderEvents.Gateway {
	return orderEvents.New(producer, cfg.Kafka.Topic)
}

func provideServiceOrder(repository orderService.Repository) *orderService.Order {
	return orderService.New(repository)
}

func provideServiceLifecycle(
	log logger.Logger,
	repository lifecycleService.Repository,
	events lifecycleService.EventPublisher,
) *lifecycleService.Lifecycle {
	return lifecycleService.New(log, repository, events)
}

func provideServiceStock(repository stockService.Repository) *stockService.Stock {
	return stockService.New(repository)
}

func provideServiceMatcher(
	log logger.Logger,
	repository matcherService.Repository,
	events matcherService.EventPublisher,
	notifications matcherService.NotificationService,
	txManager matcherService.TxManager,
) *matcherService.Matcher {
	return matcherService.New(log, repository, events, notifications, txManager)
}

func provideServiceDashboard(repository dashboardService.Repository) *dashboardService.Dashboard {
	return dashboardService.New(repository)
}

func provideServiceDeliveryRequest(
	log logger.Logger,
	repository deliveryRequestService.Repository,
	orderService deliveryRequestService.OrderService,
	events deliveryRequestService.EventPublisher,
) *deliveryRequestService.DeliveryRequest {
	return deliveryRequestService.New(log, repository, orderService, events)
}

func provideServiceCommunication(
	repository communicationService.Repository,
	orderService communicationService.OrderService,
) *communicationService.Communication {
	return communicationService.New(repository, orderService)
}

func provideServiceNotification(repository notificationService.Repository) *notificationService.Notification {
	return notificationService.New(repository)
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
