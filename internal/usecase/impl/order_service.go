package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "venturesroom/internal/delivery/context"
	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/domain/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const orderEventPublishTimeout = 30 * time.Second

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places a pending order in one transaction and publishes an order
// event after commit.
func (srv *orderService) Create(ctx context.Context, customerID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.ProductIDs) == 0 {
		return nil, domainerrors.ErrEmptyOrder
	}

	// Dedupe while keeping the first-seen ordering.
	seen := make(map[uuid.UUID]struct{}, len(input.ProductIDs))
	productIDs := make([]uuid.UUID, 0, len(input.ProductIDs))
	for _, id := range input.ProductIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		productIDs = append(productIDs, id)
	}

	order := &entity.Order{
		CustomerID: customerID,
		Status:     entity.OrderPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products, err := repoFactory.NewProductRepository().FindByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load order products")
		}
		if len(products) != len(productIDs) {
			return domainerrors.ErrProductNotFound.WrapMessage("order references unknown products")
		}

		order.Total = entity.ComputeTotal(products)
		order.Products = products

		if err := repoFactory.NewOrderRepository().Create(ctx, order, productIDs); err != nil {
			return errors.Wrap(err, "failed to persist order")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute order transaction",
			slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("customerID", customerID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	srv.publishOrderEvent(ctx, order)

	return order, nil
}

// ListMine returns the customer's orders with products, newest first.
func (srv *orderService) ListMine(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// publishOrderEvent fires the order.created event on a detached context.
// Publish failures are logged and never fail the request.
func (srv *orderService) publishOrderEvent(ctx context.Context, order *entity.Order) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	logger := srv.log(ctx)

	event := &service.OrderEvent{
		RequestID:  requestID,
		OrderID:    order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     order.Status.String(),
		Total:      order.Total.StringFixed(2),
	}

	startupSeen := make(map[uuid.UUID]struct{}, len(order.Products))
	for _, product := range order.Products {
		event.ProductIDs = append(event.ProductIDs, product.ID.String())
		if _, ok := startupSeen[product.StartupID]; !ok {
			startupSeen[product.StartupID] = struct{}{}
			event.StartupIDs = append(event.StartupIDs, product.StartupID.String())
		}
	}

	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), orderEventPublishTimeout)
		defer cancel()

		if requestID != "" {
			publishCtx = deliverycontext.WithRequestID(publishCtx, requestID)
		}

		if err := srv.publisher.PublishOrderEvent(publishCtx, event); err != nil {
			logger.Error("Failed to publish order event",
				slog.String("orderID", event.OrderID), slog.Any("error", err))
		}
	}()
}
