package impl

import (
	"context"
	"log/slog"
	"sort"

	"venturesroom/config"
	deliverycontext "venturesroom/internal/delivery/context"
	"venturesroom/internal/domain/entity"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	tenants     *tenantResolver
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StartupRepo repository.StartupRepository
	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	demoMode := false
	if params.Config != nil && params.Config.Auth != nil {
		demoMode = params.Config.Auth.DemoMode
	}

	return &dashboardService{
		tenants: &tenantResolver{
			startupRepo: params.StartupRepo,
			demoMode:    demoMode,
		},
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrders returns orders touching the caller's startup, newest first.
func (srv *dashboardService) GetOrders(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByStartup(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load startup orders")
	}

	return orders, nil
}

// GetCustomers groups qualifying orders by purchaser, sorted by total spent
// descending. Aggregation failures degrade to an empty list so the dashboard
// keeps rendering.
func (srv *dashboardService) GetCustomers(ctx context.Context, actorID uuid.UUID) ([]*usecase.CustomerSummary, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByStartup(ctx, startup.ID)
	if err != nil {
		srv.log(ctx).Error("Customer aggregation failed, returning empty list",
			slog.Any("startupID", startup.ID), slog.Any("error", err))

		return []*usecase.CustomerSummary{}, nil
	}

	return aggregateCustomers(orders), nil
}

// GetKPIs returns the headline figures for the caller's startup.
func (srv *dashboardService) GetKPIs(ctx context.Context, actorID uuid.UUID) (*usecase.KPIReport, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	productCount, err := srv.productRepo.CountByStartup(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	orders, err := srv.orderRepo.FindByStartup(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load startup orders")
	}

	revenue := decimal.Zero
	customers := make(map[uuid.UUID]struct{}, len(orders))
	for _, order := range orders {
		// Revenue counts the startup's own share of each order.
		for _, product := range order.Products {
			revenue = revenue.Add(product.Price)
		}
		customers[order.CustomerID] = struct{}{}
	}

	return &usecase.KPIReport{
		ProductCount:  productCount,
		OrderCount:    len(orders),
		Revenue:       revenue,
		CustomerCount: len(customers),
	}, nil
}

// aggregateCustomers folds orders into per-purchaser summaries. TotalSpent
// sums whole-order totals, matching the dashboard's documented behavior.
func aggregateCustomers(orders []*entity.Order) []*usecase.CustomerSummary {
	byCustomer := make(map[uuid.UUID]*usecase.CustomerSummary, len(orders))
	for _, order := range orders {
		summary, ok := byCustomer[order.CustomerID]
		if !ok {
			summary = &usecase.CustomerSummary{
				CustomerID: order.CustomerID,
				TotalSpent: decimal.Zero,
				FirstOrder: order.CreatedAt,
			}
			if order.Customer != nil {
				summary.Name = order.Customer.Name
				summary.Email = order.Customer.Email
			}
			byCustomer[order.CustomerID] = summary
		}

		summary.TotalSpent = summary.TotalSpent.Add(order.Total)
		summary.OrderCount++
		if order.CreatedAt.Before(summary.FirstOrder) {
			summary.FirstOrder = order.CreatedAt
		}
	}

	summaries := make([]*usecase.CustomerSummary, 0, len(byCustomer))
	for _, summary := range byCustomer {
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].TotalSpent.Equal(summaries[j].TotalSpent) {
			return summaries[i].TotalSpent.GreaterThan(summaries[j].TotalSpent)
		}

		return summaries[i].FirstOrder.Before(summaries[j].FirstOrder)
	})

	return summaries
}
