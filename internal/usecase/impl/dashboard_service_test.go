package impl

import (
	"context"
	"testing"
	"time"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	mockRepo "venturesroom/internal/mocks/repository"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service     usecase.DashboardUsecase
	startupRepo *mockRepo.MockStartupRepository
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestDashboardService(t *testing.T, demoMode bool) dashboardServiceFixtures {
	startupRepo := mockRepo.NewMockStartupRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewDashboardService(DashboardServiceParams{
		StartupRepo: startupRepo,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Config:      newTestConfig(demoMode),
		Logger:      newDiscardLogger(),
	})

	return dashboardServiceFixtures{
		service:     service,
		startupRepo: startupRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestDashboardService_GetOrders(t *testing.T) {
	fx := createTestDashboardService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.orderRepo.On("FindByStartup", ctx, startupID).
		Return([]*entity.Order{{ID: uuid.New(), Total: decimal.NewFromInt(7)}}, nil)

	orders, err := fx.service.GetOrders(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestDashboardService_GetOrders_AnonymousStrictMode(t *testing.T) {
	fx := createTestDashboardService(t, false)

	_, err := fx.service.GetOrders(context.Background(), uuid.Nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestDashboardService_GetCustomers_Aggregates(t *testing.T) {
	fx := createTestDashboardService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.orderRepo.On("FindByStartup", ctx, startupID).
		Return([]*entity.Order{
			{
				CustomerID: alice,
				Customer:   &entity.User{ID: alice, Name: "Alice", Email: "alice@example.com"},
				Total:      decimal.RequireFromString("30.00"),
				CreatedAt:  base.Add(48 * time.Hour),
			},
			{
				CustomerID: bob,
				Customer:   &entity.User{ID: bob, Name: "Bob", Email: "bob@example.com"},
				Total:      decimal.RequireFromString("45.00"),
				CreatedAt:  base.Add(24 * time.Hour),
			},
			{
				CustomerID: alice,
				Customer:   &entity.User{ID: alice, Name: "Alice", Email: "alice@example.com"},
				Total:      decimal.RequireFromString("20.00"),
				CreatedAt:  base,
			},
		}, nil)

	customers, err := fx.service.GetCustomers(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	// Alice spent 50 across two orders and sorts ahead of Bob's 45.
	assert.Equal(t, alice, customers[0].CustomerID)
	assert.Equal(t, "Alice", customers[0].Name)
	assert.Equal(t, "50.00", customers[0].TotalSpent.StringFixed(2))
	assert.Equal(t, 2, customers[0].OrderCount)
	assert.Equal(t, base, customers[0].FirstOrder)

	assert.Equal(t, bob, customers[1].CustomerID)
	assert.Equal(t, 1, customers[1].OrderCount)
}

func TestDashboardService_GetCustomers_ErrorDegradesToEmpty(t *testing.T) {
	fx := createTestDashboardService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.orderRepo.On("FindByStartup", ctx, startupID).
		Return(nil, assert.AnError)

	customers, err := fx.service.GetCustomers(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, customers)
	assert.NotNil(t, customers)
}

func TestDashboardService_GetKPIs(t *testing.T) {
	fx := createTestDashboardService(t, true)
	ctx := context.Background()
	startupID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	fx.startupRepo.On("FindFirst", ctx).
		Return(&entity.Startup{ID: startupID}, nil)
	fx.productRepo.On("CountByStartup", ctx, startupID).Return(int64(4), nil)
	fx.orderRepo.On("FindByStartup", ctx, startupID).
		Return([]*entity.Order{
			{
				CustomerID: alice,
				Total:      decimal.RequireFromString("99.00"),
				Products: []*entity.Product{
					{StartupID: startupID, Price: decimal.RequireFromString("10.00")},
					{StartupID: startupID, Price: decimal.RequireFromString("15.00")},
				},
			},
			{
				CustomerID: bob,
				Total:      decimal.RequireFromString("8.00"),
				Products: []*entity.Product{
					{StartupID: startupID, Price: decimal.RequireFromString("8.00")},
				},
			},
			{
				CustomerID: alice,
				Total:      decimal.RequireFromString("2.00"),
				Products: []*entity.Product{
					{StartupID: startupID, Price: decimal.RequireFromString("2.00")},
				},
			},
		}, nil)

	report, err := fx.service.GetKPIs(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), report.ProductCount)
	assert.Equal(t, 3, report.OrderCount)
	// Revenue counts the startup's share of each order, not the order totals.
	assert.Equal(t, "35.00", report.Revenue.StringFixed(2))
	assert.Equal(t, 2, report.CustomerCount)
}
