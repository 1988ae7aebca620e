package impl

import (
	"context"
	"testing"
	"time"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	mockRepo "venturesroom/internal/mocks/repository"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// discountServiceFixtures holds all test dependencies for discount service tests.
type discountServiceFixtures struct {
	service      usecase.DiscountUsecase
	startupRepo  *mockRepo.MockStartupRepository
	productRepo  *mockRepo.MockProductRepository
	discountRepo *mockRepo.MockDiscountRepository
}

func createTestDiscountService(t *testing.T, demoMode bool) discountServiceFixtures {
	startupRepo := mockRepo.NewMockStartupRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)

	service := NewDiscountService(DiscountServiceParams{
		StartupRepo:  startupRepo,
		ProductRepo:  productRepo,
		DiscountRepo: discountRepo,
		Config:       newTestConfig(demoMode),
		Logger:       newDiscardLogger(),
	})

	return discountServiceFixtures{
		service:      service,
		startupRepo:  startupRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
	}
}

func TestDiscountService_Create(t *testing.T) {
	fx := createTestDiscountService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	productID := uuid.New()
	startsAt := time.Now()
	endsAt := startsAt.Add(72 * time.Hour)

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("FindOwned", ctx, startupID, productID).
		Return(&entity.Product{ID: productID, StartupID: startupID}, nil)
	fx.discountRepo.On("Create", ctx, mock.MatchedBy(func(d *entity.Discount) bool {
		return d.ProductID == productID &&
			d.StartupID == startupID &&
			d.Percentage.Equal(decimal.NewFromInt(15))
	})).Return(nil)

	discount, err := fx.service.Create(ctx, ownerID, usecase.CreateDiscountInput{
		ProductID:  productID,
		Percentage: decimal.NewFromInt(15),
		StartsAt:   startsAt,
		EndsAt:     endsAt,
	})
	require.NoError(t, err)
	assert.Equal(t, startupID, discount.StartupID)
}

func TestDiscountService_Create_InvalidWindow(t *testing.T) {
	fx := createTestDiscountService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	now := time.Now()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: uuid.New(), OwnerID: ownerID}, nil)

	cases := []usecase.CreateDiscountInput{
		// The window ends before it starts
		{ProductID: uuid.New(), Percentage: decimal.NewFromInt(10), StartsAt: now, EndsAt: now.Add(-time.Hour)},
		{ProductID: uuid.New(), Percentage: decimal.NewFromInt(-5), StartsAt: now, EndsAt: now.Add(time.Hour)},
		{ProductID: uuid.New(), Percentage: decimal.NewFromInt(101), StartsAt: now, EndsAt: now.Add(time.Hour)},
	}
	for _, input := range cases {
		_, err := fx.service.Create(ctx, ownerID, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDiscountWindow)
	}
}

func TestDiscountService_Create_ForeignProduct(t *testing.T) {
	fx := createTestDiscountService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	productID := uuid.New()
	now := time.Now()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("FindOwned", ctx, startupID, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Create(ctx, ownerID, usecase.CreateDiscountInput{
		ProductID:  productID,
		Percentage: decimal.NewFromInt(10),
		StartsAt:   now,
		EndsAt:     now.Add(time.Hour),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestDiscountService_ListMine_DemoFallback(t *testing.T) {
	fx := createTestDiscountService(t, true)
	ctx := context.Background()
	startupID := uuid.New()

	fx.startupRepo.On("FindFirst", ctx).
		Return(&entity.Startup{ID: startupID}, nil)
	fx.discountRepo.On("FindByStartup", ctx, startupID).
		Return([]*entity.Discount{{ID: uuid.New(), StartupID: startupID}}, nil)

	discounts, err := fx.service.ListMine(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, discounts, 1)
}

func TestDiscountService_Delete(t *testing.T) {
	fx := createTestDiscountService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	discountID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.discountRepo.On("Delete", ctx, startupID, discountID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, ownerID, discountID))
}

func TestDiscountService_Delete_Unknown(t *testing.T) {
	fx := createTestDiscountService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	discountID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.discountRepo.On("Delete", ctx, startupID, discountID).
		Return(repository.ErrDiscountNotFound)

	err := fx.service.Delete(ctx, ownerID, discountID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountNotFound)
}
