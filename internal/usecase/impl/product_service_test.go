package impl

import (
	"context"
	"testing"
	"time"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	mockRepo "venturesroom/internal/mocks/repository"
	mockService "venturesroom/internal/mocks/service"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	startupRepo  *mockRepo.MockStartupRepository
	productRepo  *mockRepo.MockProductRepository
	discountRepo *mockRepo.MockDiscountRepository
	qrService    *mockService.MockQRCodeService
}

func createTestProductService(t *testing.T, demoMode bool) productServiceFixtures {
	startupRepo := mockRepo.NewMockStartupRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	service := NewProductService(ProductServiceParams{
		StartupRepo:  startupRepo,
		ProductRepo:  productRepo,
		DiscountRepo: discountRepo,
		QRService:    qrService,
		Config:       newTestConfig(demoMode),
		Logger:       newDiscardLogger(),
	})

	return productServiceFixtures{
		service:      service,
		startupRepo:  startupRepo,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		qrService:    qrService,
	}
}

func TestProductService_Create(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.StartupID == startupID && p.Type == entity.ProductPhysical && p.Inventory == 0
	})).Return(nil)

	product, err := fx.service.Create(ctx, ownerID, usecase.CreateProductInput{
		Name:        "Mini rocket",
		Description: "A very small rocket",
		Price:       decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, startupID, product.StartupID)
	assert.Equal(t, entity.ProductPhysical, product.Type)
}

func TestProductService_Create_Validation(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: uuid.New(), OwnerID: ownerID}, nil)

	cases := []usecase.CreateProductInput{
		{Description: "no name", Price: decimal.NewFromInt(1)},
		{Name: "no description", Price: decimal.NewFromInt(1)},
		{Name: "bad price", Description: "x", Price: decimal.NewFromInt(-1)},
		{Name: "bad inventory", Description: "x", Price: decimal.NewFromInt(1), Inventory: -3},
		{Name: "bad type", Description: "x", Price: decimal.NewFromInt(1), Type: "hologram"},
	}
	for _, input := range cases {
		_, err := fx.service.Create(ctx, ownerID, input)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestProductService_Create_AnonymousStrictMode(t *testing.T) {
	fx := createTestProductService(t, false)

	_, err := fx.service.Create(context.Background(), uuid.Nil, usecase.CreateProductInput{
		Name:        "x",
		Description: "y",
		Price:       decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProductService_ListMine_DemoFallback(t *testing.T) {
	fx := createTestProductService(t, true)
	ctx := context.Background()
	startupID := uuid.New()

	fx.startupRepo.On("FindFirst", ctx).
		Return(&entity.Startup{ID: startupID}, nil)
	fx.productRepo.On("FindByStartup", ctx, startupID).
		Return([]*entity.Product{{ID: uuid.New(), StartupID: startupID}}, nil)

	products, err := fx.service.ListMine(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_ListMarketplace_AppliesActiveDiscounts(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	discountedID := uuid.New()
	plainID := uuid.New()

	fx.productRepo.On("FindAll", ctx).Return([]*entity.Product{
		{ID: discountedID, Price: decimal.RequireFromString("100.00")},
		{ID: plainID, Price: decimal.RequireFromString("50.00")},
	}, nil)
	fx.discountRepo.On("FindActiveAt", ctx, mock.AnythingOfType("time.Time")).
		Return(map[uuid.UUID]*entity.Discount{
			discountedID: {
				ProductID:  discountedID,
				Percentage: decimal.NewFromInt(25),
				StartsAt:   time.Now().Add(-time.Hour),
				EndsAt:     time.Now().Add(time.Hour),
			},
		}, nil)

	listing, err := fx.service.ListMarketplace(ctx)
	require.NoError(t, err)
	require.Len(t, listing, 2)

	assert.Equal(t, discountedID, listing[0].ID)
	require.NotNil(t, listing[0].DiscountedPrice)
	assert.Equal(t, "75.00", listing[0].DiscountedPrice.StringFixed(2))
	assert.Equal(t, "25", listing[0].DiscountPercentage.String())
	// Base price stays untouched
	assert.Equal(t, "100.00", listing[0].Price.StringFixed(2))

	assert.Nil(t, listing[1].DiscountedPrice)
	assert.Nil(t, listing[1].DiscountPercentage)
}

func TestProductService_Get_NotOwned(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	productID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("FindOwned", ctx, startupID, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Get(ctx, ownerID, productID)
	require.Error(t, err)
	// A foreign product is indistinguishable from a missing one
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Get_AnonymousDemoMode(t *testing.T) {
	// Single-item reads bypass the demo tenant fallback entirely, so no
	// FindFirst expectation is set.
	fx := createTestProductService(t, true)

	_, err := fx.service.Get(context.Background(), uuid.Nil, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProductService_ShareCode_AnonymousDemoMode(t *testing.T) {
	fx := createTestProductService(t, true)

	_, err := fx.service.ShareCode(context.Background(), uuid.Nil, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestProductService_Update_Partial(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	productID := uuid.New()
	newPrice := decimal.RequireFromString("42.50")

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("UpdateFields", ctx, startupID, productID, mock.MatchedBy(func(fields map[string]any) bool {
		_, hasName := fields["name"]

		return len(fields) == 1 && !hasName && fields["price"] == newPrice
	})).Return(nil)
	fx.productRepo.On("FindOwned", ctx, startupID, productID).
		Return(&entity.Product{ID: productID, StartupID: startupID, Price: newPrice}, nil)

	product, err := fx.service.Update(ctx, ownerID, productID, usecase.UpdateProductInput{
		Price: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "42.50", product.Price.StringFixed(2))
}

func TestProductService_Update_EmptyNameRejected(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	empty := ""

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: uuid.New(), OwnerID: ownerID}, nil)

	_, err := fx.service.Update(ctx, ownerID, uuid.New(), usecase.UpdateProductInput{Name: &empty})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_Delete(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	productID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("Delete", ctx, startupID, productID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, ownerID, productID))
}

func TestProductService_ShareCode(t *testing.T) {
	fx := createTestProductService(t, false)
	ctx := context.Background()
	ownerID := uuid.New()
	startupID := uuid.New()
	productID := uuid.New()

	fx.startupRepo.On("FindByOwner", ctx, ownerID).
		Return(&entity.Startup{ID: startupID, OwnerID: ownerID}, nil)
	fx.productRepo.On("FindOwned", ctx, startupID, productID).
		Return(&entity.Product{ID: productID, StartupID: startupID}, nil)
	fx.qrService.On("GenerateProductQR", productID).Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.ShareCode(ctx, ownerID, productID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
