package impl

import (
	"context"
	"log/slog"
	"time"

	"venturesroom/config"
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

// productService implements the ProductUsecase interface.
type productService struct {
	tenants      *tenantResolver
	productRepo  repository.ProductRepository
	discountRepo repository.DiscountRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	StartupRepo  repository.StartupRepository
	ProductRepo  repository.ProductRepository
	DiscountRepo repository.DiscountRepository
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	demoMode := false
	if params.Config != nil && params.Config.Auth != nil {
		demoMode = params.Config.Auth.DemoMode
	}

	return &productService{
		tenants: &tenantResolver{
			startupRepo: params.StartupRepo,
			demoMode:    demoMode,
		},
		productRepo:  params.ProductRepo,
		discountRepo: params.DiscountRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a product to the caller's startup.
func (srv *productService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if input.Name == "" || input.Description == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and description are required")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if input.Inventory < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("inventory must not be negative")
	}

	productType := input.Type
	if productType == "" {
		productType = entity.ProductPhysical
	}
	if !productType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product type")
	}

	product := &entity.Product{
		StartupID:   startup.ID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Type:        productType,
		Inventory:   input.Inventory,
		ImageURL:    input.ImageURL,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product",
			slog.Any("startupID", startup.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.Any("productID", product.ID), slog.Any("startupID", startup.ID))

	return product, nil
}

// ListMine returns the caller's products, newest first.
func (srv *productService) ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Product, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindByStartup(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list startup products")
	}

	return products, nil
}

// ListMarketplace returns every product with active discounts applied.
func (srv *productService) ListMarketplace(ctx context.Context) ([]*usecase.MarketplaceProduct, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list marketplace products")
	}

	active, err := srv.discountRepo.FindActiveAt(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active discounts")
	}

	listing := make([]*usecase.MarketplaceProduct, 0, len(products))
	for _, product := range products {
		item := &usecase.MarketplaceProduct{Product: product}
		if discount, ok := active[product.ID]; ok {
			pct := discount.Percentage
			discounted := discount.Apply(product.Price)
			item.DiscountPercentage = &pct
			item.DiscountedPrice = &discounted
		}
		listing = append(listing, item)
	}

	return listing, nil
}

// Get returns one owned product. Single-item reads never use the demo
// tenant fallback, so the caller must be authenticated.
func (srv *productService) Get(ctx context.Context, actorID, productID uuid.UUID) (*entity.Product, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindOwned(ctx, startup.ID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Update applies a partial update to one owned product.
func (srv *productService) Update(ctx context.Context, actorID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
		}
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		fields["price"] = *input.Price
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product type")
		}
		fields["type"] = input.Type.String()
	}
	if input.Inventory != nil {
		if *input.Inventory < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("inventory must not be negative")
		}
		fields["inventory"] = *input.Inventory
	}
	if input.CategoryID != nil {
		fields["category_id"] = *input.CategoryID
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}

	if len(fields) > 0 {
		if err := srv.productRepo.UpdateFields(ctx, startup.ID, productID, fields); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound
			}

			return nil, errors.Wrap(err, "failed to update product")
		}
	}

	product, err := srv.productRepo.FindOwned(ctx, startup.ID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to reload product")
	}

	srv.log(ctx).Info("Product updated",
		slog.Any("productID", productID), slog.Int("fieldCount", len(fields)))

	return product, nil
}

// Delete removes one owned product permanently.
func (srv *productService) Delete(ctx context.Context, actorID, productID uuid.UUID) error {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, startup.ID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted",
		slog.Any("productID", productID), slog.Any("startupID", startup.ID))

	return nil
}

// ShareCode renders a QR code PNG for one owned product's public page.
func (srv *productService) ShareCode(ctx context.Context, actorID, productID uuid.UUID) ([]byte, error) {
	if _, err := srv.Get(ctx, actorID, productID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render product QR code")
	}

	return png, nil
}
