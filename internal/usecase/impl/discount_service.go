package impl

import (
	"context"
	"log/slog"

	"venturesroom/config"
	deliverycontext "venturesroom/internal/delivery/context"
	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// discountService implements the DiscountUsecase interface.
type discountService struct {
	tenants      *tenantResolver
	productRepo  repository.ProductRepository
	discountRepo repository.DiscountRepository
	logger       *slog.Logger
}

// DiscountServiceParams holds dependencies for DiscountService, injected by Fx.
type DiscountServiceParams struct {
	fx.In

	StartupRepo  repository.StartupRepository
	ProductRepo  repository.ProductRepository
	DiscountRepo repository.DiscountRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDiscountService is the constructor for discountService.
func NewDiscountService(params DiscountServiceParams) usecase.DiscountUsecase {
	demoMode := false
	if params.Config != nil && params.Config.Auth != nil {
		demoMode = params.Config.Auth.DemoMode
	}

	return &discountService{
		tenants: &tenantResolver{
			startupRepo: params.StartupRepo,
			demoMode:    demoMode,
		},
		productRepo:  params.ProductRepo,
		discountRepo: params.DiscountRepo,
		logger:       params.Logger,
	}
}

func (srv *discountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a discount to one of the caller's products.
func (srv *discountService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateDiscountInput) (*entity.Discount, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	discount := &entity.Discount{
		ProductID:  input.ProductID,
		StartupID:  startup.ID,
		Percentage: input.Percentage,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
	}
	if !discount.ValidWindow() {
		return nil, domainerrors.ErrDiscountWindow
	}

	// Ownership check before the insert: a foreign product reads as absent.
	if _, err := srv.productRepo.FindOwned(ctx, startup.ID, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to verify product ownership")
	}

	if err := srv.discountRepo.Create(ctx, discount); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to create discount")
	}

	srv.log(ctx).Info("Discount created",
		slog.Any("discountID", discount.ID),
		slog.Any("productID", input.ProductID),
		slog.String("percentage", input.Percentage.String()),
	)

	return discount, nil
}

// ListMine returns the caller's discounts, newest first.
func (srv *discountService) ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Discount, error) {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return nil, err
	}

	discounts, err := srv.discountRepo.FindByStartup(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discounts")
	}

	return discounts, nil
}

// Delete removes one owned discount permanently.
func (srv *discountService) Delete(ctx context.Context, actorID, discountID uuid.UUID) error {
	startup, err := srv.tenants.resolveStartup(ctx, actorID)
	if err != nil {
		return err
	}

	if err := srv.discountRepo.Delete(ctx, startup.ID, discountID); err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return domainerrors.ErrDiscountNotFound
		}

		return errors.Wrap(err, "failed to delete discount")
	}

	srv.log(ctx).Info("Discount deleted", slog.Any("discountID", discountID))

	return nil
}
