package postgres

import (
	"context"
	"time"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// discountRepository implements the repository.DiscountRepository interface.
type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository is the constructor for discountRepository.
func NewDiscountRepository(db *gorm.DB) repository.DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

// Create persists a new discount.
func (repo *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	discountM := fromDiscountDomain(discount)

	if err := repo.db.WithContext(ctx).Create(discountM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create discount")
	}

	discount.ID = discountM.ID
	discount.CreatedAt = discountM.CreatedAt

	return nil
}

// FindByStartup retrieves all discounts owned by one startup, newest first.
func (repo *discountRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Where("startup_id = ?", startupID).
		Order("created_at DESC").
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discounts by startup")
	}

	discounts := make([]*entity.Discount, 0, len(discountModels))
	for _, discountM := range discountModels {
		discounts = append(discounts, toDiscountDomain(discountM))
	}

	return discounts, nil
}

// FindActiveAt retrieves every discount whose validity window contains the
// given instant, keyed by product ID. When several windows overlap for one
// product the most recently created wins.
func (repo *discountRepository) FindActiveAt(ctx context.Context, now time.Time) (map[uuid.UUID]*entity.Discount, error) {
	var discountModels []*model.DiscountModel

	if err := repo.db.WithContext(ctx).
		Where("starts_at <= ? AND ends_at >= ?", now, now).
		Order("created_at ASC").
		Find(&discountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active discounts")
	}

	active := make(map[uuid.UUID]*entity.Discount, len(discountModels))
	for _, discountM := range discountModels {
		active[discountM.ProductID] = toDiscountDomain(discountM)
	}

	return active, nil
}

// Delete permanently removes an owned discount.
func (repo *discountRepository) Delete(ctx context.Context, startupID, discountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND startup_id = ?", discountID, startupID).
		Delete(&model.DiscountModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete discount")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDiscountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDiscountDomain(data *model.DiscountModel) *entity.Discount {
	if data == nil {
		return nil
	}

	return &entity.Discount{
		ID:         data.ID,
		ProductID:  data.ProductID,
		StartupID:  data.StartupID,
		Percentage: data.Percentage,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromDiscountDomain(data *entity.Discount) *model.DiscountModel {
	if data == nil {
		return nil
	}

	return &model.DiscountModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		StartupID:  data.StartupID,
		Percentage: data.Percentage,
		StartsAt:   data.StartsAt,
		EndsAt:     data.EndsAt,
		CreatedAt:  data.CreatedAt,
	}
}
