package postgres

import (
	"context"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// structureRepository implements the repository.StructureRepository interface.
type structureRepository struct {
	db *gorm.DB
}

// NewStructureRepository is the constructor for structureRepository.
func NewStructureRepository(db *gorm.DB) repository.StructureRepository {
	return &structureRepository{
		db: db,
	}
}

// Create persists a new support structure.
func (repo *structureRepository) Create(ctx context.Context, structure *entity.SupportStructure) error {
	structureM := fromStructureDomain(structure)

	if err := repo.db.WithContext(ctx).Create(structureM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("owner already has a support structure")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create support structure")
	}

	structure.ID = structureM.ID
	structure.CreatedAt = structureM.CreatedAt
	structure.UpdatedAt = structureM.UpdatedAt

	return nil
}

// FindByID retrieves a structure by its unique ID.
func (repo *structureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportStructure, error) {
	var structureM model.SupportStructureModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&structureM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStructureNotFound
		}

		return nil, errors.Wrap(err, "failed to find support structure by ID")
	}

	return toStructureDomain(&structureM), nil
}

// FindByOwner retrieves the structure owned by the given user.
func (repo *structureRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.SupportStructure, error) {
	var structureM model.SupportStructureModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&structureM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStructureNotFound
		}

		return nil, errors.Wrap(err, "failed to find support structure by owner")
	}

	return toStructureDomain(&structureM), nil
}

// FindAll retrieves every support structure, newest first.
func (repo *structureRepository) FindAll(ctx context.Context) ([]*entity.SupportStructure, error) {
	var structureModels []*model.SupportStructureModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&structureModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list support structures")
	}

	structures := make([]*entity.SupportStructure, 0, len(structureModels))
	for _, structureM := range structureModels {
		structures = append(structures, toStructureDomain(structureM))
	}

	return structures, nil
}

// UpdateLogoURL stores the public URL of a freshly uploaded logo.
func (repo *structureRepository) UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupportStructureModel{}).
		Where("id = ?", id).
		Update("logo_url", url)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update structure logo URL")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStructureNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStructureDomain(data *model.SupportStructureModel) *entity.SupportStructure {
	if data == nil {
		return nil
	}

	return &entity.SupportStructure{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Country:   data.Country,
		Website:   data.Website,
		LogoURL:   data.LogoURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromStructureDomain(data *entity.SupportStructure) *model.SupportStructureModel {
	if data == nil {
		return nil
	}

	return &model.SupportStructureModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Country:   data.Country,
		Website:   data.Website,
		LogoURL:   data.LogoURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
