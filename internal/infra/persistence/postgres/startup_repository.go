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

// startupRepository implements the repository.StartupRepository interface.
type startupRepository struct {
	db *gorm.DB
}

// NewStartupRepository is the constructor for startupRepository.
func NewStartupRepository(db *gorm.DB) repository.StartupRepository {
	return &startupRepository{
		db: db,
	}
}

// Create persists a new startup.
func (repo *startupRepository) Create(ctx context.Context, startup *entity.Startup) error {
	startupM := fromStartupDomain(startup)

	if err := repo.db.WithContext(ctx).Create(startupM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("owner already has a startup")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create startup")
	}

	startup.ID = startupM.ID
	startup.CreatedAt = startupM.CreatedAt
	startup.UpdatedAt = startupM.UpdatedAt

	return nil
}

// FindByID retrieves a startup by its unique ID.
func (repo *startupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Startup, error) {
	var startupM model.StartupModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&startupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStartupNotFound
		}

		return nil, errors.Wrap(err, "failed to find startup by ID")
	}

	return toStartupDomain(&startupM), nil
}

// FindByOwner retrieves the startup owned by the given user.
func (repo *startupRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Startup, error) {
	var startupM model.StartupModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&startupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStartupNotFound
		}

		return nil, errors.Wrap(err, "failed to find startup by owner")
	}

	return toStartupDomain(&startupM), nil
}

// FindFirst retrieves the oldest startup in the system.
func (repo *startupRepository) FindFirst(ctx context.Context) (*entity.Startup, error) {
	var startupM model.StartupModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		First(&startupM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStartupNotFound
		}

		return nil, errors.Wrap(err, "failed to find first startup")
	}

	return toStartupDomain(&startupM), nil
}

// FindAll retrieves every startup, newest first.
func (repo *startupRepository) FindAll(ctx context.Context) ([]*entity.Startup, error) {
	var startupModels []*model.StartupModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&startupModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list startups")
	}

	startups := make([]*entity.Startup, 0, len(startupModels))
	for _, startupM := range startupModels {
		startups = append(startups, toStartupDomain(startupM))
	}

	return startups, nil
}

// UpdateLogoURL stores the public URL of a freshly uploaded logo.
func (repo *startupRepository) UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StartupModel{}).
		Where("id = ?", id).
		Update("logo_url", url)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update startup logo URL")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStartupNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStartupDomain(data *model.StartupModel) *entity.Startup {
	if data == nil {
		return nil
	}

	return &entity.Startup{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Sector:      data.Sector,
		Country:     data.Country,
		Website:     data.Website,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromStartupDomain(data *entity.Startup) *model.StartupModel {
	if data == nil {
		return nil
	}

	return &model.StartupModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Sector:      data.Sector,
		Country:     data.Country,
		Website:     data.Website,
		Description: data.Description,
		LogoURL:     data.LogoURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
