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

// linkRepository implements the repository.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{
		db: db,
	}
}

// Create persists a new link in pending state.
func (repo *linkRepository) Create(ctx context.Context, link *entity.SupportLink) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLink
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStructureNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create support link")
	}

	link.ID = linkM.ID
	link.InvitedAt = linkM.InvitedAt

	return nil
}

// FindByID retrieves a link by its unique ID with the structure side preloaded.
func (repo *linkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportLink, error) {
	var linkM model.SupportLinkModel

	if err := repo.db.WithContext(ctx).
		Preload("Structure").
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find support link by ID")
	}

	return toLinkDomain(&linkM), nil
}

// FindByStartup retrieves all links of one startup with the structure side
// preloaded, newest first.
func (repo *linkRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.SupportLink, error) {
	var linkModels []*model.SupportLinkModel

	if err := repo.db.WithContext(ctx).
		Preload("Structure").
		Where("startup_id = ?", startupID).
		Order("invited_at DESC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find support links by startup")
	}

	links := make([]*entity.SupportLink, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toLinkDomain(linkM))
	}

	return links, nil
}

// UpdateStatus records the response to a pending request.
func (repo *linkRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LinkStatus) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SupportLinkModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status.String(),
			"responded_at": now,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update support link status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLinkDomain(data *model.SupportLinkModel) *entity.SupportLink {
	if data == nil {
		return nil
	}

	link := &entity.SupportLink{
		ID:          data.ID,
		StartupID:   data.StartupID,
		StructureID: data.StructureID,
		Status:      entity.LinkStatus(data.Status),
		InvitedAt:   data.InvitedAt,
		RespondedAt: data.RespondedAt,
	}
	if data.Structure != nil {
		link.Structure = toStructureDomain(data.Structure)
	}

	return link
}

func fromLinkDomain(data *entity.SupportLink) *model.SupportLinkModel {
	if data == nil {
		return nil
	}

	return &model.SupportLinkModel{
		ID:          data.ID,
		StartupID:   data.StartupID,
		StructureID: data.StructureID,
		Status:      data.Status.String(),
		InvitedAt:   data.InvitedAt,
		RespondedAt: data.RespondedAt,
	}
}
