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
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	tenants       *tenantResolver
	startupRepo   repository.StartupRepository
	structureRepo repository.StructureRepository
	linkRepo      repository.LinkRepository
	logger        *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	StartupRepo   repository.StartupRepository
	StructureRepo repository.StructureRepository
	LinkRepo      repository.LinkRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	demoMode := false
	if params.Config != nil && params.Config.Auth != nil {
		demoMode = params.Config.Auth.DemoMode
	}

	return &directoryService{
		tenants: &tenantResolver{
			startupRepo: params.StartupRepo,
			demoMode:    demoMode,
		},
		startupRepo:   params.StartupRepo,
		structureRepo: params.StructureRepo,
		linkRepo:      params.LinkRepo,
		logger:        params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStartups returns every startup.
func (srv *directoryService) ListStartups(ctx context.Context) ([]*entity.Startup, error) {
	startups, err := srv.startupRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list startups")
	}

	return startups, nil
}

// ListStructures returns every support structure.
func (srv *directoryService) ListStructures(ctx context.Context) ([]*entity.SupportStructure, error) {
	structures, err := srv.structureRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support structures")
	}

	return structures, nil
}

// RequestSupport lets a structure owner offer support to a startup.
func (srv *directoryService) RequestSupport(ctx context.Context, structureOwnerID, startupID uuid.UUID) (*entity.SupportLink, error) {
	structure, err := srv.structureRepo.FindByOwner(ctx, structureOwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrStructureNotFound) {
			return nil, domainerrors.ErrStructureNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve support structure")
	}

	if _, err := srv.startupRepo.FindByID(ctx, startupID); err != nil {
		if errors.Is(err, repository.ErrStartupNotFound) {
			return nil, domainerrors.ErrStartupNotFound
		}

		return nil, errors.Wrap(err, "failed to load target startup")
	}

	link := &entity.SupportLink{
		StartupID:   startupID,
		StructureID: structure.ID,
		Status:      entity.LinkPending,
		InvitedAt:   time.Now(),
		Structure:   structure,
	}

	if err := srv.linkRepo.Create(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateLink) {
			return nil, domainerrors.ErrLinkAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create support link")
	}

	srv.log(ctx).Info("Support requested",
		slog.Any("startupID", startupID), slog.Any("structureID", structure.ID))

	return link, nil
}

// RespondSupport lets the targeted startup's owner approve or decline a
// pending request.
func (srv *directoryService) RespondSupport(ctx context.Context, startupOwnerID, linkID uuid.UUID, approve bool) (*entity.SupportLink, error) {
	link, err := srv.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			return nil, domainerrors.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to load support link")
	}

	startup, err := srv.tenants.resolveStartup(ctx, startupOwnerID)
	if err != nil {
		return nil, err
	}
	if link.StartupID != startup.ID {
		return nil, domainerrors.ErrForbidden.WrapMessage("support request targets another startup")
	}

	if link.Status != entity.LinkPending {
		return nil, domainerrors.ErrLinkAlreadyDecided
	}

	status := entity.LinkDeclined
	if approve {
		status = entity.LinkApproved
	}

	if err := srv.linkRepo.UpdateStatus(ctx, linkID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update support link")
	}

	now := time.Now()
	link.Status = status
	link.RespondedAt = &now

	srv.log(ctx).Info("Support request decided",
		slog.Any("linkID", linkID), slog.String("status", status.String()))

	return link, nil
}

// ListSupportStructures returns the structures linked to the caller's startup.
func (srv *directoryService) ListSupportStructures(ctx context.Context, startupOwnerID uuid.UUID) ([]*entity.SupportLink, error) {
	startup, err := srv.tenants.resolveStartup(ctx, startupOwnerID)
	if err != nil {
		return nil, err
	}

	links, err := srv.linkRepo.FindByStartup(ctx, startup.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list support links")
	}

	return links, nil
}
