package usecase

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase defines the interface for the public tenant directory and
// the startup/support-structure link workflow.
type DirectoryUsecase interface {
	// ListStartups returns every startup.
	ListStartups(ctx context.Context) ([]*entity.Startup, error)

	// ListStructures returns every support structure.
	ListStructures(ctx context.Context) ([]*entity.SupportStructure, error)

	// RequestSupport lets a structure owner offer support to a startup.
	// The link starts pending; an existing pair conflicts regardless of
	// its status.
	RequestSupport(ctx context.Context, structureOwnerID, startupID uuid.UUID) (*entity.SupportLink, error)

	// RespondSupport lets the targeted startup's owner approve or decline a
	// pending request. Decided links conflict.
	RespondSupport(ctx context.Context, startupOwnerID, linkID uuid.UUID, approve bool) (*entity.SupportLink, error)

	// ListSupportStructures returns the structures linked to the caller's
	// startup, each carrying its link status.
	ListSupportStructures(ctx context.Context, startupOwnerID uuid.UUID) ([]*entity.SupportLink, error)
}
