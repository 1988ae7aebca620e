// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for support-link persistence.
var (
	// ErrLinkNotFound is returned when a support link is not found.
	ErrLinkNotFound = errors.New("support link not found")
	// ErrDuplicateLink is returned when the startup/structure pair is already linked.
	ErrDuplicateLink = errors.New("support link already exists")
)

// LinkRepository defines the interface for startup/support-structure links.
type LinkRepository interface {
	// Create persists a new link in pending state.
	Create(ctx context.Context, link *entity.SupportLink) error

	// FindByID retrieves a link by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportLink, error)

	// FindByStartup retrieves all links of one startup with the structure
	// side preloaded.
	FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.SupportLink, error)

	// UpdateStatus records the response to a pending request.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LinkStatus) error
}
