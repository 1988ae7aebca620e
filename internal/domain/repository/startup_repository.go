// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrStartupNotFound is returned when a startup is not found.
	ErrStartupNotFound = errors.New("startup not found")
	// ErrStructureNotFound is returned when a support structure is not found.
	ErrStructureNotFound = errors.New("support structure not found")
)

// StartupRepository defines the interface for startup tenant persistence.
type StartupRepository interface {
	// Create persists a new startup.
	Create(ctx context.Context, startup *entity.Startup) error

	// FindByID retrieves a startup by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Startup, error)

	// FindByOwner retrieves the startup owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Startup, error)

	// FindFirst retrieves the oldest startup in the system.
	// Only the demo-mode tenant fallback uses it.
	FindFirst(ctx context.Context) (*entity.Startup, error)

	// FindAll retrieves every startup, unfiltered and unpaginated.
	FindAll(ctx context.Context) ([]*entity.Startup, error)

	// UpdateLogoURL stores the public URL of a freshly uploaded logo.
	UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) error
}

// StructureRepository defines the interface for support-structure persistence.
type StructureRepository interface {
	// Create persists a new support structure.
	Create(ctx context.Context, structure *entity.SupportStructure) error

	// FindByID retrieves a structure by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportStructure, error)

	// FindByOwner retrieves the structure owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.SupportStructure, error)

	// FindAll retrieves every support structure, unfiltered and unpaginated.
	FindAll(ctx context.Context) ([]*entity.SupportStructure, error)

	// UpdateLogoURL stores the public URL of a freshly uploaded logo.
	UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) error
}
