// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product is absent or owned by a
// different startup than the caller's.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product persistence.
// Every tenant-scoped method treats "exists but owned by another startup"
// exactly like "does not exist".
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByStartup retrieves all products of one startup, category name
	// joined, newest first.
	FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Product, error)

	// FindAll retrieves every product for the public marketplace listing,
	// newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByIDs retrieves the products matching the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindOwned retrieves one product iff it belongs to the given startup.
	FindOwned(ctx context.Context, startupID, productID uuid.UUID) (*entity.Product, error)

	// UpdateFields applies a partial update to an owned product. Only the
	// keys present in fields change; startup_id is never among them.
	UpdateFields(ctx context.Context, startupID, productID uuid.UUID, fields map[string]any) error

	// Delete permanently removes an owned product.
	Delete(ctx context.Context, startupID, productID uuid.UUID) error

	// CountByStartup counts the products of one startup.
	CountByStartup(ctx context.Context, startupID uuid.UUID) (int64, error)
}
