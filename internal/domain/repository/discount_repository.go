// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDiscountNotFound is returned when a discount is absent or owned by a
// different startup.
var ErrDiscountNotFound = errors.New("discount not found")

// DiscountRepository defines the interface for discount persistence.
type DiscountRepository interface {
	// Create persists a new discount.
	Create(ctx context.Context, discount *entity.Discount) error

	// FindByStartup retrieves all discounts owned by one startup.
	FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Discount, error)

	// FindActiveAt retrieves every discount whose validity window contains
	// the given instant, keyed by product ID.
	FindActiveAt(ctx context.Context, now time.Time) (map[uuid.UUID]*entity.Discount, error)

	// Delete permanently removes an owned discount.
	Delete(ctx context.Context, startupID, discountID uuid.UUID) error
}
