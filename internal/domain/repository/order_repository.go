// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// Create persists the order header and its product links.
	// Callers run it inside a transaction so a partial failure never leaves
	// an order without links.
	Create(ctx context.Context, order *entity.Order, productIDs []uuid.UUID) error

	// FindByCustomer retrieves a client's orders with products, newest first.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindByStartup retrieves all orders containing at least one product of
	// the startup, purchaser included, product lists already filtered down to
	// that startup's products, newest first.
	FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Order, error)
}
