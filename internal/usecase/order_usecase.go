package usecase

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	ProductIDs []uuid.UUID
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	// Create places a pending order for the customer: header row, product
	// links and decimal total in one transaction. An order event is
	// published asynchronously after commit.
	Create(ctx context.Context, customerID uuid.UUID, input CreateOrderInput) (*entity.Order, error)

	// ListMine returns the customer's orders with products, newest first.
	ListMine(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
}
