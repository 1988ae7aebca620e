package usecase

import (
	"context"
	"time"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateDiscountInput defines the data required to create a discount.
type CreateDiscountInput struct {
	ProductID  uuid.UUID
	Percentage decimal.Decimal
	StartsAt   time.Time
	EndsAt     time.Time
}

// DiscountUsecase defines the interface for discount business operations.
type DiscountUsecase interface {
	// Create adds a discount to one of the caller's products. Inverted
	// windows and percentages outside [0,100] are rejected.
	Create(ctx context.Context, actorID uuid.UUID, input CreateDiscountInput) (*entity.Discount, error)

	// ListMine returns the caller's discounts, newest first.
	ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Discount, error)

	// Delete removes one owned discount permanently.
	Delete(ctx context.Context, actorID, discountID uuid.UUID) error
}
