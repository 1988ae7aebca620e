package usecase

import (
	"context"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Type        entity.ProductType // Defaults to physical when empty
	Inventory   int
	CategoryID  *uuid.UUID
	ImageURL    string
}

// UpdateProductInput carries a partial product update. Nil fields stay
// untouched; the owning startup can never change.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Type        *entity.ProductType
	Inventory   *int
	CategoryID  *uuid.UUID
	ImageURL    *string
}

// --- Output DTOs ---

// MarketplaceProduct is a product as shown on the public listing, with any
// active discount already applied to the display price.
type MarketplaceProduct struct {
	*entity.Product

	DiscountPercentage *decimal.Decimal `json:"discountPercentage,omitempty"`
	DiscountedPrice    *decimal.Decimal `json:"discountedPrice,omitempty"`
}

// ProductUsecase defines the interface for product business operations.
// Tenant-scoped methods take the acting user's ID; uuid.Nil marks an
// anonymous caller, which only resolves to a tenant in demo mode.
type ProductUsecase interface {
	// Create adds a product to the caller's startup.
	Create(ctx context.Context, actorID uuid.UUID, input CreateProductInput) (*entity.Product, error)

	// ListMine returns the caller's products, newest first.
	ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Product, error)

	// ListMarketplace returns every product with active discounts applied.
	ListMarketplace(ctx context.Context) ([]*MarketplaceProduct, error)

	// Get returns one owned product.
	Get(ctx context.Context, actorID, productID uuid.UUID) (*entity.Product, error)

	// Update applies a partial update to one owned product.
	Update(ctx context.Context, actorID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)

	// Delete removes one owned product permanently.
	Delete(ctx context.Context, actorID, productID uuid.UUID) error

	// ShareCode renders a QR code PNG for one owned product's public page.
	ShareCode(ctx context.Context, actorID, productID uuid.UUID) ([]byte, error)
}
