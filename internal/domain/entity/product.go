package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType classifies what kind of good a product is.
type ProductType string

const (
	// ProductPhysical is a shippable good. It is the default type.
	ProductPhysical ProductType = "physical"
	// ProductDigital is a downloadable good.
	ProductDigital ProductType = "digital"
	// ProductSubscription is a recurring service.
	ProductSubscription ProductType = "subscription"
)

// String returns the string representation of the ProductType.
func (t ProductType) String() string {
	return string(t)
}

// IsValid checks if the ProductType is a valid value.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductPhysical, ProductDigital, ProductSubscription:
		return true
	default:
		return false
	}
}

// Product belongs to exactly one startup. StartupID never changes after
// creation; updates cannot move a product between tenants.
type Product struct {
	ID           uuid.UUID       `json:"id"`
	StartupID    uuid.UUID       `json:"startupId"`
	CategoryID   *uuid.UUID      `json:"categoryId,omitempty"`
	CategoryName string          `json:"categoryName,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Type         ProductType     `json:"type"`
	Inventory    int             `json:"inventory"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Category is an optional grouping for products.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
