package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the workflow state of an order. Values are stored and
// rendered lower-case.
type OrderStatus string

const (
	// OrderPending is the initial state of every order.
	OrderPending OrderStatus = "pending"
	// OrderPaid marks an approved/paid order.
	OrderPaid OrderStatus = "paid"
	// OrderCancelled marks a declined or cancelled order.
	OrderCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderPaid, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order is one purchase by a client. Products may span several startups;
// Total is the exact decimal sum of the linked products' prices at creation
// time, before any discount.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID uuid.UUID       `json:"customerId"`
	Status     OrderStatus     `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Products   []*Product      `json:"products,omitempty"`
	Customer   *User           `json:"customer,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ComputeTotal sums the prices of the given products with exact decimal
// arithmetic.
func ComputeTotal(products []*Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price)
	}

	return total
}
