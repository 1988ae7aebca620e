package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Discount is a percentage price reduction on one product, valid inside a
// time window. StartupID is carried redundantly so tenant-scoped listings
// avoid a join through products.
type Discount struct {
	ID         uuid.UUID       `json:"id"`
	ProductID  uuid.UUID       `json:"productId"`
	StartupID  uuid.UUID       `json:"startupId"`
	Percentage decimal.Decimal `json:"percentage"`
	StartsAt   time.Time       `json:"startsAt"`
	EndsAt     time.Time       `json:"endsAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// IsActiveAt reports whether the discount applies at the given instant.
func (d *Discount) IsActiveAt(now time.Time) bool {
	return !now.Before(d.StartsAt) && !now.After(d.EndsAt)
}

// Apply returns the discounted price rounded to cents.
func (d *Discount) Apply(price decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(100).Sub(d.Percentage).Div(decimal.NewFromInt(100))

	return price.Mul(factor).Round(2)
}

// ValidWindow reports whether the validity window is not inverted and the
// percentage sits inside [0,100].
func (d *Discount) ValidWindow() bool {
	if d.EndsAt.Before(d.StartsAt) {
		return false
	}

	return !d.Percentage.IsNegative() && d.Percentage.LessThanOrEqual(decimal.NewFromInt(100))
}
