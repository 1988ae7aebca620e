package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountModel mirrors the 'discounts' table. One product carries at most one
// discount per [StartsAt, EndsAt] window; overlap checks live in the use cases.
type DiscountModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	StartupID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Percentage decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	StartsAt   time.Time       `gorm:"not null"`
	EndsAt     time.Time       `gorm:"not null"`
	CreatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}
