package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The product set is kept in the
// 'order_products' join table so an order snapshot survives product edits.
type OrderModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status     string          `gorm:"type:varchar(20);not null;default:'pending'"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time

	Customer *UserModel     `gorm:"foreignKey:CustomerID"`
	Products []ProductModel `gorm:"many2many:order_products;"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
