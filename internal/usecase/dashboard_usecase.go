package usecase

import (
	"context"
	"time"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerSummary aggregates one purchaser's activity against a startup.
// TotalSpent sums whole-order totals, not just this startup's share; the
// dashboard documents the approximation.
type CustomerSummary struct {
	CustomerID uuid.UUID       `json:"customerId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	OrderCount int             `json:"orderCount"`
	FirstOrder time.Time       `json:"firstOrder"`
}

// KPIReport carries the headline figures for a startup dashboard.
type KPIReport struct {
	ProductCount  int64           `json:"productCount"`
	OrderCount    int             `json:"orderCount"`
	Revenue       decimal.Decimal `json:"revenue"`
	CustomerCount int             `json:"customerCount"`
}

// DashboardUsecase defines the interface for startup dashboard aggregations.
type DashboardUsecase interface {
	// GetOrders returns orders touching the caller's startup, product lists
	// filtered to that startup and purchasers included, newest first.
	GetOrders(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error)

	// GetCustomers groups qualifying orders by purchaser, sorted by total
	// spent descending. Aggregation failures degrade to an empty list.
	GetCustomers(ctx context.Context, actorID uuid.UUID) ([]*CustomerSummary, error)

	// GetKPIs returns the headline figures for the caller's startup.
	GetKPIs(ctx context.Context, actorID uuid.UUID) (*KPIReport, error)
}
