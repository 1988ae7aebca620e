package repository

import (
	"context"
	"testing"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock for repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates the mock and asserts expectations on cleanup.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order, productIDs []uuid.UUID) error {
	return m.Called(ctx, order, productIDs).Error(0)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, startupID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}
