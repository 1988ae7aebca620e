package repository

import (
	"context"
	"testing"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock for repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates the mock and asserts expectations on cleanup.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, startupID)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) FindOwned(ctx context.Context, startupID, productID uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, startupID, productID)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, startupID, productID uuid.UUID, fields map[string]any) error {
	return m.Called(ctx, startupID, productID, fields).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, startupID, productID uuid.UUID) error {
	return m.Called(ctx, startupID, productID).Error(0)
}

func (m *MockProductRepository) CountByStartup(ctx context.Context, startupID uuid.UUID) (int64, error) {
	args := m.Called(ctx, startupID)

	return args.Get(0).(int64), args.Error(1)
}
