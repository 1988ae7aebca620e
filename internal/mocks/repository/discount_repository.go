package repository

import (
	"context"
	"testing"
	"time"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDiscountRepository is a mock for repository.DiscountRepository.
type MockDiscountRepository struct {
	mock.Mock
}

// NewMockDiscountRepository creates the mock and asserts expectations on cleanup.
func NewMockDiscountRepository(t *testing.T) *MockDiscountRepository {
	m := &MockDiscountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDiscountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	return m.Called(ctx, discount).Error(0)
}

func (m *MockDiscountRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Discount, error) {
	args := m.Called(ctx, startupID)
	discounts, _ := args.Get(0).([]*entity.Discount)

	return discounts, args.Error(1)
}

func (m *MockDiscountRepository) FindActiveAt(ctx context.Context, now time.Time) (map[uuid.UUID]*entity.Discount, error) {
	args := m.Called(ctx, now)
	active, _ := args.Get(0).(map[uuid.UUID]*entity.Discount)

	return active, args.Error(1)
}

func (m *MockDiscountRepository) Delete(ctx context.Context, startupID, discountID uuid.UUID) error {
	return m.Called(ctx, startupID, discountID).Error(0)
}
