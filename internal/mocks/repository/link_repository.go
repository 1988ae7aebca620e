package repository

import (
	"context"
	"testing"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLinkRepository is a mock for repository.LinkRepository.
type MockLinkRepository struct {
	mock.Mock
}

// NewMockLinkRepository creates the mock and asserts expectations on cleanup.
func NewMockLinkRepository(t *testing.T) *MockLinkRepository {
	m := &MockLinkRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLinkRepository) Create(ctx context.Context, link *entity.SupportLink) error {
	return m.Called(ctx, link).Error(0)
}

func (m *MockLinkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportLink, error) {
	args := m.Called(ctx, id)
	link, _ := args.Get(0).(*entity.SupportLink)

	return link, args.Error(1)
}

func (m *MockLinkRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.SupportLink, error) {
	args := m.Called(ctx, startupID)
	links, _ := args.Get(0).([]*entity.SupportLink)

	return links, args.Error(1)
}

func (m *MockLinkRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LinkStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
