package repository

import (
	"context"
	"testing"

	"venturesroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStartupRepository is a mock for repository.StartupRepository.
type MockStartupRepository struct {
	mock.Mock
}

// NewMockStartupRepository creates the mock and asserts expectations on cleanup.
func NewMockStartupRepository(t *testing.T) *MockStartupRepository {
	m := &MockStartupRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStartupRepository) Create(ctx context.Context, startup *entity.Startup) error {
	return m.Called(ctx, startup).Error(0)
}

func (m *MockStartupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Startup, error) {
	args := m.Called(ctx, id)
	startup, _ := args.Get(0).(*entity.Startup)

	return startup, args.Error(1)
}

func (m *MockStartupRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Startup, error) {
	args := m.Called(ctx, ownerID)
	startup, _ := args.Get(0).(*entity.Startup)

	return startup, args.Error(1)
}

func (m *MockStartupRepository) FindFirst(ctx context.Context) (*entity.Startup, error) {
	args := m.Called(ctx)
	startup, _ := args.Get(0).(*entity.Startup)

	return startup, args.Error(1)
}

func (m *MockStartupRepository) FindAll(ctx context.Context) ([]*entity.Startup, error) {
	args := m.Called(ctx)
	startups, _ := args.Get(0).([]*entity.Startup)

	return startups, args.Error(1)
}

func (m *MockStartupRepository) UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}

// MockStructureRepository is a mock for repository.StructureRepository.
type MockStructureRepository struct {
	mock.Mock
}

// NewMockStructureRepository creates the mock and asserts expectations on cleanup.
func NewMockStructureRepository(t *testing.T) *MockStructureRepository {
	m := &MockStructureRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockStructureRepository) Create(ctx context.Context, structure *entity.SupportStructure) error {
	return m.Called(ctx, structure).Error(0)
}

func (m *MockStructureRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SupportStructure, error) {
	args := m.Called(ctx, id)
	structure, _ := args.Get(0).(*entity.SupportStructure)

	return structure, args.Error(1)
}

func (m *MockStructureRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.SupportStructure, error) {
	args := m.Called(ctx, ownerID)
	structure, _ := args.Get(0).(*entity.SupportStructure)

	return structure, args.Error(1)
}

func (m *MockStructureRepository) FindAll(ctx context.Context) ([]*entity.SupportStructure, error) {
	args := m.Called(ctx)
	structures, _ := args.Get(0).([]*entity.SupportStructure)

	return structures, args.Error(1)
}

func (m *MockStructureRepository) UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) error {
	return m.Called(ctx, id, url).Error(0)
}
