// Package usecase provides hand-rolled testify doubles for the usecase
// interfaces, used by the delivery layer tests.
package usecase

import (
	"context"
	"testing"

	"venturesroom/internal/domain/entity"
	"venturesroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock wired into the test lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.LoginOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockAuthUsecase) Approve(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

// MockProductUsecase is a mock for usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock wired into the test lifecycle.
func NewMockProductUsecase(t *testing.T) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, actorID, input)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, actorID)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductUsecase) ListMarketplace(ctx context.Context) ([]*usecase.MarketplaceProduct, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*usecase.MarketplaceProduct)

	return products, args.Error(1)
}

func (m *MockProductUsecase) Get(ctx context.Context, actorID, productID uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, actorID, productID)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) Update(ctx context.Context, actorID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, actorID, productID, input)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) Delete(ctx context.Context, actorID, productID uuid.UUID) error {
	return m.Called(ctx, actorID, productID).Error(0)
}

func (m *MockProductUsecase) ShareCode(ctx context.Context, actorID, productID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, actorID, productID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

// MockOrderUsecase is a mock for usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

// NewMockOrderUsecase creates a mock wired into the test lifecycle.
func NewMockOrderUsecase(t *testing.T) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) Create(ctx context.Context, customerID uuid.UUID, input usecase.CreateOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, customerID, input)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) ListMine(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, customerID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

// MockDashboardUsecase is a mock for usecase.DashboardUsecase.
type MockDashboardUsecase struct {
	mock.Mock
}

// NewMockDashboardUsecase creates a mock wired into the test lifecycle.
func NewMockDashboardUsecase(t *testing.T) *MockDashboardUsecase {
	m := &MockDashboardUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDashboardUsecase) GetOrders(ctx context.Context, actorID uuid.UUID) ([]*entity.Order, error) {
	args := m.Called(ctx, actorID)
	orders, _ := args.Get(0).([]*entity.Order)

	return orders, args.Error(1)
}

func (m *MockDashboardUsecase) GetCustomers(ctx context.Context, actorID uuid.UUID) ([]*usecase.CustomerSummary, error) {
	args := m.Called(ctx, actorID)
	customers, _ := args.Get(0).([]*usecase.CustomerSummary)

	return customers, args.Error(1)
}

func (m *MockDashboardUsecase) GetKPIs(ctx context.Context, actorID uuid.UUID) (*usecase.KPIReport, error) {
	args := m.Called(ctx, actorID)
	report, _ := args.Get(0).(*usecase.KPIReport)

	return report, args.Error(1)
}

// MockDirectoryUsecase is a mock for usecase.DirectoryUsecase.
type MockDirectoryUsecase struct {
	mock.Mock
}

// NewMockDirectoryUsecase creates a mock wired into the test lifecycle.
func NewMockDirectoryUsecase(t *testing.T) *MockDirectoryUsecase {
	m := &MockDirectoryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDirectoryUsecase) ListStartups(ctx context.Context) ([]*entity.Startup, error) {
	args := m.Called(ctx)
	startups, _ := args.Get(0).([]*entity.Startup)

	return startups, args.Error(1)
}

func (m *MockDirectoryUsecase) ListStructures(ctx context.Context) ([]*entity.SupportStructure, error) {
	args := m.Called(ctx)
	structures, _ := args.Get(0).([]*entity.SupportStructure)

	return structures, args.Error(1)
}

func (m *MockDirectoryUsecase) RequestSupport(ctx context.Context, structureOwnerID, startupID uuid.UUID) (*entity.SupportLink, error) {
	args := m.Called(ctx, structureOwnerID, startupID)
	link, _ := args.Get(0).(*entity.SupportLink)

	return link, args.Error(1)
}

func (m *MockDirectoryUsecase) RespondSupport(ctx context.Context, startupOwnerID, linkID uuid.UUID, approve bool) (*entity.SupportLink, error) {
	args := m.Called(ctx, startupOwnerID, linkID, approve)
	link, _ := args.Get(0).(*entity.SupportLink)

	return link, args.Error(1)
}

func (m *MockDirectoryUsecase) ListSupportStructures(ctx context.Context, startupOwnerID uuid.UUID) ([]*entity.SupportLink, error) {
	args := m.Called(ctx, startupOwnerID)
	links, _ := args.Get(0).([]*entity.SupportLink)

	return links, args.Error(1)
}

// MockDiscountUsecase is a mock for usecase.DiscountUsecase.
type MockDiscountUsecase struct {
	mock.Mock
}

// NewMockDiscountUsecase creates a mock wired into the test lifecycle.
func NewMockDiscountUsecase(t *testing.T) *MockDiscountUsecase {
	m := &MockDiscountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDiscountUsecase) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateDiscountInput) (*entity.Discount, error) {
	args := m.Called(ctx, actorID, input)
	discount, _ := args.Get(0).(*entity.Discount)

	return discount, args.Error(1)
}

func (m *MockDiscountUsecase) ListMine(ctx context.Context, actorID uuid.UUID) ([]*entity.Discount, error) {
	args := m.Called(ctx, actorID)
	discounts, _ := args.Get(0).([]*entity.Discount)

	return discounts, args.Error(1)
}

func (m *MockDiscountUsecase) Delete(ctx context.Context, actorID, discountID uuid.UUID) error {
	return m.Called(ctx, actorID, discountID).Error(0)
}

// MockUploadUsecase is a mock for usecase.UploadUsecase.
type MockUploadUsecase struct {
	mock.Mock
}

// NewMockUploadUsecase creates a mock wired into the test lifecycle.
func NewMockUploadUsecase(t *testing.T) *MockUploadUsecase {
	m := &MockUploadUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUploadUsecase) UploadImage(ctx context.Context, file usecase.UploadFile) (*usecase.UploadedImage, error) {
	args := m.Called(ctx, file)
	image, _ := args.Get(0).(*usecase.UploadedImage)

	return image, args.Error(1)
}

func (m *MockUploadUsecase) UploadImages(ctx context.Context, files []usecase.UploadFile) ([]*usecase.UploadedImage, error) {
	args := m.Called(ctx, files)
	images, _ := args.Get(0).([]*usecase.UploadedImage)

	return images, args.Error(1)
}

func (m *MockUploadUsecase) OpenImage(ctx context.Context, filename string) (*usecase.ImageStream, error) {
	args := m.Called(ctx, filename)
	stream, _ := args.Get(0).(*usecase.ImageStream)

	return stream, args.Error(1)
}

func (m *MockUploadUsecase) StoreResource(ctx context.Context, resourceType, resourceID string, file usecase.UploadFile) (*usecase.UploadedImage, error) {
	args := m.Called(ctx, resourceType, resourceID, file)
	image, _ := args.Get(0).(*usecase.UploadedImage)

	return image, args.Error(1)
}

func (m *MockUploadUsecase) DeleteResource(ctx context.Context, resourceType, resourceID, filename string) error {
	return m.Called(ctx, resourceType, resourceID, filename).Error(0)
}
