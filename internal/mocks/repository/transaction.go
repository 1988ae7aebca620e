package repository

import (
	"context"

	"venturesroom/internal/domain/repository"
)

// StubRepositoryFactory hands out the configured repositories. It stands in
// for the GORM-bound factory in use case tests.
type StubRepositoryFactory struct {
	Users      repository.UserRepository
	Startups   repository.StartupRepository
	Structures repository.StructureRepository
	Products   repository.ProductRepository
	Orders     repository.OrderRepository
	Links      repository.LinkRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) NewStartupRepository() repository.StartupRepository {
	return f.Startups
}

func (f *StubRepositoryFactory) NewStructureRepository() repository.StructureRepository {
	return f.Structures
}

func (f *StubRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.Products
}

func (f *StubRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.Orders
}

func (f *StubRepositoryFactory) NewLinkRepository() repository.LinkRepository {
	return f.Links
}

// StubTransactionManager runs the callback against the stub factory without
// a real transaction. BeginErr short-circuits, simulating a failed Begin.
type StubTransactionManager struct {
	Factory  *StubRepositoryFactory
	BeginErr error
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}
