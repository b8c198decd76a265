package reconciler

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/domain/catalog"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCustomers(ctx context.Context) ([]*catalog.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Customer), args.Error(1)
}

func (m *MockCatalogRepository) ListPlans(ctx context.Context) ([]*catalog.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Plan), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*transaction.CustomTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.CustomTransaction), args.Error(1)
}

func (m *MockTransactionRepository) Insert(ctx context.Context, tx *transaction.CustomTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, id uuid.UUID, amount float64, direction transaction.Direction, description string) error {
	args := m.Called(ctx, id, amount, direction, description)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProvisioner struct {
	mock.Mock
}

func (m *MockProvisioner) Provision(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
