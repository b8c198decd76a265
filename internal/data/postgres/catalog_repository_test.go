package postgres

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/domain/catalog"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCatalogRepository_ListCustomers(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &CatalogRepository{querier: mock, logger: logger}

	query := `
		SELECT id, display_name, plan_id, product_id, created_at
		FROM customers
	`

	planID := uuid.New()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		customerID := uuid.New()
		rows := pgxmock.NewRows([]string{"id", "display_name", "plan_id", "product_id", "created_at"}).
			AddRow(customerID, "Alice", &planID, (*uuid.UUID)(nil), now)
		mock.ExpectQuery(query).WillReturnRows(rows)

		customers, err := repo.ListCustomers(ctx)
		assert.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, customerID, customers[0].ID)
		assert.Equal(t, "Alice", customers[0].DisplayName)
		require.NotNil(t, customers[0].PlanID)
		assert.Equal(t, planID, *customers[0].PlanID)
		assert.Nil(t, customers[0].ProductID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "display_name", "plan_id", "product_id", "created_at"})
		mock.ExpectQuery(query).WillReturnRows(rows)

		customers, err := repo.ListCustomers(ctx)
		assert.NoError(t, err)
		assert.Empty(t, customers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mock.ExpectQuery(query).WillReturnError(dbErr)

		customers, err := repo.ListCustomers(ctx)
		assert.Error(t, err)
		assert.Nil(t, customers)
		assert.Contains(t, err.Error(), "failed to list customers")
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_ListPlans(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &CatalogRepository{querier: mock, logger: logger}

	query := `
		SELECT id, display_name, price
		FROM plans
	`

	t.Run("success", func(t *testing.T) {
		planID := uuid.New()
		rows := pgxmock.NewRows([]string{"id", "display_name", "price"}).
			AddRow(planID, "Premium", "R$ 49,90")
		mock.ExpectQuery(query).WillReturnRows(rows)

		plans, err := repo.ListPlans(ctx)
		assert.NoError(t, err)
		require.Len(t, plans, 1)
		assert.Equal(t, &catalog.Plan{ID: planID, DisplayName: "Premium", Price: "R$ 49,90"}, plans[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mock.ExpectQuery(query).WillReturnError(dbErr)

		plans, err := repo.ListPlans(ctx)
		assert.Error(t, err)
		assert.Nil(t, plans)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCatalogRepository_ListProducts(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &CatalogRepository{querier: mock, logger: logger}

	query := `
		SELECT id, display_name, price
		FROM products
	`

	t.Run("success", func(t *testing.T) {
		productID := uuid.New()
		rows := pgxmock.NewRows([]string{"id", "display_name", "price"}).
			AddRow(productID, "Console", "1.200,00")
		mock.ExpectQuery(query).WillReturnRows(rows)

		products, err := repo.ListProducts(ctx)
		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, &catalog.Product{ID: productID, DisplayName: "Console", Price: "1.200,00"}, products[0])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		mock.ExpectQuery(query).WillReturnError(dbErr)

		products, err := repo.ListProducts(ctx)
		assert.Error(t, err)
		assert.Nil(t, products)
		assert.ErrorIs(t, err, dbErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
