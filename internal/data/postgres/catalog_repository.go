// Package postgres provides PostgreSQL implementations of the domain
// repositories backing the ledger reconciliation service.
package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaels22/GestorTechPlay/internal/domain/catalog"
	"github.com/michaels22/GestorTechPlay/internal/platform/persistence"
)

// CatalogRepository implements the catalog.Repository interface for PostgreSQL.
// All three record sets are read-only to this service.
type CatalogRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewCatalogRepository creates a new PostgreSQL catalog repository
func NewCatalogRepository(logger *slog.Logger, db *persistence.PostgresDB) catalog.Repository {
	return &CatalogRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// ListCustomers retrieves all customer records
func (r *CatalogRepository) ListCustomers(ctx context.Context) ([]*catalog.Customer, error) {
	query := `
		SELECT id, display_name, plan_id, product_id, created_at
		FROM customers
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list customers", "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*catalog.Customer
	for rows.Next() {
		var c catalog.Customer
		if err := rows.Scan(&c.ID, &c.DisplayName, &c.PlanID, &c.ProductID, &c.CreatedAt); err != nil {
			r.logger.Error("Failed to scan customer row", "error", err)
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customer rows: %w", err)
	}

	return customers, nil
}

// ListPlans retrieves all plan records
func (r *CatalogRepository) ListPlans(ctx context.Context) ([]*catalog.Plan, error) {
	query := `
		SELECT id, display_name, price
		FROM plans
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []*catalog.Plan
	for rows.Next() {
		var p catalog.Plan
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Price); err != nil {
			r.logger.Error("Failed to scan plan row", "error", err)
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plan rows: %w", err)
	}

	return plans, nil
}

// ListProducts retrieves all product records
func (r *CatalogRepository) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	query := `
		SELECT id, display_name, price
		FROM products
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Price); err != nil {
			r.logger.Error("Failed to scan product row", "error", err)
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}

	return products, nil
}
