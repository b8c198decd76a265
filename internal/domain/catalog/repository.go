package catalog

import "context"

// Repository defines read access to the catalog record sets
type Repository interface {
	ListCustomers(ctx context.Context) ([]*Customer, error)
	ListPlans(ctx context.Context) ([]*Plan, error)
	ListProducts(ctx context.Context) ([]*Product, error)
}
