// Package catalog defines the read-only record sets the ledger is derived
// from: customers and the plans and products they are associated with. These
// records are owned by the external store and never written by this service.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer record. PlanID and ProductID are optional
// references into the plan and product catalogs.
type Customer struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"display_name"`
	PlanID      *uuid.UUID `json:"plan_id,omitempty"`
	ProductID   *uuid.UUID `json:"product_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Plan represents a subscription plan. Price is kept as the locale-formatted
// string the upstream catalog stores it as.
type Plan struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Price       string    `json:"price"`
}

// Product represents a catalog product. Price is kept as the locale-formatted
// string the upstream catalog stores it as.
type Product struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Price       string    `json:"price"`
}

// PlansByID builds an identity-keyed plan lookup. Resolution during ledger
// derivation is by ID, never by display name, so differently-identified
// records sharing a name cannot collide.
func PlansByID(plans []*Plan) map[uuid.UUID]*Plan {
	lookup := make(map[uuid.UUID]*Plan, len(plans))
	for _, p := range plans {
		lookup[p.ID] = p
	}
	return lookup
}

// ProductsByID builds an identity-keyed product lookup.
func ProductsByID(products []*Product) map[uuid.UUID]*Product {
	lookup := make(map[uuid.UUID]*Product, len(products))
	for _, p := range products {
		lookup[p.ID] = p
	}
	return lookup
}
