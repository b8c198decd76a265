package reconciler

import (
	"context"

	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/domain/ledger"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
)

// WriteInput is the caller-supplied payload for creating or editing a
// custom transaction.
type WriteInput struct {
	Amount      float64
	Direction   transaction.Direction
	Description string
}

// Service defines the ledger operations exposed to the transport layer.
// Every mutation is followed unconditionally by a full reload; consistency
// comes from recomputing the ledger, never from patching it incrementally.
type Service interface {
	// Load performs a full fetch-parse-merge-sort cycle and returns the report
	Load(ctx context.Context) (*ledger.Report, error)

	// CreateTransaction writes a new custom transaction (provisioning the
	// relation on first use) and returns the reloaded report
	CreateTransaction(ctx context.Context, ownerID uuid.UUID, input WriteInput) (*ledger.Report, error)

	// UpdateTransaction edits a custom transaction by id and returns the
	// reloaded report. Derived entries have no matching row; targeting their
	// synthesized ids yields ErrTransactionNotFound.
	UpdateTransaction(ctx context.Context, id uuid.UUID, input WriteInput) (*ledger.Report, error)

	// DeleteTransaction removes a custom transaction by id and returns the
	// reloaded report
	DeleteTransaction(ctx context.Context, id uuid.UUID) (*ledger.Report, error)
}
