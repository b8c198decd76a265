package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"github.com/michaels22/GestorTechPlay/internal/platform/persistence"
)

// TransactionProvisioner creates the custom-transaction relation on demand.
// The relation is not part of the startup migrations; it is created the
// first time a write needs it.
type TransactionProvisioner struct {
	querier persistence.Querier
	logger  *slog.Logger
}

// NewTransactionProvisioner creates a provisioner over the given database
func NewTransactionProvisioner(logger *slog.Logger, db *persistence.PostgresDB) transaction.Provisioner {
	return &TransactionProvisioner{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Provision creates the custom_transactions relation if it does not exist
func (p *TransactionProvisioner) Provision(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS custom_transactions (
			id UUID PRIMARY KEY,
			amount DOUBLE PRECISION NOT NULL,
			direction TEXT NOT NULL CHECK (direction IN ('inflow', 'outflow')),
			description TEXT NOT NULL DEFAULT '',
			owner_id UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := p.querier.Exec(ctx, query); err != nil {
		p.logger.Error("Failed to provision custom transaction relation", "error", err)
		return fmt.Errorf("failed to provision custom transaction relation: %w", err)
	}

	p.logger.Info("Provisioned custom transaction relation")
	return nil
}
