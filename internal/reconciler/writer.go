package reconciler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
)

// SelfHealingWriter inserts custom transactions and recovers from the
// backing relation not existing yet: on a relation-missing error it
// provisions the relation and retries the insert exactly once. Provisioning
// is never attempted more than once per write call.
type SelfHealingWriter struct {
	txRepo      transaction.Repository
	provisioner transaction.Provisioner
	logger      *slog.Logger
}

// NewSelfHealingWriter creates a writer over the given repository and provisioner
func NewSelfHealingWriter(logger *slog.Logger, txRepo transaction.Repository, provisioner transaction.Provisioner) *SelfHealingWriter {
	return &SelfHealingWriter{
		txRepo:      txRepo,
		provisioner: provisioner,
		logger:      logger,
	}
}

// Write inserts tx into the store. Only a relation-missing failure triggers
// the provision-and-retry path; any other error is surfaced unchanged.
func (w *SelfHealingWriter) Write(ctx context.Context, tx *transaction.CustomTransaction) error {
	err := w.txRepo.Insert(ctx, tx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, transaction.ErrRelationMissing{}) {
		return err
	}

	w.logger.Info("Custom transaction relation missing, provisioning", "transaction_id", tx.ID.String())

	if provErr := w.provisioner.Provision(ctx); provErr != nil {
		w.logger.Error("Provisioning failed", "error", provErr)
		return fmt.Errorf("automatic provisioning of the transaction relation failed, manual intervention required: %w", provErr)
	}

	// One-shot retry: a second relation-missing failure is surfaced, never
	// re-provisioned.
	if retryErr := w.txRepo.Insert(ctx, tx); retryErr != nil {
		w.logger.Error("Insert retry after provisioning failed", "transaction_id", tx.ID.String(), "error", retryErr)
		return retryErr
	}

	w.logger.Info("Custom transaction inserted after provisioning", "transaction_id", tx.ID.String())
	return nil
}
