package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"github.com/michaels22/GestorTechPlay/internal/platform/persistence"
)

// customTransactionsRelation is the lazily provisioned relation custom
// transactions are persisted in.
const customTransactionsRelation = "custom_transactions"

// undefinedTableCode is the PostgreSQL SQLSTATE for "relation does not exist"
const undefinedTableCode = "42P01"

// TransactionRepository implements the transaction.Repository interface for
// PostgreSQL. The backing relation may not exist yet; queries against a
// missing relation surface as transaction.ErrRelationMissing so callers can
// distinguish that condition from an empty result.
type TransactionRepository struct {
	querier persistence.Querier // Can be *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewTransactionRepository creates a new PostgreSQL custom-transaction repository
func NewTransactionRepository(logger *slog.Logger, db *persistence.PostgresDB) transaction.Repository {
	return &TransactionRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// List retrieves all custom transactions, newest creation time first
func (r *TransactionRepository) List(ctx context.Context) ([]*transaction.CustomTransaction, error) {
	query := `
		SELECT id, amount, direction, description, owner_id, created_at
		FROM custom_transactions
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, transaction.ErrRelationMissing{Relation: customTransactionsRelation}
		}
		r.logger.Error("Failed to list custom transactions", "error", err)
		return nil, fmt.Errorf("failed to list custom transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.CustomTransaction
	for rows.Next() {
		var tx transaction.CustomTransaction
		if err := rows.Scan(&tx.ID, &tx.Amount, &tx.Direction, &tx.Description, &tx.OwnerID, &tx.CreatedAt); err != nil {
			r.logger.Error("Failed to scan custom transaction row", "error", err)
			return nil, fmt.Errorf("failed to scan custom transaction row: %w", err)
		}
		transactions = append(transactions, &tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate custom transaction rows: %w", err)
	}

	return transactions, nil
}

// Insert stores a new custom transaction
func (r *TransactionRepository) Insert(ctx context.Context, tx *transaction.CustomTransaction) error {
	query := `
		INSERT INTO custom_transactions (id, amount, direction, description, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.querier.Exec(ctx, query,
		tx.ID,
		tx.Amount,
		tx.Direction,
		tx.Description,
		tx.OwnerID,
		tx.CreatedAt,
	)
	if err != nil {
		if isUndefinedTable(err) {
			return transaction.ErrRelationMissing{Relation: customTransactionsRelation}
		}
		r.logger.Error("Failed to insert custom transaction", "transaction_id", tx.ID.String(), "error", err)
		return fmt.Errorf("failed to insert custom transaction: %w", err)
	}

	return nil
}

// Update edits a custom transaction by id. Derived ledger entries carry
// synthesized ids with no matching row, so targeting one yields
// ErrTransactionNotFound.
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, amount float64, direction transaction.Direction, description string) error {
	query := `
		UPDATE custom_transactions
		SET amount = $1, direction = $2, description = $3
		WHERE id = $4
	`

	result, err := r.querier.Exec(ctx, query, amount, direction, description, id)
	if err != nil {
		if isUndefinedTable(err) {
			return transaction.ErrRelationMissing{Relation: customTransactionsRelation}
		}
		r.logger.Error("Failed to update custom transaction", "transaction_id", id.String(), "error", err)
		return fmt.Errorf("failed to update custom transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return transaction.ErrTransactionNotFound{ID: id}
	}

	return nil
}

// Delete removes a custom transaction by id
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM custom_transactions
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		if isUndefinedTable(err) {
			return transaction.ErrRelationMissing{Relation: customTransactionsRelation}
		}
		r.logger.Error("Failed to delete custom transaction", "transaction_id", id.String(), "error", err)
		return fmt.Errorf("failed to delete custom transaction: %w", err)
	}

	if result.RowsAffected() == 0 {
		return transaction.ErrTransactionNotFound{ID: id}
	}

	return nil
}

// isUndefinedTable reports whether err is the PostgreSQL undefined_table error
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode
}
