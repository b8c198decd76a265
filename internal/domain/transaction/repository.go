package transaction

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for custom transactions.
// List must return transactions ordered by creation time descending.
type Repository interface {
	List(ctx context.Context) ([]*CustomTransaction, error)
	Insert(ctx context.Context, tx *CustomTransaction) error
	Update(ctx context.Context, id uuid.UUID, amount float64, direction Direction, description string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Provisioner creates the custom-transaction relation when it does not yet
// exist. It takes no input beyond the context.
type Provisioner interface {
	Provision(ctx context.Context) error
}

// ErrRelationMissing indicates the custom-transaction relation does not exist
// in the store yet. Writes recover from it by provisioning and retrying once.
type ErrRelationMissing struct {
	Relation string
}

func (e ErrRelationMissing) Error() string {
	return "relation does not exist: " + e.Relation
}

// Is implements the errors.Is interface for ErrRelationMissing
func (e ErrRelationMissing) Is(target error) bool {
	t, ok := target.(ErrRelationMissing)
	if !ok {
		return false
	}
	// An empty target relation matches any missing relation
	if t.Relation == "" {
		return true
	}
	return e.Relation == t.Relation
}

// ErrTransactionNotFound indicates a missing custom transaction. Derived
// ledger entries carry synthesized ids with no matching row, so edits and
// deletes targeting them also surface as this error.
type ErrTransactionNotFound struct {
	ID uuid.UUID
}

func (e ErrTransactionNotFound) Error() string {
	return "custom transaction not found: " + e.ID.String()
}

// Is implements the errors.Is interface for ErrTransactionNotFound
func (e ErrTransactionNotFound) Is(target error) bool {
	t, ok := target.(ErrTransactionNotFound)
	if !ok {
		return false
	}
	if t.ID == uuid.Nil {
		return true
	}
	return e.ID == t.ID
}
