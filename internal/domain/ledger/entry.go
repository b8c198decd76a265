// Package ledger defines the unified in-memory ledger derived on every load.
// Entries are never persisted; the ledger is recomputed from scratch from the
// catalog and the custom-transaction store.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
)

// DetailKind labels what a ledger entry was derived from
type DetailKind string

const (
	DetailKindPlan    DetailKind = "Plan"
	DetailKindProduct DetailKind = "Product"
	DetailKindCustom  DetailKind = "Custom"
)

// Defaults for custom entries with an empty counterparty or detail
const (
	DefaultCounterparty = "Custom transaction"
	DefaultDetail       = "No details"
)

// Entry is a single line of the unified ledger. Derived entries carry a
// synthesized id; custom entries carry the persisted transaction id and the
// raw description so edits can be pre-populated without lossy reconstruction.
type Entry struct {
	ID             string                `json:"id"`
	Counterparty   string                `json:"counterparty"`
	Direction      transaction.Direction `json:"direction"`
	Amount         float64               `json:"amount"`
	Timestamp      time.Time             `json:"timestamp"`
	DetailKind     DetailKind            `json:"detail_kind"`
	Detail         string                `json:"detail"`
	RawDescription string                `json:"raw_description,omitempty"`
	IsCustom       bool                  `json:"is_custom"`
}

// DerivedEntryID synthesizes a stable per-load identity for a derived entry
// as a pure function of direction and source customer. It is never used as a
// store key.
func DerivedEntryID(direction transaction.Direction, customerID uuid.UUID) string {
	return string(direction) + "-" + customerID.String()
}
