package shared

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEventType defines the kinds of ledger mutation events
type LedgerEventType string

const (
	LedgerEventTransactionCreated LedgerEventType = "TRANSACTION_CREATED"
	LedgerEventTransactionUpdated LedgerEventType = "TRANSACTION_UPDATED"
	LedgerEventTransactionDeleted LedgerEventType = "TRANSACTION_DELETED"
)

// LedgerEvent is the message published to the ledger event stream after a
// successful custom-transaction mutation.
type LedgerEvent struct {
	EventType     LedgerEventType `json:"event_type"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Direction     string          `json:"direction,omitempty"`
	Amount        float64         `json:"amount,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
