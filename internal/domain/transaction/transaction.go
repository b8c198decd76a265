// Package transaction defines manually entered transactions, the only
// records this service writes. The backing relation may not exist on first
// use; writes recover from that via on-demand provisioning.
package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Direction defines the flow of money in a transaction
type Direction string

const (
	DirectionInflow  Direction = "inflow"
	DirectionOutflow Direction = "outflow"
)

var ErrInvalidDirection = errors.New("direction must be inflow or outflow")

// ParseDirection converts a string into a Direction
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionInflow:
		return DirectionInflow, nil
	case DirectionOutflow:
		return DirectionOutflow, nil
	default:
		return "", ErrInvalidDirection
	}
}

// CustomTransaction is a manually entered transaction. The first line of
// Description is the counterparty label; the remaining lines are free-form
// detail.
type CustomTransaction struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCustomTransaction creates a new custom transaction owned by ownerID
func NewCustomTransaction(ownerID uuid.UUID, amount float64, direction Direction, description string) (*CustomTransaction, error) {
	if direction != DirectionInflow && direction != DirectionOutflow {
		return nil, ErrInvalidDirection
	}

	return &CustomTransaction{
		ID:          uuid.New(),
		Amount:      amount,
		Direction:   direction,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now(),
	}, nil
}
