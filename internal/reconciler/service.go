package reconciler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/domain/ledger"
	"github.com/michaels22/GestorTechPlay/internal/domain/shared"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"github.com/michaels22/GestorTechPlay/internal/platform/messaging/producers"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	aggregator *Aggregator
	writer     *SelfHealingWriter
	txRepo     transaction.Repository
	producer   producers.MessagePublisher
	logger     *slog.Logger
}

// NewService creates a new ledger service
func NewService(
	logger *slog.Logger,
	aggregator *Aggregator,
	writer *SelfHealingWriter,
	txRepo transaction.Repository,
	producer producers.MessagePublisher,
) Service {
	return &ServiceImpl{
		aggregator: aggregator,
		writer:     writer,
		txRepo:     txRepo,
		producer:   producer,
		logger:     logger,
	}
}

// Load performs a full fetch-parse-merge-sort cycle and returns the report
func (s *ServiceImpl) Load(ctx context.Context) (*ledger.Report, error) {
	return s.aggregator.Load(ctx)
}

// CreateTransaction writes a new custom transaction through the self-healing
// path and returns the reloaded report
func (s *ServiceImpl) CreateTransaction(ctx context.Context, ownerID uuid.UUID, input WriteInput) (*ledger.Report, error) {
	tx, err := transaction.NewCustomTransaction(ownerID, input.Amount, input.Direction, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(ctx, tx); err != nil {
		s.logger.Error("Failed to create custom transaction", "error", err)
		return nil, err
	}

	s.publishEvent(ctx, shared.LedgerEvent{
		EventType:     shared.LedgerEventTransactionCreated,
		TransactionID: tx.ID,
		Direction:     string(tx.Direction),
		Amount:        tx.Amount,
		OccurredAt:    time.Now(),
	})

	return s.aggregator.Load(ctx)
}

// UpdateTransaction edits a custom transaction and returns the reloaded report
func (s *ServiceImpl) UpdateTransaction(ctx context.Context, id uuid.UUID, input WriteInput) (*ledger.Report, error) {
	if input.Direction != transaction.DirectionInflow && input.Direction != transaction.DirectionOutflow {
		return nil, transaction.ErrInvalidDirection
	}

	if err := s.txRepo.Update(ctx, id, input.Amount, input.Direction, input.Description); err != nil {
		s.logger.Error("Failed to update custom transaction", "transaction_id", id.String(), "error", err)
		return nil, err
	}

	s.publishEvent(ctx, shared.LedgerEvent{
		EventType:     shared.LedgerEventTransactionUpdated,
		TransactionID: id,
		Direction:     string(input.Direction),
		Amount:        input.Amount,
		OccurredAt:    time.Now(),
	})

	return s.aggregator.Load(ctx)
}

// DeleteTransaction removes a custom transaction and returns the reloaded report
func (s *ServiceImpl) DeleteTransaction(ctx context.Context, id uuid.UUID) (*ledger.Report, error) {
	if err := s.txRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete custom transaction", "transaction_id", id.String(), "error", err)
		return nil, err
	}

	s.publishEvent(ctx, shared.LedgerEvent{
		EventType:     shared.LedgerEventTransactionDeleted,
		TransactionID: id,
		OccurredAt:    time.Now(),
	})

	return s.aggregator.Load(ctx)
}

// publishEvent emits a ledger mutation event. Publishing is best-effort: a
// failure is logged and never propagated to the caller.
func (s *ServiceImpl) publishEvent(ctx context.Context, event shared.LedgerEvent) {
	if err := s.producer.Publish(ctx, event.TransactionID.String(), event); err != nil {
		s.logger.Warn("Failed to publish ledger event",
			"event_type", string(event.EventType),
			"transaction_id", event.TransactionID.String(),
			"error", err,
		)
	}
}
