package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/michaels22/GestorTechPlay/internal/api/middleware"
	"github.com/michaels22/GestorTechPlay/internal/domain/transaction"
	"github.com/michaels22/GestorTechPlay/internal/reconciler"
)

// TransactionHandler handles HTTP requests for custom transaction mutations.
// Only custom ledger entries are addressable here: derived entries carry
// synthesized ids that never parse as store keys.
type TransactionHandler struct {
	ledgerService reconciler.Service
	logger        *slog.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, ledgerService reconciler.Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Create writes a new custom transaction and returns the reloaded ledger
func (h *TransactionHandler) Create(c *gin.Context) {
	var req WriteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	direction, err := transaction.ParseDirection(req.Direction)
	if err != nil {
		h.logger.Error("Invalid direction", "direction", req.Direction)
		RespondBadRequest(c, "Invalid direction")
		return
	}

	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		RespondUnauthorized(c, "")
		return
	}

	report, err := h.ledgerService.CreateTransaction(c.Request.Context(), ownerID, reconciler.WriteInput{
		Amount:      *req.Amount,
		Direction:   direction,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Failed to create transaction", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapReportToResponse(report))
}

// Update edits a custom transaction by id and returns the reloaded ledger
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := h.parseTransactionID(c)
	if !ok {
		return
	}

	var req WriteTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	direction, err := transaction.ParseDirection(req.Direction)
	if err != nil {
		h.logger.Error("Invalid direction", "direction", req.Direction)
		RespondBadRequest(c, "Invalid direction")
		return
	}

	report, err := h.ledgerService.UpdateTransaction(c.Request.Context(), id, reconciler.WriteInput{
		Amount:      *req.Amount,
		Direction:   direction,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound{}) {
			RespondNotFound(c, "Transaction not found")
			return
		}
		h.logger.Error("Failed to update transaction", "id", id.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapReportToResponse(report))
}

// Delete removes a custom transaction by id and returns the reloaded ledger
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := h.parseTransactionID(c)
	if !ok {
		return
	}

	report, err := h.ledgerService.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound{}) {
			RespondNotFound(c, "Transaction not found")
			return
		}
		h.logger.Error("Failed to delete transaction", "id", id.String(), "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapReportToResponse(report))
}

// parseTransactionID parses the id path parameter. Derived entry ids like
// "inflow-<uuid>" are not valid store keys and are rejected here.
func (h *TransactionHandler) parseTransactionID(c *gin.Context) (uuid.UUID, bool) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid transaction ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid transaction ID")
		return uuid.Nil, false
	}
	return id, true
}
