package handler

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/michaels22/GestorTechPlay/internal/domain/ledger"
	"github.com/michaels22/GestorTechPlay/internal/reconciler"
)

// LedgerHandler handles HTTP requests for the unified ledger
type LedgerHandler struct {
	ledgerService reconciler.Service
	logger        *slog.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(logger *slog.Logger, ledgerService reconciler.Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Get performs a full ledger load and returns the totals and sorted entries
func (h *LedgerHandler) Get(c *gin.Context) {
	report, err := h.ledgerService.Load(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load ledger", "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapReportToResponse(report))
}

// mapReportToResponse maps a ledger report to its response DTO
func mapReportToResponse(report *ledger.Report) LedgerReportResponse {
	entries := make([]LedgerEntryResponse, 0, len(report.Entries))
	for _, entry := range report.Entries {
		entries = append(entries, LedgerEntryResponse{
			ID:             entry.ID,
			Counterparty:   entry.Counterparty,
			Direction:      string(entry.Direction),
			Amount:         entry.Amount,
			Timestamp:      entry.Timestamp.Format(time.RFC3339),
			DetailKind:     string(entry.DetailKind),
			Detail:         entry.Detail,
			RawDescription: entry.RawDescription,
			IsCustom:       entry.IsCustom,
		})
	}

	return LedgerReportResponse{
		TotalInflow:  report.TotalInflow,
		TotalOutflow: report.TotalOutflow,
		NetProfit:    report.NetProfit,
		Entries:      entries,
	}
}
