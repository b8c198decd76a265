package handler

// WriteTransactionRequest represents a request to create or edit a custom
// transaction. Amount is a pointer so a zero amount still binds; only a
// missing field is rejected.
type WriteTransactionRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Direction   string   `json:"direction" binding:"required,oneof=inflow outflow"`
	Description string   `json:"description"`
}

// LedgerEntryResponse represents a single ledger entry in API responses
type LedgerEntryResponse struct {
	ID             string  `json:"id"`
	Counterparty   string  `json:"counterparty"`
	Direction      string  `json:"direction"`
	Amount         float64 `json:"amount"`
	Timestamp      string  `json:"timestamp"`
	DetailKind     string  `json:"detail_kind"`
	Detail         string  `json:"detail"`
	RawDescription string  `json:"raw_description,omitempty"`
	IsCustom       bool    `json:"is_custom"`
}

// LedgerReportResponse represents the unified ledger in API responses
type LedgerReportResponse struct {
	TotalInflow  float64               `json:"total_inflow"`
	TotalOutflow float64               `json:"total_outflow"`
	NetProfit    float64               `json:"net_profit"`
	Entries      []LedgerEntryResponse `json:"entries"`
}
