package ledger

// Report is the output of a full ledger load: aggregate totals and the
// unified entry list sorted by descending timestamp. Invariant: NetProfit
// always equals TotalInflow minus TotalOutflow.
type Report struct {
	TotalInflow  float64  `json:"total_inflow"`
	TotalOutflow float64  `json:"total_outflow"`
	NetProfit    float64  `json:"net_profit"`
	Entries      []*Entry `json:"entries"`
}
