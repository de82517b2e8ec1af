package dto

import (
	"budgetwise/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryResponse is the wire shape of a period summary when both sides were
// requested.
type SummaryResponse struct {
	Type                    string          `json:"type"`
	Subcategory             string          `json:"subcategory"`
	RangeStart              string          `json:"range_start"`
	RangeEnd                string          `json:"range_end"`
	TransactionsCount       int64           `json:"transactions_count"`
	IncomeTransactionTotal  decimal.Decimal `json:"income_transaction_total"`
	ExpenseTransactionTotal decimal.Decimal `json:"expense_transaction_total"`
	NetDifference           decimal.Decimal `json:"net_difference"`
}

// ScopedSummaryResponse is the wire shape when the caller narrowed to one
// side: the side's count and sum move into generic slots and the other side is
// omitted entirely.
type ScopedSummaryResponse struct {
	Type              string          `json:"type"`
	Subcategory       string          `json:"subcategory"`
	RangeStart        string          `json:"range_start"`
	RangeEnd          string          `json:"range_end"`
	TotalTransactions int64           `json:"total_transactions"`
	Total             decimal.Decimal `json:"total"`
}

// NewSummaryResponse shapes the canonical summary for the caller's scope. The
// canonical record is always fully populated; this is the single place where
// narrowing happens.
func NewSummaryResponse(summary *models.PeriodSummary) interface{} {
	switch summary.Scope {
	case models.ScopeIncome:
		return ScopedSummaryResponse{
			Type:              string(summary.Scope),
			Subcategory:       summary.Subcategory,
			RangeStart:        summary.RangeStart,
			RangeEnd:          summary.RangeEnd,
			TotalTransactions: summary.IncomeCount,
			Total:             summary.IncomeTotal,
		}
	case models.ScopeExpense:
		return ScopedSummaryResponse{
			Type:              string(summary.Scope),
			Subcategory:       summary.Subcategory,
			RangeStart:        summary.RangeStart,
			RangeEnd:          summary.RangeEnd,
			TotalTransactions: summary.ExpenseCount,
			Total:             summary.ExpenseTotal,
		}
	default:
		return SummaryResponse{
			Type:                    string(summary.Scope),
			Subcategory:             summary.Subcategory,
			RangeStart:              summary.RangeStart,
			RangeEnd:                summary.RangeEnd,
			TransactionsCount:       summary.TransactionsCount,
			IncomeTransactionTotal:  summary.IncomeTotal,
			ExpenseTransactionTotal: summary.ExpenseTotal,
			NetDifference:           summary.NetDifference,
		}
	}
}
