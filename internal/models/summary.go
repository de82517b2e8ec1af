package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryQuery carries the raw report request as received from the caller.
// Start and End are uninterpreted strings whose format depends on PeriodType
// ("YYYY", "YYYY-MM" or "YYYY-MM-DD").
type SummaryQuery struct {
	PeriodType  string
	Type        string
	Start       string
	End         string
	Subcategory string
	Caller      string
}

// TypeTotals is the single-pass aggregate over a filtered transaction set,
// split by the linked category's type.
type TypeTotals struct {
	TransactionsCount int64           `json:"transactions_count"`
	IncomeCount       int64           `json:"income_count"`
	ExpenseCount      int64           `json:"expense_count"`
	IncomeTotal       decimal.Decimal `json:"income_total"`
	ExpenseTotal      decimal.Decimal `json:"expense_total"`
}

// NetDifference returns income minus expense.
func (t *TypeTotals) NetDifference() decimal.Decimal {
	return t.IncomeTotal.Sub(t.ExpenseTotal)
}

// CategoryTotal is one row of a per-category aggregation.
type CategoryTotal struct {
	Category     string          `json:"category"`
	CategoryType string          `json:"category_type"`
	Total        decimal.Decimal `json:"total"`
}

// SummaryScope tags which side(s) of a summary a caller asked for.
type SummaryScope string

const (
	ScopeAll     SummaryScope = "all"
	ScopeIncome  SummaryScope = "income"
	ScopeExpense SummaryScope = "expense"
)

// PeriodSummary is the canonical period report. Every field is always populated
// regardless of the requested scope; narrowing to one side happens at the
// serialization boundary, not here.
type PeriodSummary struct {
	Scope             SummaryScope    `json:"type"`
	Subcategory       string          `json:"subcategory"`
	RangeStart        string          `json:"range_start"`
	RangeEnd          string          `json:"range_end"`
	TransactionsCount int64           `json:"transactions_count"`
	IncomeCount       int64           `json:"-"`
	ExpenseCount      int64           `json:"-"`
	IncomeTotal       decimal.Decimal `json:"income_transaction_total"`
	ExpenseTotal      decimal.Decimal `json:"expense_transaction_total"`
	NetDifference     decimal.Decimal `json:"net_difference"`
}

// BreakdownEntry is one category's total inside a breakdown report.
type BreakdownEntry struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// Breakdown groups per-category totals by side. Both slices are always present;
// a scope-narrowed request leaves the other side empty, never nil.
type Breakdown struct {
	Income  []BreakdownEntry `json:"income"`
	Expense []BreakdownEntry `json:"expense"`
}

// SummaryBreakdown is the period report further split by category name.
type SummaryBreakdown struct {
	Scope             SummaryScope    `json:"type"`
	Subcategory       string          `json:"subcategory"`
	RangeStart        string          `json:"range_start"`
	RangeEnd          string          `json:"range_end"`
	TransactionsCount int64           `json:"transactions_count"`
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpense      decimal.Decimal `json:"total_expense"`
	NetDifference     decimal.Decimal `json:"net_difference"`
	Breakdown         Breakdown       `json:"summary_breakdown"`
}

// TransactionHighlight is a single notable transaction surfaced on the dashboard.
type TransactionHighlight struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	CreatedDate time.Time       `json:"created_date"`
}

// ActivityRow is the minimal projection the dashboard fetches for in-memory
// month bucketing.
type ActivityRow struct {
	CreatedDate  time.Time       `json:"created_date"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryType string          `json:"category_type"`
}

// MonthlyFlow is one row of the dashboard time series: calendar month (1-12,
// aggregated across all years) with the income and expense sums for that month.
type MonthlyFlow struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardSummary is the all-time analytics view.
type DashboardSummary struct {
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpense      decimal.Decimal            `json:"total_expense"`
	NetDifference     decimal.Decimal            `json:"net_difference"`
	TransactionsCount int64                      `json:"transactions_count"`
	IncomeByCategory  map[string]decimal.Decimal `json:"income_by_category"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expense_by_category"`
	TopIncome         []TransactionHighlight     `json:"top_income_transactions"`
	TopExpense        []TransactionHighlight     `json:"top_expense_transactions"`
	HighestIncome     *TransactionHighlight      `json:"highest_income_transaction"`
	HighestExpense    *TransactionHighlight      `json:"highest_expense_transaction"`
	MonthlyCounts     map[int]int64              `json:"monthly_transaction_counts"`
	MonthlyData       []MonthlyFlow              `json:"monthly_data"`
}

// ExpenseInsight compares the current calendar month's expenses with the
// previous month's.
type ExpenseInsight struct {
	CurrentTotal  decimal.Decimal `json:"current_total"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	Difference    decimal.Decimal `json:"difference"`
	PercentChange decimal.Decimal `json:"percent_change"`
	Statement     string          `json:"statement"`
}
