package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrSummaryNotFound = errors.New("no transactions found")
	ErrSummaryDatabase = errors.New("summary query failed")
)

// CallerDashboard marks a request coming through the dashboard shortcut, which
// substitutes the current year for the period arguments.
const CallerDashboard = "dashboard"

const dateLayout = "2006-01-02"

type summaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewSummaryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) SummaryServiceInterface {
	return &summaryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

func (s *summaryService) GetSummaryByPeriod(userID uuid.UUID, query models.SummaryQuery) (*models.PeriodSummary, error) {
	start := time.Now()

	window, scope, err := s.prepare(userID, &query)
	if err != nil {
		s.recordOutcome("period", "rejected", start)
		return nil, err
	}

	totals, err := s.fetchTotals(userID, window, query.Subcategory)
	if err != nil {
		s.recordOutcome("period", outcomeOf(err), start)
		return nil, err
	}

	summary := &models.PeriodSummary{
		Scope:             scope,
		Subcategory:       subcategoryLabel(query.Subcategory),
		RangeStart:        window.RangeStart.Format(dateLayout),
		RangeEnd:          window.RangeEnd.Format(dateLayout),
		TransactionsCount: totals.TransactionsCount,
		IncomeCount:       totals.IncomeCount,
		ExpenseCount:      totals.ExpenseCount,
		IncomeTotal:       totals.IncomeTotal,
		ExpenseTotal:      totals.ExpenseTotal,
		NetDifference:     totals.NetDifference(),
	}

	slog.Info("period summary generated",
		"user_id", userID,
		"period_type", query.PeriodType,
		"scope", scope,
		"transactions_count", summary.TransactionsCount,
		"net_difference", summary.NetDifference.String())

	s.recordOutcome("period", "success", start)
	return summary, nil
}

func (s *summaryService) GetSummaryBySubcategory(userID uuid.UUID, query models.SummaryQuery) (*models.SummaryBreakdown, error) {
	start := time.Now()

	window, scope, err := s.prepare(userID, &query)
	if err != nil {
		s.recordOutcome("breakdown", "rejected", start)
		return nil, err
	}

	totals, err := s.fetchTotals(userID, window, query.Subcategory)
	if err != nil {
		s.recordOutcome("breakdown", outcomeOf(err), start)
		return nil, err
	}

	rows, err := s.transactionRepo.GetCategoryTotals(userID, window)
	if err != nil {
		slog.Error("category totals query failed",
			"user_id", userID,
			"error", err)
		s.recordOutcome("breakdown", "error", start)
		return nil, fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}

	breakdown := &models.SummaryBreakdown{
		Scope:             scope,
		Subcategory:       subcategoryLabel(query.Subcategory),
		RangeStart:        window.RangeStart.Format(dateLayout),
		RangeEnd:          window.RangeEnd.Format(dateLayout),
		TransactionsCount: totals.TransactionsCount,
		TotalIncome:       totals.IncomeTotal,
		TotalExpense:      totals.ExpenseTotal,
		NetDifference:     totals.NetDifference(),
		Breakdown:         partitionByType(rows, scope),
	}

	slog.Info("subcategory breakdown generated",
		"user_id", userID,
		"subcategory", breakdown.Subcategory,
		"income_categories", len(breakdown.Breakdown.Income),
		"expense_categories", len(breakdown.Breakdown.Expense))

	s.recordOutcome("breakdown", "success", start)
	return breakdown, nil
}

// prepare validates the caller, applies the dashboard shortcut defaults and
// resolves the window. The scope normalization is deliberately forgiving: any
// unrecognized transaction type falls back to "all".
func (s *summaryService) prepare(userID uuid.UUID, query *models.SummaryQuery) (*models.PeriodWindow, models.SummaryScope, error) {
	if userID == uuid.Nil {
		return nil, "", fmt.Errorf("%w: user_id", ErrMissingParameter)
	}

	if query.Caller == CallerDashboard {
		currentYear := strconv.Itoa(time.Now().Year())
		query.PeriodType = PeriodTypeYear
		query.Start = currentYear
		query.End = currentYear
	}

	window, err := resolvePeriod(query.PeriodType, query.Start, query.End, query.Subcategory)
	if err != nil {
		slog.Warn("period resolution failed",
			"user_id", userID,
			"period_type", query.PeriodType,
			"start", query.Start,
			"end", query.End,
			"error", err)
		return nil, "", err
	}

	return window, normalizeScope(query.Type), nil
}

// fetchTotals runs the header aggregation and turns an empty window into
// ErrSummaryNotFound, naming the subcategory when one was requested.
func (s *summaryService) fetchTotals(userID uuid.UUID, window *models.PeriodWindow, subcategory string) (*models.TypeTotals, error) {
	totals, err := s.transactionRepo.GetTypeTotals(userID, window)
	if err != nil {
		slog.Error("type totals query failed",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}

	if totals.TransactionsCount == 0 {
		if subcategory != "" {
			return nil, fmt.Errorf("%w for subcategory %q", ErrSummaryNotFound, subcategory)
		}
		return nil, ErrSummaryNotFound
	}

	return totals, nil
}

func (s *summaryService) recordOutcome(operation, status string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("summary.request", map[string]string{
		"operation": operation,
		"status":    status,
	})
	s.metrics.RecordProcessingTime("summary.request", time.Since(start))
}

func outcomeOf(err error) string {
	if errors.Is(err, ErrSummaryNotFound) {
		return "not_found"
	}
	return "error"
}

// partitionByType splits grouped category rows into the income and expense
// sides. A narrowed scope leaves the other side as an empty slice.
func partitionByType(rows []models.CategoryTotal, scope models.SummaryScope) models.Breakdown {
	breakdown := models.Breakdown{
		Income:  []models.BreakdownEntry{},
		Expense: []models.BreakdownEntry{},
	}

	for _, row := range rows {
		entry := models.BreakdownEntry{Category: row.Category, Total: row.Total}
		switch row.CategoryType {
		case models.CategoryTypeIncome:
			if scope != models.ScopeExpense {
				breakdown.Income = append(breakdown.Income, entry)
			}
		case models.CategoryTypeExpense:
			if scope != models.ScopeIncome {
				breakdown.Expense = append(breakdown.Expense, entry)
			}
		}
	}

	return breakdown
}

func normalizeScope(txType string) models.SummaryScope {
	switch txType {
	case models.TransactionTypeIncome:
		return models.ScopeIncome
	case models.TransactionTypeExpense:
		return models.ScopeExpense
	default:
		return models.ScopeAll
	}
}

// subcategoryLabel substitutes the catch-all label when no filter was given.
func subcategoryLabel(subcategory string) string {
	if subcategory == "" {
		return "All"
	}
	return subcategory
}
