package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const topTransactionsLimit = 3

type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// GetDashboardData builds the all-time analytics view. It never takes period
// arguments; a user with no transactions at all gets ErrSummaryNotFound,
// everything else zero-fills.
func (s *dashboardService) GetDashboardData(userID uuid.UUID) (*models.DashboardSummary, error) {
	start := time.Now()

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id", ErrMissingParameter)
	}

	totals, err := s.transactionRepo.GetLifetimeTotals(userID)
	if err != nil {
		slog.Error("lifetime totals query failed",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}
	if totals.TransactionsCount == 0 {
		return nil, ErrSummaryNotFound
	}

	summary := &models.DashboardSummary{
		TotalIncome:       totals.IncomeTotal,
		TotalExpense:      totals.ExpenseTotal,
		NetDifference:     totals.NetDifference(),
		TransactionsCount: totals.TransactionsCount,
	}

	if err := s.attachCategoryTotals(userID, summary); err != nil {
		return nil, err
	}
	if err := s.attachTopTransactions(userID, summary); err != nil {
		return nil, err
	}
	if err := s.attachMonthlySeries(userID, summary); err != nil {
		return nil, err
	}

	slog.Info("dashboard data generated",
		"user_id", userID,
		"transactions_count", summary.TransactionsCount,
		"active_months", len(summary.MonthlyData))

	if s.metrics != nil {
		s.metrics.IncrementCounter("summary.request", map[string]string{
			"operation": "dashboard",
			"status":    "success",
		})
		s.metrics.RecordProcessingTime("summary.request", time.Since(start))
	}

	return summary, nil
}

func (s *dashboardService) attachCategoryTotals(userID uuid.UUID, summary *models.DashboardSummary) error {
	rows, err := s.transactionRepo.GetLifetimeCategoryTotals(userID)
	if err != nil {
		slog.Error("lifetime category totals query failed",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}

	summary.IncomeByCategory = make(map[string]decimal.Decimal)
	summary.ExpenseByCategory = make(map[string]decimal.Decimal)
	for _, row := range rows {
		switch row.CategoryType {
		case models.CategoryTypeIncome:
			summary.IncomeByCategory[row.Category] = row.Total
		case models.CategoryTypeExpense:
			summary.ExpenseByCategory[row.Category] = row.Total
		}
	}
	return nil
}

func (s *dashboardService) attachTopTransactions(userID uuid.UUID, summary *models.DashboardSummary) error {
	topIncome, err := s.transactionRepo.GetTopByCategoryType(userID, models.CategoryTypeIncome, topTransactionsLimit)
	if err != nil {
		slog.Error("top income query failed", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}
	topExpense, err := s.transactionRepo.GetTopByCategoryType(userID, models.CategoryTypeExpense, topTransactionsLimit)
	if err != nil {
		slog.Error("top expense query failed", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}

	summary.TopIncome = topIncome
	summary.TopExpense = topExpense

	// The single highest transaction is just the head of the ranked list.
	if len(topIncome) > 0 {
		summary.HighestIncome = &topIncome[0]
	}
	if len(topExpense) > 0 {
		summary.HighestExpense = &topExpense[0]
	}
	return nil
}

// attachMonthlySeries buckets every transaction by calendar month 1-12,
// aggregating across years: a January 2024 and a January 2025 transaction land
// in the same bucket.
func (s *dashboardService) attachMonthlySeries(userID uuid.UUID, summary *models.DashboardSummary) error {
	activity, err := s.transactionRepo.GetActivity(userID)
	if err != nil {
		slog.Error("activity query failed", "user_id", userID, "error", err)
		return fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}

	counts := make(map[int]int64)
	incomeByMonth := make(map[int]decimal.Decimal)
	expenseByMonth := make(map[int]decimal.Decimal)

	for _, row := range activity {
		month := int(row.CreatedDate.Month())
		counts[month]++
		switch row.CategoryType {
		case models.CategoryTypeIncome:
			incomeByMonth[month] = incomeByMonth[month].Add(row.Amount)
		case models.CategoryTypeExpense:
			expenseByMonth[month] = expenseByMonth[month].Add(row.Amount)
		}
	}

	summary.MonthlyCounts = counts
	summary.MonthlyData = mergeMonthlyFlows(incomeByMonth, expenseByMonth)
	return nil
}

// mergeMonthlyFlows combines the two per-month sums into one month-ordered
// series covering the union of active months, zero-filling the missing side.
func mergeMonthlyFlows(income, expense map[int]decimal.Decimal) []models.MonthlyFlow {
	months := make(map[int]struct{})
	for month := range income {
		months[month] = struct{}{}
	}
	for month := range expense {
		months[month] = struct{}{}
	}

	ordered := make([]int, 0, len(months))
	for month := range months {
		ordered = append(ordered, month)
	}
	sort.Ints(ordered)

	flows := make([]models.MonthlyFlow, 0, len(ordered))
	for _, month := range ordered {
		flows = append(flows, models.MonthlyFlow{
			Month:   month,
			Income:  income[month],
			Expense: expense[month],
		})
	}
	return flows
}
