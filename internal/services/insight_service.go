package services

import (
	"fmt"
	"log/slog"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var percentFactor = decimal.NewFromInt(100)

type insightService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	now             func() time.Time
}

func NewInsightService(transactionRepo repositories.TransactionRepositoryInterface) InsightServiceInterface {
	return &insightService{
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// GetExpenseInsight compares this calendar month's expense total with last
// month's, wrapping across the year boundary in January.
func (s *insightService) GetExpenseInsight(userID uuid.UUID) (*models.ExpenseInsight, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id", ErrMissingParameter)
	}

	now := s.now()
	currentYear, currentMonth := now.Year(), now.Month()
	previousYear, previousMonth := previousCalendarMonth(currentYear, currentMonth)

	current, err := s.expenseTotalFor(userID, currentYear, currentMonth)
	if err != nil {
		return nil, err
	}
	previous, err := s.expenseTotalFor(userID, previousYear, previousMonth)
	if err != nil {
		return nil, err
	}

	insight := buildExpenseInsight(current, previous)

	slog.Info("expense insight generated",
		"user_id", userID,
		"current_total", insight.CurrentTotal.String(),
		"previous_total", insight.PreviousTotal.String(),
		"percent_change", insight.PercentChange.String())

	return insight, nil
}

func (s *insightService) expenseTotalFor(userID uuid.UUID, year int, month time.Month) (decimal.Decimal, error) {
	window := &models.PeriodWindow{Ranges: []models.DateRange{monthRange(year, month)}}

	totals, err := s.transactionRepo.GetTypeTotals(userID, window)
	if err != nil {
		slog.Error("monthly expense query failed",
			"user_id", userID,
			"year", year,
			"month", int(month),
			"error", err)
		return decimal.Zero, fmt.Errorf("%w: %v", ErrSummaryDatabase, err)
	}
	return totals.ExpenseTotal, nil
}

func previousCalendarMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// buildExpenseInsight computes the delta and a human-readable statement. An
// empty previous month reports a zero percent change rather than dividing.
func buildExpenseInsight(current, previous decimal.Decimal) *models.ExpenseInsight {
	difference := current.Sub(previous).Round(2)

	percentChange := decimal.Zero
	if !previous.IsZero() {
		percentChange = current.Sub(previous).Div(previous.Abs()).Mul(percentFactor).Round(2)
	}

	var statement string
	switch {
	case percentChange.IsPositive():
		statement = fmt.Sprintf("Your expenses increased by %s%% compared to last month.", percentChange.String())
	case percentChange.IsNegative():
		statement = fmt.Sprintf("Your expenses decreased by %s%% compared to last month.", percentChange.Abs().String())
	default:
		statement = "Your expenses remained the same as last month."
	}

	return &models.ExpenseInsight{
		CurrentTotal:  current,
		PreviousTotal: previous,
		Difference:    difference,
		PercentChange: percentChange,
		Statement:     statement,
	}
}
