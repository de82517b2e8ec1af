package services

import (
	"time"

	"budgetwise/internal/models"

	"github.com/google/uuid"
)

// SummaryServiceInterface defines the period report operations
type SummaryServiceInterface interface {
	// GetSummaryByPeriod resolves the requested window and returns the
	// income/expense totals for it.
	GetSummaryByPeriod(userID uuid.UUID, query models.SummaryQuery) (*models.PeriodSummary, error)

	// GetSummaryBySubcategory returns the period totals plus a per-category
	// breakdown grouped under each side.
	GetSummaryBySubcategory(userID uuid.UUID, query models.SummaryQuery) (*models.SummaryBreakdown, error)
}

// DashboardServiceInterface defines the all-time analytics operations
type DashboardServiceInterface interface {
	GetDashboardData(userID uuid.UUID) (*models.DashboardSummary, error)
}

// InsightServiceInterface compares spending across adjacent calendar months
type InsightServiceInterface interface {
	GetExpenseInsight(userID uuid.UUID) (*models.ExpenseInsight, error)
}

// TransactionServiceInterface defines transaction write and listing operations
type TransactionServiceInterface interface {
	RecordTransaction(userID uuid.UUID, input models.RecordTransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, name, categoryType string) (*models.Category, error)
	GetUserCategories(userID uuid.UUID) ([]models.Category, error)
}

// TransactionGeneratorInterface generates realistic transaction data for
// development and testing
type TransactionGeneratorInterface interface {
	GenerateCategories(userID uuid.UUID) []models.Category
	GenerateTransactions(userID uuid.UUID, categories []models.Category, startDate, endDate time.Time, count int) []models.Transaction
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
