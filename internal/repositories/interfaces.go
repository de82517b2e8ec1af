package repositories

import (
	"budgetwise/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	// GetByName matches the category name case-insensitively.
	GetByName(userID uuid.UUID, name string) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository
// operations, including the read-only aggregate queries the summary engine runs.
// All aggregate methods group on the linked category's type, never on the
// transaction's own type field.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)

	// Windowed aggregates for period reports.
	GetTypeTotals(userID uuid.UUID, window *models.PeriodWindow) (*models.TypeTotals, error)
	GetCategoryTotals(userID uuid.UUID, window *models.PeriodWindow) ([]models.CategoryTotal, error)

	// All-time aggregates for the dashboard.
	GetLifetimeTotals(userID uuid.UUID) (*models.TypeTotals, error)
	GetLifetimeCategoryTotals(userID uuid.UUID) ([]models.CategoryTotal, error)
	GetTopByCategoryType(userID uuid.UUID, categoryType string, limit int) ([]models.TransactionHighlight, error)
	GetActivity(userID uuid.UUID) ([]models.ActivityRow, error)
}
