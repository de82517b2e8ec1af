package repositories

import (
	"errors"
	"fmt"
	"strings"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByUserID retrieves a user's transactions with pagination, newest first
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_date DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetTypeTotals computes, in a single pass, transaction counts and amount sums
// split by the linked category's type for everything matching the window.
// Zero matching rows yields zeroed totals, not an error.
func (r *transactionRepository) GetTypeTotals(userID uuid.UUID, window *models.PeriodWindow) (*models.TypeTotals, error) {
	var totals models.TypeTotals

	query := r.db.Model(&models.Transaction{}).
		Select(`COUNT(*) AS transactions_count,
			COALESCE(SUM(CASE WHEN categories.type = 'income' THEN 1 ELSE 0 END), 0) AS income_count,
			COALESCE(SUM(CASE WHEN categories.type = 'expense' THEN 1 ELSE 0 END), 0) AS expense_count,
			COALESCE(SUM(CASE WHEN categories.type = 'income' THEN transactions.amount ELSE 0 END), 0) AS income_total,
			COALESCE(SUM(CASE WHEN categories.type = 'expense' THEN transactions.amount ELSE 0 END), 0) AS expense_total`).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID)

	query = applyWindow(query, window)

	if err := query.Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get type totals: %w", err)
	}

	return &totals, nil
}

// GetCategoryTotals computes amount sums grouped by (category name, category type)
// for everything matching the window. The caller's transaction-type scope is
// deliberately not applied here; scoping happens over the grouped rows.
func (r *transactionRepository) GetCategoryTotals(userID uuid.UUID, window *models.PeriodWindow) ([]models.CategoryTotal, error) {
	var rows []models.CategoryTotal

	query := r.db.Model(&models.Transaction{}).
		Select(`categories.name AS category,
			categories.type AS category_type,
			SUM(transactions.amount) AS total`).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID)

	query = applyWindow(query, window)

	if err := query.Group("categories.name, categories.type").
		Order("categories.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	return rows, nil
}

// GetLifetimeTotals computes the all-time type totals for a user
func (r *transactionRepository) GetLifetimeTotals(userID uuid.UUID) (*models.TypeTotals, error) {
	return r.GetTypeTotals(userID, nil)
}

// GetLifetimeCategoryTotals computes the all-time per-category totals for a user
func (r *transactionRepository) GetLifetimeCategoryTotals(userID uuid.UUID) ([]models.CategoryTotal, error) {
	return r.GetCategoryTotals(userID, nil)
}

// GetTopByCategoryType retrieves a user's largest transactions on one side,
// ordered by amount descending. Equal amounts keep the store's scan order; no
// secondary sort key is defined.
func (r *transactionRepository) GetTopByCategoryType(userID uuid.UUID, categoryType string, limit int) ([]models.TransactionHighlight, error) {
	var highlights []models.TransactionHighlight

	if err := r.db.Model(&models.Transaction{}).
		Select(`transactions.id,
			transactions.amount,
			categories.name AS category,
			transactions.description,
			transactions.created_date`).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND categories.type = ?", userID, categoryType).
		Order("transactions.amount DESC").
		Limit(limit).
		Scan(&highlights).Error; err != nil {
		return nil, fmt.Errorf("failed to get top transactions: %w", err)
	}

	return highlights, nil
}

// GetActivity retrieves the minimal (date, amount, category type) projection of
// all of a user's transactions for in-memory month bucketing.
func (r *transactionRepository) GetActivity(userID uuid.UUID) ([]models.ActivityRow, error) {
	var rows []models.ActivityRow

	if err := r.db.Model(&models.Transaction{}).
		Select(`transactions.created_date,
			transactions.amount,
			categories.type AS category_type`).
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.created_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return rows, nil
}

// applyWindow appends the resolved period predicate to a query. The predicate is
// a union of inclusive day ranges so it stays portable plain-date SQL; an empty
// union matches nothing by construction. The optional subcategory filter is a
// case-insensitive exact match on the category name.
func applyWindow(query *gorm.DB, window *models.PeriodWindow) *gorm.DB {
	if window == nil {
		return query
	}

	if len(window.Ranges) == 0 {
		query = query.Where("1 = 0")
	} else {
		var clause strings.Builder
		args := make([]interface{}, 0, len(window.Ranges)*2)
		for i, r := range window.Ranges {
			if i > 0 {
				clause.WriteString(" OR ")
			}
			clause.WriteString("transactions.created_date BETWEEN ? AND ?")
			args = append(args, r.Start, r.End)
		}
		query = query.Where("("+clause.String()+")", args...)
	}

	if window.Subcategory != "" {
		query = query.Where("LOWER(categories.name) = LOWER(?)", window.Subcategory)
	}

	return query
}
