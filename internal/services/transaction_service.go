package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("amount must not be negative")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
	}
}

// RecordTransaction stores a transaction, creating the referenced category on
// first use. The new category inherits the transaction's type, which keeps
// Category.type authoritative for all later aggregation.
func (s *transactionService) RecordTransaction(userID uuid.UUID, input models.RecordTransactionInput) (*models.Transaction, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id", ErrMissingParameter)
	}
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category", ErrMissingParameter)
	}
	if !models.IsValidTransactionType(input.Type) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTransactionType, input.Type)
	}
	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	category, err := s.resolveCategory(userID, input.Category, input.Type)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: input.Description,
	}
	if input.CreatedDate != nil {
		transaction.CreatedDate = *input.CreatedDate
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to record transaction",
			"user_id", userID,
			"category", category.Name,
			"error", err)
		return nil, err
	}

	slog.Info("transaction recorded",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"category", category.Name,
		"type", transaction.Type,
		"amount", transaction.Amount.String())

	if s.metrics != nil {
		s.metrics.IncrementCounter("transaction.recorded", map[string]string{
			"type": transaction.Type,
		})
	}

	return transaction, nil
}

func (s *transactionService) GetUserTransactions(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: user_id", ErrMissingParameter)
	}
	return s.transactionRepo.GetByUserID(userID, offset, limit)
}

// resolveCategory finds the named category case-insensitively, creating it
// when the name has never been used by this user.
func (s *transactionService) resolveCategory(userID uuid.UUID, name, categoryType string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByName(userID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		slog.Error("failed to look up category",
			"user_id", userID,
			"category", name,
			"error", err)
		return nil, err
	}

	category = &models.Category{
		Name:   name,
		Type:   categoryType,
		UserID: userID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		slog.Error("failed to create category",
			"user_id", userID,
			"category", name,
			"error", err)
		return nil, err
	}

	slog.Info("category created implicitly",
		"user_id", userID,
		"category", category.Name,
		"type", category.Type)

	return category, nil
}
