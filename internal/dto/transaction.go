package dto

import (
	"time"

	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for recording a transaction.
// Amount travels as a string to avoid float rounding on the wire.
type CreateTransactionRequest struct {
	Amount      string `json:"amount" validate:"required,amount"`
	Type        string `json:"type" validate:"required,category_type"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=255"`
	CreatedDate string `json:"created_date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the wire shape of a single transaction.
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedDate string          `json:"created_date"`
}

// TransactionListMeta carries pagination info for transaction listings.
type TransactionListMeta struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// NewTransactionResponse converts a transaction model to its wire shape.
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Type:        transaction.Type,
		Description: transaction.Description,
		CreatedDate: transaction.CreatedDate.Format("2006-01-02"),
	}
	if transaction.Category.Name != "" {
		response.Category = transaction.Category.Name
	}
	return response
}

// NewTransactionListResponse converts a page of transactions.
func NewTransactionListResponse(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}

// SeedRequest configures sample data generation for development environments.
type SeedRequest struct {
	Months int `json:"months" validate:"omitempty,min=1,max=36"`
	Count  int `json:"count" validate:"omitempty,min=1,max=5000"`
}

// SeedResponse reports what was generated.
type SeedResponse struct {
	Categories   int       `json:"categories"`
	Transactions int       `json:"transactions"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
}
