package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount must not be negative")
)

// Transaction is a single income or expense entry. Amounts are unsigned; the
// direction is carried by the linked category's type. The transaction's own Type
// field is expected to match Category.Type but is not hard-enforced at write
// time — the summary engine always groups on Category.Type, so a divergent
// Transaction.Type never skews a report.
//
// CreatedDate is the business date used by all aggregation; UpdatedAt is an
// audit timestamp and never participates in report windows.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(20);not null" json:"type"`
	Description string          `gorm:"type:varchar(255)" json:"description,omitempty"`
	CreatedDate time.Time       `gorm:"type:date;not null;index" json:"created_date"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// RecordTransactionInput carries the fields needed to record a transaction.
// CreatedDate is optional; the store defaults it to today when unset.
type RecordTransactionInput struct {
	Amount      decimal.Decimal
	Type        string
	Category    string
	Description string
	CreatedDate *time.Time
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.CreatedDate.IsZero() {
		now := time.Now().UTC()
		t.CreatedDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now().UTC()
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now().UTC()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if t.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// IsIncome returns true if the transaction records income
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true if the transaction records an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
