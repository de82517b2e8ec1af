package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNameEmpty   = errors.New("category name is required")
)

// Category buckets a user's transactions. Name is stored case-sensitively but is
// matched case-insensitively everywhere the summary engine filters on it.
// Category.type is the authoritative side (income/expense) for all report
// aggregation; Transaction.Type is informational and may lag behind.
type Category struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Type   string    `gorm:"type:varchar(20);not null" json:"type"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name;index" json:"user_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}
