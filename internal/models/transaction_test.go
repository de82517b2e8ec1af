package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() Transaction {
	return Transaction{
		UserID:      uuid.New(),
		CategoryID:  uuid.New(),
		Amount:      decimal.NewFromFloat(42.50),
		Type:        TransactionTypeExpense,
		CreatedDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransaction_Validate(t *testing.T) {
	transaction := validTransaction()
	assert.NoError(t, transaction.Validate())

	transaction = validTransaction()
	transaction.UserID = uuid.Nil
	assert.Error(t, transaction.Validate())

	transaction = validTransaction()
	transaction.CategoryID = uuid.Nil
	assert.Error(t, transaction.Validate())

	transaction = validTransaction()
	transaction.Type = "transfer"
	assert.ErrorIs(t, transaction.Validate(), ErrInvalidTransactionType)

	transaction = validTransaction()
	transaction.Amount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, transaction.Validate(), ErrNegativeAmount)

	// Zero amounts are allowed.
	transaction = validTransaction()
	transaction.Amount = decimal.Zero
	assert.NoError(t, transaction.Validate())
}

func TestTransaction_TypePredicates(t *testing.T) {
	transaction := validTransaction()
	assert.True(t, transaction.IsExpense())
	assert.False(t, transaction.IsIncome())

	transaction.Type = TransactionTypeIncome
	assert.True(t, transaction.IsIncome())
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType(TransactionTypeIncome))
	assert.True(t, IsValidTransactionType(TransactionTypeExpense))
	assert.False(t, IsValidTransactionType(""))
	assert.False(t, IsValidTransactionType("Income"))
	assert.False(t, IsValidTransactionType("transfer"))
}

func TestTypeTotals_NetDifference(t *testing.T) {
	totals := TypeTotals{
		IncomeTotal:  decimal.NewFromInt(200),
		ExpenseTotal: decimal.NewFromInt(50),
	}
	assert.True(t, totals.NetDifference().Equal(decimal.NewFromInt(150)))

	// Net difference can go negative.
	totals = TypeTotals{
		IncomeTotal:  decimal.NewFromInt(10),
		ExpenseTotal: decimal.NewFromInt(25),
	}
	assert.True(t, totals.NetDifference().Equal(decimal.NewFromInt(-15)))
}
