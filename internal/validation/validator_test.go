package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type ruleFixture struct {
	CategoryType string `validate:"omitempty,category_type"`
	TxType       string `validate:"tx_type"`
	PeriodType   string `validate:"omitempty,period_type"`
	Amount       string `validate:"omitempty,amount"`
	UserID       string `validate:"omitempty,user_id"`
}

func validateFixture(t *testing.T, fixture ruleFixture) error {
	t.Helper()
	return GetValidator().GetValidate().Struct(fixture)
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestCategoryTypeRule(t *testing.T) {
	assert.NoError(t, validateFixture(t, ruleFixture{CategoryType: "income"}))
	assert.NoError(t, validateFixture(t, ruleFixture{CategoryType: "expense"}))
	assert.NoError(t, validateFixture(t, ruleFixture{CategoryType: "Income"}), "matching is case-insensitive")
	assert.Error(t, validateFixture(t, ruleFixture{CategoryType: "savings"}))
}

func TestTxTypeRule(t *testing.T) {
	for _, value := range []string{"", "all", "income", "expense", "All"} {
		assert.NoError(t, validateFixture(t, ruleFixture{TxType: value}), "value %q", value)
	}
	assert.Error(t, validateFixture(t, ruleFixture{TxType: "transfer"}))
}

func TestPeriodTypeRule(t *testing.T) {
	for _, value := range []string{"year", "month", "date"} {
		assert.NoError(t, validateFixture(t, ruleFixture{PeriodType: value}), "value %q", value)
	}
	assert.Error(t, validateFixture(t, ruleFixture{PeriodType: "week"}))
	assert.Error(t, validateFixture(t, ruleFixture{PeriodType: "Year"}), "granularities are lowercase only")
}

func TestAmountRule(t *testing.T) {
	valid := []string{"0", "10", "10.5", "10.50", "12345.67"}
	for _, value := range valid {
		assert.NoError(t, validateFixture(t, ruleFixture{Amount: value}), "value %q", value)
	}

	invalid := []string{"-10", "10.505", ".50", "10.", "ten", "1,000.00"}
	for _, value := range invalid {
		assert.Error(t, validateFixture(t, ruleFixture{Amount: value}), "value %q", value)
	}
}

func TestUserIDRule(t *testing.T) {
	assert.NoError(t, validateFixture(t, ruleFixture{UserID: uuid.New().String()}))
	assert.Error(t, validateFixture(t, ruleFixture{UserID: "not-a-uuid"}))
	assert.Error(t, validateFixture(t, ruleFixture{UserID: "12345678-1234-1234-1234-1234567890AB"}), "uppercase hex is rejected")
}
