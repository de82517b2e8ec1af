package services

import (
	"testing"
	"time"

	"budgetwise/internal/database"
	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestPreviousCalendarMonth(t *testing.T) {
	year, month := previousCalendarMonth(2025, time.March)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.February, month)

	year, month = previousCalendarMonth(2025, time.January)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)
}

func TestBuildExpenseInsight(t *testing.T) {
	cases := []struct {
		name          string
		current       string
		previous      string
		percentChange string
		statement     string
	}{
		{
			name:          "increase",
			current:       "150.00",
			previous:      "100.00",
			percentChange: "50",
			statement:     "Your expenses increased by 50% compared to last month.",
		},
		{
			name:          "decrease",
			current:       "80.00",
			previous:      "100.00",
			percentChange: "-20",
			statement:     "Your expenses decreased by 20% compared to last month.",
		},
		{
			name:          "unchanged",
			current:       "100.00",
			previous:      "100.00",
			percentChange: "0",
			statement:     "Your expenses remained the same as last month.",
		},
		{
			name:          "empty previous month",
			current:       "42.00",
			previous:      "0.00",
			percentChange: "0",
			statement:     "Your expenses remained the same as last month.",
		},
		{
			name:          "fractional change rounds to two places",
			current:       "110.00",
			previous:      "90.00",
			percentChange: "22.22",
			statement:     "Your expenses increased by 22.22% compared to last month.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			current := decimal.RequireFromString(tc.current)
			previous := decimal.RequireFromString(tc.previous)

			insight := buildExpenseInsight(current, previous)

			assert.True(t, insight.CurrentTotal.Equal(current))
			assert.True(t, insight.PreviousTotal.Equal(previous))
			assert.True(t, insight.Difference.Equal(current.Sub(previous).Round(2)))
			assert.Equal(t, tc.percentChange, insight.PercentChange.String())
			assert.Equal(t, tc.statement, insight.Statement)
		})
	}
}

type InsightServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	user    *models.User
	service *insightService
}

func (s *InsightServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.user = database.CreateTestUser(s.T(), s.db, "insight@example.com")
	s.service = &insightService{
		transactionRepo: repositories.NewTransactionRepository(s.db.DB),
		now: func() time.Time {
			return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func (s *InsightServiceTestSuite) TearDownTest() {
	s.db.Close()
}

func TestInsightServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}

func (s *InsightServiceTestSuite) seedExpense(name, amount string, created time.Time) {
	category := database.CreateTestCategory(s.T(), s.db, s.user.ID, name, models.CategoryTypeExpense)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, category, amount, created)
}

func (s *InsightServiceTestSuite) TestGetExpenseInsight_ComparesAdjacentMonths() {
	s.seedExpense("Rent", "120.00", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC))
	s.seedExpense("Groceries", "100.00", time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC))

	insight, err := s.service.GetExpenseInsight(s.user.ID)

	s.Require().NoError(err)
	s.True(insight.CurrentTotal.Equal(decimal.NewFromInt(120)))
	s.True(insight.PreviousTotal.Equal(decimal.NewFromInt(100)))
	s.Equal("20", insight.PercentChange.String())
	s.Equal("Your expenses increased by 20% compared to last month.", insight.Statement)
}

func (s *InsightServiceTestSuite) TestGetExpenseInsight_IgnoresIncomeAndOtherMonths() {
	salary := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Salary", models.CategoryTypeIncome)
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, salary, "5000.00", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	s.seedExpense("Rent", "80.00", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	s.seedExpense("Travel", "999.00", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))

	insight, err := s.service.GetExpenseInsight(s.user.ID)

	s.Require().NoError(err)
	s.True(insight.CurrentTotal.Equal(decimal.NewFromInt(80)))
	s.True(insight.PreviousTotal.IsZero())
	s.True(insight.PercentChange.IsZero())
}

func (s *InsightServiceTestSuite) TestGetExpenseInsight_JanuaryLooksAtPreviousDecember() {
	s.service.now = func() time.Time {
		return time.Date(2025, time.January, 5, 8, 0, 0, 0, time.UTC)
	}
	s.seedExpense("Rent", "50.00", time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC))
	s.seedExpense("Gifts", "100.00", time.Date(2024, time.December, 24, 0, 0, 0, 0, time.UTC))

	insight, err := s.service.GetExpenseInsight(s.user.ID)

	s.Require().NoError(err)
	s.True(insight.CurrentTotal.Equal(decimal.NewFromInt(50)))
	s.True(insight.PreviousTotal.Equal(decimal.NewFromInt(100)))
	s.Equal("Your expenses decreased by 50% compared to last month.", insight.Statement)
}

func (s *InsightServiceTestSuite) TestGetExpenseInsight_MissingUser() {
	_, err := s.service.GetExpenseInsight(uuid.Nil)
	s.ErrorIs(err, ErrMissingParameter)
}
