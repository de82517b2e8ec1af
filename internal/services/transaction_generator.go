package services

import (
	"math/rand"
	"time"

	"budgetwise/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// categorySeed describes one category in the sample pool with a plausible
// amount range for its transactions.
type categorySeed struct {
	name      string
	kind      string
	minAmount float64
	maxAmount float64
}

type transactionGenerator struct {
	seeds []categorySeed
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// NewTransactionGenerator creates a generator of realistic sample data for
// development seeding and demos.
func NewTransactionGenerator() TransactionGeneratorInterface {
	seed := time.Now().UnixNano()
	return &transactionGenerator{
		seeds: initializeCategoryPool(),
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(uint64(seed)),
	}
}

func initializeCategoryPool() []categorySeed {
	return []categorySeed{
		{"Salary", models.CategoryTypeIncome, 2500, 6500},
		{"Freelance", models.CategoryTypeIncome, 150, 1200},
		{"Investments", models.CategoryTypeIncome, 20, 400},
		{"Gifts", models.CategoryTypeIncome, 10, 200},

		{"Rent", models.CategoryTypeExpense, 800, 1800},
		{"Groceries", models.CategoryTypeExpense, 15, 220},
		{"Dining", models.CategoryTypeExpense, 8, 95},
		{"Transportation", models.CategoryTypeExpense, 3, 60},
		{"Utilities", models.CategoryTypeExpense, 40, 250},
		{"Entertainment", models.CategoryTypeExpense, 5, 120},
		{"Healthcare", models.CategoryTypeExpense, 10, 400},
		{"Shopping", models.CategoryTypeExpense, 10, 300},
	}
}

// GenerateCategories builds the full sample category set for a user. IDs are
// assigned here so generated transactions can reference them before anything
// is persisted.
func (g *transactionGenerator) GenerateCategories(userID uuid.UUID) []models.Category {
	categories := make([]models.Category, 0, len(g.seeds))
	for _, seed := range g.seeds {
		categories = append(categories, models.Category{
			ID:     uuid.New(),
			Name:   seed.name,
			Type:   seed.kind,
			UserID: userID,
		})
	}
	return categories
}

// GenerateTransactions produces count transactions spread uniformly over the
// inclusive date span, each linked to one of the supplied categories. Amounts
// follow the category's seeded range; transaction type mirrors the category
// type so generated data never exercises the type-divergence gap.
func (g *transactionGenerator) GenerateTransactions(
	userID uuid.UUID,
	categories []models.Category,
	startDate, endDate time.Time,
	count int,
) []models.Transaction {
	if len(categories) == 0 || count <= 0 {
		return nil
	}

	rangesByName := make(map[string]categorySeed, len(g.seeds))
	for _, seed := range g.seeds {
		rangesByName[seed.name] = seed
	}

	spanDays := int(endDate.Sub(startDate).Hours()/24) + 1
	if spanDays < 1 {
		spanDays = 1
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := categories[g.rng.Intn(len(categories))]

		minAmount, maxAmount := 5.0, 150.0
		if seed, ok := rangesByName[category.Name]; ok {
			minAmount, maxAmount = seed.minAmount, seed.maxAmount
		}
		amount := decimal.NewFromFloat(g.faker.Float64Range(minAmount, maxAmount)).Round(2)

		day := startDate.AddDate(0, 0, g.rng.Intn(spanDays))

		transactions = append(transactions, models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			CategoryID:  category.ID,
			Amount:      amount,
			Type:        category.Type,
			Description: g.faker.ProductName(),
			CreatedDate: time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		})
	}
	return transactions
}
