package database

import (
	"testing"
	"time"

	"budgetwise/internal/config"
	"budgetwise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, name, categoryType string) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:   name,
		Type:   categoryType,
		UserID: userID,
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, category *models.Category, amount string, created time.Time) *models.Transaction {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid test amount %q: %v", amount, err)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Amount:      value,
		Type:        category.Type,
		Description: "test",
		CreatedDate: created,
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}
