package handlers

import (
	"net/http"
	"time"

	"budgetwise/internal/dto"
	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/repositories"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSeedMonths = 6
	defaultSeedCount  = 200
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	generator       services.TransactionGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		generator:       services.NewTransactionGenerator(),
	}
}

// GenerateSampleData seeds the caller's account with realistic categories and
// transactions so report endpoints have something to aggregate
//
// Method: POST /api/v1/dev/generate-sample-data
// Authentication: Required (JWT)
// Environment: Development only
//
// Request body (optional):
//   - months: History depth in months (default 6, max 36)
//   - count: Number of transactions (default 200, max 5000)
//
// Error Responses:
//   - 400: Invalid parameters
//   - 401: Unauthorized
//   - 500: Internal server error
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	if req.Months == 0 {
		req.Months = defaultSeedMonths
	}
	if req.Count == 0 {
		req.Count = defaultSeedCount
	}

	categories := h.generator.GenerateCategories(userID)
	for i := range categories {
		if err := h.categoryRepo.Create(&categories[i]); err != nil {
			return SendSystemError(c, err)
		}
	}

	now := time.Now().UTC()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startDate := endDate.AddDate(0, -req.Months, 0)

	transactions := h.generator.GenerateTransactions(userID, categories, startDate, endDate, req.Count)
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Sample data generated successfully",
		Data: dto.SeedResponse{
			Categories:   len(categories),
			Transactions: len(transactions),
			From:         startDate,
			To:           endDate,
		},
	})
}
