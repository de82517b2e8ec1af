package handlers

import (
	"errors"
	"net/http"
	"time"

	"budgetwise/internal/dto"
	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records a new transaction, creating its category on first use
//
// Method: POST /api/v1/transactions
// Authentication: Required (JWT)
//
// Request body:
//   - amount: Decimal string, non-negative, at most 2 decimal places
//   - type: "income" or "expense"
//   - category: Category name; matched case-insensitively against existing ones
//   - description: Optional text
//   - created_date: Optional YYYY-MM-DD business date (defaults to today)
//
// Error Responses:
//   - 400: Validation failure or malformed body
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	input := models.RecordTransactionInput{
		Amount:      amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.CreatedDate != "" {
		createdDate, err := time.Parse("2006-01-02", req.CreatedDate)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails("created_date must be YYYY-MM-DD"))
		}
		input.CreatedDate = &createdDate
	}

	transaction, err := h.transactionService.RecordTransaction(userID, input)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewTransactionResponse(transaction),
		Message: "Transaction recorded successfully",
	})
}

// ListTransactions returns the caller's transactions, newest first
//
// Method: GET /api/v1/transactions
// Authentication: Required (JWT)
//
// Query parameters:
//   - offset: pagination offset (default 0)
//   - limit: page size (default 20, max 100)
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 20)
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	transactions, total, err := h.transactionService.GetUserTransactions(userID, offset, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewTransactionListResponse(transactions),
		Meta: dto.TransactionListMeta{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	})
}

func (h *TransactionHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingParameter):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, services.ErrInvalidAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	default:
		return SendSystemError(c, err)
	}
}
