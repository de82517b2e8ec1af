package handlers

import (
	"errors"
	"net/http"

	"budgetwise/internal/dto"
	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory creates a category explicitly
//
// Method: POST /api/v1/categories
// Authentication: Required (JWT)
//
// Request body:
//   - name: Category name, unique per user (case-insensitive)
//   - type: "income" or "expense"
//
// Error Responses:
//   - 400: Validation failure
//   - 401: Unauthorized (missing JWT)
//   - 409: Name already in use
//   - 500: Internal server error
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name, req.Type)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.NewCategoryResponse(category),
		Message: "Category created successfully",
	})
}

// ListCategories returns the caller's categories ordered by name
//
// Method: GET /api/v1/categories
// Authentication: Required (JWT)
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.categoryService.GetUserCategories(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewCategoryListResponse(categories),
	})
}

func (h *CategoryHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingParameter):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidCategoryType):
		return SendError(c, apierrors.CategoryInvalidType)
	case errors.Is(err, services.ErrCategoryAlreadyExists):
		return SendError(c, apierrors.CategoryAlreadyExists)
	default:
		return SendSystemError(c, err)
	}
}
