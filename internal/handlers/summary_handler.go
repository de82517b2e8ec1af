package handlers

import (
	"errors"
	"net/http"

	"budgetwise/internal/dto"
	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"

	"github.com/labstack/echo/v4"
)

type SummaryHandler struct {
	summaryService   services.SummaryServiceInterface
	dashboardService services.DashboardServiceInterface
	insightService   services.InsightServiceInterface
}

func NewSummaryHandler(
	summaryService services.SummaryServiceInterface,
	dashboardService services.DashboardServiceInterface,
	insightService services.InsightServiceInterface,
) *SummaryHandler {
	return &SummaryHandler{
		summaryService:   summaryService,
		dashboardService: dashboardService,
		insightService:   insightService,
	}
}

// GetSummaryByPeriod returns income/expense totals for a resolved time window
//
// Method: GET /api/v1/summary/period
// Authentication: Required (JWT)
//
// Query parameters:
//   - period_type: "year", "month" or "date" (default "month")
//   - start, end: window bounds; format depends on period_type
//     ("YYYY", "YYYY-MM" or "YYYY-MM-DD")
//   - type: "income", "expense" or "all" (default "all")
//   - subcategory: optional case-insensitive category name filter
//   - caller: "dashboard" substitutes the current year for the period
//
// Error Responses:
//   - 400: Missing start/end or unparsable period input
//   - 401: Unauthorized (missing JWT)
//   - 404: Window matched zero transactions
//   - 500: Storage failure
func (h *SummaryHandler) GetSummaryByPeriod(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	summary, err := h.summaryService.GetSummaryByPeriod(userID, summaryQueryFromRequest(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewSummaryResponse(summary),
	})
}

// GetSummaryBySubcategory returns the period totals plus a per-category
// breakdown grouped under each side
//
// Method: GET /api/v1/summary/subcategory
// Authentication: Required (JWT)
//
// Query parameters: same as GetSummaryByPeriod.
func (h *SummaryHandler) GetSummaryBySubcategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	breakdown, err := h.summaryService.GetSummaryBySubcategory(userID, summaryQueryFromRequest(c))
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: breakdown,
	})
}

// GetDashboard returns the all-time analytics view
//
// Method: GET /api/v1/summary/dashboard
// Authentication: Required (JWT)
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 404: User has no transactions at all
//   - 500: Storage failure
func (h *SummaryHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	dashboard, err := h.dashboardService.GetDashboardData(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dashboard,
	})
}

// GetExpenseInsight compares this month's expenses with last month's
//
// Method: GET /api/v1/summary/insight
// Authentication: Required (JWT)
func (h *SummaryHandler) GetExpenseInsight(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	insight, err := h.insightService.GetExpenseInsight(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: insight,
	})
}

// summaryQueryFromRequest reads the raw report parameters. Absent start/end
// are passed through untouched so the service can reject them uniformly.
func summaryQueryFromRequest(c echo.Context) models.SummaryQuery {
	periodType := c.QueryParam("period_type")
	if periodType == "" {
		periodType = services.PeriodTypeMonth
	}

	return models.SummaryQuery{
		PeriodType:  periodType,
		Type:        c.QueryParam("type"),
		Start:       c.QueryParam("start"),
		End:         c.QueryParam("end"),
		Subcategory: c.QueryParam("subcategory"),
		Caller:      c.QueryParam("caller"),
	}
}

func (h *SummaryHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrMissingParameter):
		return SendError(c, apierrors.SummaryMissingParameter, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrInvalidPeriodType):
		return SendError(c, apierrors.SummaryInvalidPeriod, apierrors.WithDetails(err.Error()))
	case errors.Is(err, services.ErrSummaryNotFound):
		return SendError(c, apierrors.SummaryNotFound, apierrors.WithMessage(err.Error()))
	case errors.Is(err, services.ErrSummaryDatabase):
		return SendError(c, apierrors.SummaryDatabaseError)
	default:
		return SendSystemError(c, err)
	}
}
