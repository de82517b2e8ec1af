package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
	"budgetwise/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SummaryHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockSummary   *service_mocks.MockSummaryServiceInterface
	mockDashboard *service_mocks.MockDashboardServiceInterface
	mockInsight   *service_mocks.MockInsightServiceInterface
	handler       *SummaryHandler
	echo          *echo.Echo
	testUserID    uuid.UUID
}

func (s *SummaryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSummary = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.mockDashboard = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.mockInsight = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.handler = NewSummaryHandler(s.mockSummary, s.mockDashboard, s.mockInsight)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.testUserID = uuid.New()
}

func (s *SummaryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerSuite))
}

// Helper to create an authenticated GET context with query parameters.
func (s *SummaryHandlerSuite) createContext(path string, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if authenticated {
		c.Set("user_id", s.testUserID)
	}
	return c, rec
}

func (s *SummaryHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_Success() {
	summary := &models.PeriodSummary{
		Scope:             models.ScopeAll,
		Subcategory:       "All",
		RangeStart:        "2025-01-01",
		RangeEnd:          "2025-12-31",
		TransactionsCount: 2,
		IncomeTotal:       decimal.NewFromInt(200),
		ExpenseTotal:      decimal.NewFromInt(50),
		NetDifference:     decimal.NewFromInt(150),
	}

	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, models.SummaryQuery{
			PeriodType: "year",
			Start:      "2025",
			End:        "2025",
		}).
		Return(summary, nil)

	c, rec := s.createContext("/api/v1/summary/period?period_type=year&start=2025&end=2025", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.JSONEq(`"2025-01-01"`, string(resp.Data["range_start"]))
	s.JSONEq(`"200"`, string(resp.Data["income_transaction_total"]))
	s.JSONEq(`"50"`, string(resp.Data["expense_transaction_total"]))
	s.JSONEq(`"150"`, string(resp.Data["net_difference"]))
	s.JSONEq(`2`, string(resp.Data["transactions_count"]))
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_ScopedResponseOmitsOtherSide() {
	summary := &models.PeriodSummary{
		Scope:        models.ScopeIncome,
		Subcategory:  "All",
		RangeStart:   "2025-01-01",
		RangeEnd:     "2025-12-31",
		IncomeCount:  1,
		IncomeTotal:  decimal.NewFromInt(200),
		ExpenseTotal: decimal.NewFromInt(50),
	}

	s.mockSummary.EXPECT().GetSummaryByPeriod(s.testUserID, gomock.Any()).Return(summary, nil)

	c, rec := s.createContext("/api/v1/summary/period?period_type=year&start=2025&end=2025&type=income", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.JSONEq(`"income"`, string(resp.Data["type"]))
	s.JSONEq(`1`, string(resp.Data["total_transactions"]))
	s.JSONEq(`"200"`, string(resp.Data["total"]))
	s.NotContains(resp.Data, "income_transaction_total")
	s.NotContains(resp.Data, "expense_transaction_total")
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_DefaultsPeriodTypeToMonth() {
	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, query models.SummaryQuery) (*models.PeriodSummary, error) {
			s.Equal(services.PeriodTypeMonth, query.PeriodType)
			return nil, services.ErrSummaryNotFound
		})

	c, _ := s.createContext("/api/v1/summary/period?start=2025-01&end=2025-01", true)
	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_MissingParameter() {
	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: start and end are required", services.ErrMissingParameter))

	c, rec := s.createContext("/api/v1/summary/period", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.SummaryMissingParameter), resp.Error.Code)
	s.NotEmpty(resp.Error.Details)
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_InvalidPeriodType() {
	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: %q", services.ErrInvalidPeriodType, "week"))

	c, rec := s.createContext("/api/v1/summary/period?period_type=week&start=2025&end=2025", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apierrors.SummaryInvalidPeriod), s.decodeError(rec).Error.Code)
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_NotFound() {
	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, gomock.Any()).
		Return(nil, services.ErrSummaryNotFound)

	c, rec := s.createContext("/api/v1/summary/period?period_type=year&start=2020&end=2020", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apierrors.SummaryNotFound), s.decodeError(rec).Error.Code)
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_DatabaseError() {
	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection reset", services.ErrSummaryDatabase))

	c, rec := s.createContext("/api/v1/summary/period?period_type=year&start=2025&end=2025", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apierrors.SummaryDatabaseError), s.decodeError(rec).Error.Code)
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_UnexpectedErrorIsMasked() {
	s.mockSummary.EXPECT().
		GetSummaryByPeriod(s.testUserID, gomock.Any()).
		Return(nil, errors.New("secret internals"))

	c, rec := s.createContext("/api/v1/summary/period?period_type=year&start=2025&end=2025", true)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.SystemInternalError), resp.Error.Code)
	s.NotContains(resp.Error.Message, "secret internals")
}

func (s *SummaryHandlerSuite) TestGetSummaryByPeriod_Unauthenticated() {
	c, rec := s.createContext("/api/v1/summary/period?period_type=year&start=2025&end=2025", false)

	s.Require().NoError(s.handler.GetSummaryByPeriod(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apierrors.AuthMissingToken), s.decodeError(rec).Error.Code)
}

func (s *SummaryHandlerSuite) TestGetSummaryBySubcategory_Success() {
	breakdown := &models.SummaryBreakdown{
		Scope:             models.ScopeAll,
		Subcategory:       "Bonus",
		RangeStart:        "2025-01-01",
		RangeEnd:          "2025-12-31",
		TransactionsCount: 2,
		TotalIncome:       decimal.NewFromInt(500),
		NetDifference:     decimal.NewFromInt(500),
		Breakdown: models.Breakdown{
			Income:  []models.BreakdownEntry{{Category: "Bonus", Total: decimal.NewFromInt(500)}},
			Expense: []models.BreakdownEntry{},
		},
	}

	s.mockSummary.EXPECT().
		GetSummaryBySubcategory(s.testUserID, models.SummaryQuery{
			PeriodType:  "year",
			Start:       "2025",
			End:         "2025",
			Subcategory: "Bonus",
		}).
		Return(breakdown, nil)

	c, rec := s.createContext("/api/v1/summary/subcategory?period_type=year&start=2025&end=2025&subcategory=Bonus", true)

	s.Require().NoError(s.handler.GetSummaryBySubcategory(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			TotalIncome decimal.Decimal `json:"total_income"`
			Breakdown   struct {
				Income  []models.BreakdownEntry `json:"income"`
				Expense []models.BreakdownEntry `json:"expense"`
			} `json:"summary_breakdown"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Data.TotalIncome.Equal(decimal.NewFromInt(500)))
	s.Require().Len(resp.Data.Breakdown.Income, 1)
	s.Equal("Bonus", resp.Data.Breakdown.Income[0].Category)
	// The empty side is serialized as [], never dropped.
	s.NotNil(resp.Data.Breakdown.Expense)
	s.Empty(resp.Data.Breakdown.Expense)
}

func (s *SummaryHandlerSuite) TestGetSummaryBySubcategory_NotFoundNamesTheCategory() {
	s.mockSummary.EXPECT().
		GetSummaryBySubcategory(s.testUserID, gomock.Any()).
		Return(nil, fmt.Errorf("%w for subcategory %q", services.ErrSummaryNotFound, "Lottery"))

	c, rec := s.createContext("/api/v1/summary/subcategory?period_type=year&start=2025&end=2025&subcategory=Lottery", true)

	s.Require().NoError(s.handler.GetSummaryBySubcategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
	resp := s.decodeError(rec)
	s.Equal(string(apierrors.SummaryNotFound), resp.Error.Code)
	s.Contains(resp.Error.Message, "Lottery")
}

func (s *SummaryHandlerSuite) TestGetDashboard_Success() {
	dashboard := &models.DashboardSummary{
		TotalIncome:       decimal.NewFromInt(1000),
		TotalExpense:      decimal.NewFromInt(400),
		NetDifference:     decimal.NewFromInt(600),
		TransactionsCount: 5,
		MonthlyData: []models.MonthlyFlow{
			{Month: 1, Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(400)},
		},
	}

	s.mockDashboard.EXPECT().GetDashboardData(s.testUserID).Return(dashboard, nil)

	c, rec := s.createContext("/api/v1/summary/dashboard", true)

	s.Require().NoError(s.handler.GetDashboard(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			TotalIncome decimal.Decimal      `json:"total_income"`
			MonthlyData []models.MonthlyFlow `json:"monthly_data"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Data.TotalIncome.Equal(decimal.NewFromInt(1000)))
	s.Require().Len(resp.Data.MonthlyData, 1)
	s.Equal(1, resp.Data.MonthlyData[0].Month)
}

func (s *SummaryHandlerSuite) TestGetDashboard_NoTransactions() {
	s.mockDashboard.EXPECT().GetDashboardData(s.testUserID).Return(nil, services.ErrSummaryNotFound)

	c, rec := s.createContext("/api/v1/summary/dashboard", true)

	s.Require().NoError(s.handler.GetDashboard(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *SummaryHandlerSuite) TestGetExpenseInsight_Success() {
	insight := &models.ExpenseInsight{
		CurrentTotal:  decimal.NewFromInt(120),
		PreviousTotal: decimal.NewFromInt(100),
		Difference:    decimal.NewFromInt(20),
		PercentChange: decimal.NewFromInt(20),
		Statement:     "Your expenses increased by 20% compared to last month.",
	}

	s.mockInsight.EXPECT().GetExpenseInsight(s.testUserID).Return(insight, nil)

	c, rec := s.createContext("/api/v1/summary/insight", true)

	s.Require().NoError(s.handler.GetExpenseInsight(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data models.ExpenseInsight `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(insight.Statement, resp.Data.Statement)
}

func (s *SummaryHandlerSuite) TestGetExpenseInsight_DatabaseError() {
	s.mockInsight.EXPECT().
		GetExpenseInsight(s.testUserID).
		Return(nil, fmt.Errorf("%w: timeout", services.ErrSummaryDatabase))

	c, rec := s.createContext("/api/v1/summary/insight", true)

	s.Require().NoError(s.handler.GetExpenseInsight(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}
