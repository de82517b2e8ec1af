package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"budgetwise/internal/dto"
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

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.testUserID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) createContext(method, path string, body interface{}, authenticated bool) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if authenticated {
		c.Set("user_id", s.testUserID)
	}
	return c, rec
}

func (s *TransactionHandlerSuite) TestCreateTransaction_Success() {
	reqBody := dto.CreateTransactionRequest{
		Amount:   "42.50",
		Type:     "expense",
		Category: "Groceries",
	}

	created := &models.Transaction{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		Amount:      decimal.NewFromFloat(42.50),
		Type:        "expense",
		CreatedDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	s.mockService.EXPECT().
		RecordTransaction(s.testUserID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, input models.RecordTransactionInput) (*models.Transaction, error) {
			s.True(input.Amount.Equal(decimal.NewFromFloat(42.50)))
			s.Equal("Groceries", input.Category)
			s.Nil(input.CreatedDate)
			return created, nil
		})

	c, rec := s.createContext(http.MethodPost, "/api/v1/transactions", reqBody, true)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp struct {
		Data    dto.TransactionResponse `json:"data"`
		Message string                  `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(created.ID, resp.Data.ID)
	s.Equal("2025-06-01", resp.Data.CreatedDate)
	s.Equal("Transaction recorded successfully", resp.Message)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ExplicitDate() {
	reqBody := dto.CreateTransactionRequest{
		Amount:      "900.00",
		Type:        "expense",
		Category:    "Rent",
		CreatedDate: "2025-04-02",
	}

	s.mockService.EXPECT().
		RecordTransaction(s.testUserID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, input models.RecordTransactionInput) (*models.Transaction, error) {
			s.Require().NotNil(input.CreatedDate)
			s.Equal(time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), *input.CreatedDate)
			return &models.Transaction{ID: uuid.New(), UserID: s.testUserID, CreatedDate: *input.CreatedDate}, nil
		})

	c, rec := s.createContext(http.MethodPost, "/api/v1/transactions", reqBody, true)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ValidationFailures() {
	cases := []struct {
		name string
		body dto.CreateTransactionRequest
	}{
		{"missing amount", dto.CreateTransactionRequest{Type: "expense", Category: "Rent"}},
		{"bad amount format", dto.CreateTransactionRequest{Amount: "12.345", Type: "expense", Category: "Rent"}},
		{"bad type", dto.CreateTransactionRequest{Amount: "10.00", Type: "transfer", Category: "Rent"}},
		{"missing category", dto.CreateTransactionRequest{Amount: "10.00", Type: "expense"}},
		{"bad date", dto.CreateTransactionRequest{Amount: "10.00", Type: "expense", Category: "Rent", CreatedDate: "02/04/2025"}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			c, rec := s.createContext(http.MethodPost, "/api/v1/transactions", tc.body, true)

			s.Require().NoError(s.handler.CreateTransaction(c))
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *TransactionHandlerSuite) TestCreateTransaction_ServiceRejectsType() {
	reqBody := dto.CreateTransactionRequest{Amount: "10.00", Type: "income", Category: "Salary"}

	s.mockService.EXPECT().
		RecordTransaction(s.testUserID, gomock.Any()).
		Return(nil, services.ErrInvalidTransactionType)

	c, rec := s.createContext(http.MethodPost, "/api/v1/transactions", reqBody, true)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apierrors.TransactionInvalidType), resp.Error.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_Unauthenticated() {
	c, rec := s.createContext(http.MethodPost, "/api/v1/transactions", dto.CreateTransactionRequest{}, false)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_Defaults() {
	transactions := []models.Transaction{
		{ID: uuid.New(), UserID: s.testUserID, Amount: decimal.NewFromInt(10), Type: "expense", CreatedDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}

	s.mockService.EXPECT().GetUserTransactions(s.testUserID, 0, 20).Return(transactions, int64(1), nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/transactions", nil, true)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Data []dto.TransactionResponse `json:"data"`
		Meta dto.TransactionListMeta   `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data, 1)
	s.Equal(int64(1), resp.Meta.Total)
	s.Equal(20, resp.Meta.Limit)
}

func (s *TransactionHandlerSuite) TestListTransactions_ClampsPagination() {
	s.mockService.EXPECT().GetUserTransactions(s.testUserID, 0, 20).Return(nil, int64(0), nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/transactions?offset=-5&limit=500", nil, true)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}
