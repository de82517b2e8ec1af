package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "budgetwise/internal/errors"
	"budgetwise/internal/handlers"
	"budgetwise/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The error helpers read the trace ID under the same context key the request
// ID middleware writes it to; these tests pin that agreement end to end.

func TestSendError_CarriesTraceIDFromMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.TraceIDHeader, "trace-from-upstream")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middleware.RequestID()(func(c echo.Context) error {
		return handlers.SendError(c, apierrors.SummaryNotFound)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "trace-from-upstream", resp.Error.TraceID)
}

func TestSendError_NoMiddlewareYieldsEmptyTraceID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, handlers.SendError(c, apierrors.SummaryNotFound))

	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Error.TraceID)
}
