package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey stores the trace ID in the echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID attaches a trace ID to every request. An incoming X-Trace-ID
// header is honored so upstream callers can correlate their own logs; a fresh
// UUID is assigned otherwise. The ID is echoed back on the response and made
// available to handlers via GetTraceID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID set by RequestID, or "" when the
// middleware did not run for this request.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
