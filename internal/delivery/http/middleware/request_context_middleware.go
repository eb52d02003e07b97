package middleware

import (
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestContextMiddleware assigns every request an ID and a request-scoped
// logger, pushed into the request context so the use case layer logs with
// the same correlation fields.
type RequestContextMiddleware struct {
	logger *slog.Logger
}

// NewRequestContextMiddleware creates the request-context middleware.
func NewRequestContextMiddleware(logger *slog.Logger) *RequestContextMiddleware {
	return &RequestContextMiddleware{logger: logger}
}

// Handle injects the request ID and scoped logger.
func (m *RequestContextMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, scoped)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
