package middleware

import (
	"log/slog"

	deliverycontext "pricealert/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware reuses the caller's X-Request-Id or issues one, echoes it back, and
// stores it with a tagged logger in the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process handles the generation or extraction of the Request ID
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		ctx, _ := deliverycontext.Scoped(c.Request().Context(), m.logger, requestID)
		requestID = deliverycontext.GetRequestIDFromContext(ctx)

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
