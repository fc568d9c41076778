package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pricealert/config"
	deliverycontext "pricealert/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	e := newEcho(&bytes.Buffer{}, false)

	t.Run("propagates the caller's ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc", rec.Body.String())
	})

	t.Run("issues an ID when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		id := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet on success outside debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		newEcho(buf, false).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Empty(t, buf.String())
	})

	t.Run("logs failures with the final status", func(t *testing.T) {
		buf := &bytes.Buffer{}
		rec := httptest.NewRecorder()
		newEcho(buf, false).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, buf.String(), "status=502")
		assert.Contains(t, buf.String(), "request_id=")
	})

	t.Run("logs success in debug but skips health", func(t *testing.T) {
		buf := &bytes.Buffer{}
		e := newEcho(buf, true)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Empty(t, buf.String())

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.Contains(t, buf.String(), "uri=/ok")
	})
}
