package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestMiddleware_ContinuesIncomingTrace(t *testing.T) {
	shutdown, err := telemetry.SetupTracer("marketplace-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	var seen trace.SpanContext
	e := echo.New()
	e.Use(telemetry.Middleware("marketplace-test"))
	e.GET("/api/v1/orders/:orderId", func(c echo.Context) error {
		seen = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/42", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	e.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, seen.IsValid())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", seen.TraceID().String())
	assert.NotEqual(t, "00f067aa0ba902b7", seen.SpanID().String())
}

func TestMiddleware_StartsNewTrace(t *testing.T) {
	shutdown, err := telemetry.SetupTracer("marketplace-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	var seen trace.SpanContext
	e := echo.New()
	e.Use(telemetry.Middleware("marketplace-test"))
	e.GET("/health", func(c echo.Context) error {
		seen = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, seen.HasTraceID())
}
