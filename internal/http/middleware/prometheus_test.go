package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()

	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestMetrics_CountsRequests(t *testing.T) {
	m := newTestMetrics(t)

	app := fiber.New()
	app.Use(m.Handler())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	_, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)

	count := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/test", "200"))
	assert.Equal(t, float64(1), count)

	_, err = app.Test(httptest.NewRequest("GET", "/error", nil))
	require.NoError(t, err)

	countErr := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/error", "400"))
	assert.Equal(t, float64(1), countErr)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	m := newTestMetrics(t)

	app := fiber.New()
	app.Use(m.Handler())

	app.Get("/api/documents/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/api/documents/123", nil))
	require.NoError(t, err)

	count := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/documents/:id", "200"))
	assert.Equal(t, float64(1), count)
}

func TestMetrics_SkipsMetricsEndpoint(t *testing.T) {
	m := newTestMetrics(t)

	app := fiber.New()
	app.Use(m.Handler())

	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)

	assert.Equal(t, 0, testutil.CollectAndCount(m.requests))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
