package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/shared/observability"
)

func newTestApp(m *observability.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(RequestID(), AccessLog(), Metrics(m))

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": GetRequestID(c)})
	})
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "item not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("database on fire")
	})
	return app
}

func TestRequestID_Generated(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)

	id := resp.Header.Get(HeaderRequestID)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body["request_id"])
}

func TestRequestID_Preserved(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/items/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"item not found"}`, string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"error":"internal server error"}`, string(body))
}

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	app := newTestApp(m)

	for _, path := range []string{"/ok", "/ok", "/items/1", "/items/2"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/ok", "GET", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/items/:id", "GET", "404")))
}
