package setup_test

import (
	"activity-finder/config"
	"activity-finder/config/setup"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareApp(cfg *config.Config) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New()
	setup.ApplyMiddleware(app, cfg, logger)
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

func statusOf(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestApplyMiddleware_RateLimit(t *testing.T) {
	t.Run("Disabled by default", func(t *testing.T) {
		app := newMiddlewareApp(&config.Config{CORSAllow: "*"})
		for i := 0; i < 20; i++ {
			assert.Equal(t, http.StatusOK, statusOf(t, app))
		}
	})

	t.Run("Enforced when configured", func(t *testing.T) {
		app := newMiddlewareApp(&config.Config{CORSAllow: "*", RateLimit: 2})
		assert.Equal(t, http.StatusOK, statusOf(t, app))
		assert.Equal(t, http.StatusOK, statusOf(t, app))
		assert.Equal(t, http.StatusTooManyRequests, statusOf(t, app))
	})
}

func TestApplyMiddleware_SecurityHeaders(t *testing.T) {
	app := newMiddlewareApp(&config.Config{CORSAllow: "*"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
