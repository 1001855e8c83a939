package ratelimit

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newTestApp(limit int) *fiber.App {
	app := fiber.New()
	app.Use(Middleware(New(limit, time.Minute)))
	app.Get("/customers", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"ok": true})
	})
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	return app
}

func TestMiddlewareSetsQuotaHeaders(t *testing.T) {
	app := newTestApp(5)

	resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "5", resp.Header.Get(HeaderLimit))
	assert.Equal(t, "4", resp.Header.Get(HeaderRemaining))
}

func TestMiddlewareRejectsOverQuota(t *testing.T) {
	app := newTestApp(2)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/customers", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
	assert.Equal(t, "0", resp.Header.Get(HeaderRemaining))

	var body map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Rate Limit Exceeded", body["error"])
	assert.Equal(t, float64(60), body["retry_after"])
	assert.Contains(t, body["message"], "Too many requests")
}

func TestMiddlewareExemptPathsNeverLimited(t *testing.T) {
	app := newTestApp(1)

	for i := 0; i < 10; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		// Exempt paths always report the full quota.
		assert.Equal(t, "1", resp.Header.Get(HeaderLimit))
		assert.Equal(t, "1", resp.Header.Get(HeaderRemaining))
	}
}

func TestMiddlewareSeparatesForwardedClients(t *testing.T) {
	app := newTestApp(1)

	reqA := httptest.NewRequest("GET", "/customers", nil)
	reqA.Header.Set("X-Forwarded-For", "10.0.0.1")
	resp, err := app.Test(reqA)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	reqA2 := httptest.NewRequest("GET", "/customers", nil)
	reqA2.Header.Set("X-Forwarded-For", "10.0.0.1")
	resp, err = app.Test(reqA2)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	reqB := httptest.NewRequest("GET", "/customers", nil)
	reqB.Header.Set("X-Forwarded-For", "10.0.0.2, 10.0.0.1")
	resp, err = app.Test(reqB)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
