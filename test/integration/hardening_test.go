package integration

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = doJSON(t, app, "GET", "/version", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["version"])
	assert.NotEmpty(t, body["features"])

	resp, body = doJSON(t, app, "GET", "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "counters")
	assert.Contains(t, body, "durations")
}

func TestEveryResponseCarriesRequestId(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/health", "", nil)
	id1 := resp.Header.Get("X-Request-ID")
	_, err := uuid.Parse(id1)
	assert.NoError(t, err)

	resp, _ = doJSON(t, app, "GET", "/customers/"+uuid.New().String(), "", nil)
	id2 := resp.Header.Get("X-Request-ID")
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)
}

func TestRateLimitHeadersPresent(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/customers", "", nil)
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))

	// Exempt paths report the full quota.
	resp, _ = doJSON(t, app, "GET", "/health", "", nil)
	assert.Equal(t, resp.Header.Get("X-RateLimit-Limit"), resp.Header.Get("X-RateLimit-Remaining"))
}

func TestMetricsCountNoteWrites(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)
	customerId := createCustomer(t, app)

	resp, snapshotBefore := doJSON(t, app, "GET", "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	before := counterValue(snapshotBefore, "notes_created_total")

	resp, noteBody := doJSON(t, app, "POST", "/customers/"+customerId+"/notes", token, map[string]string{
		"content": "counted",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	noteId, _ := noteBody["id"].(string)

	resp, _ = doJSON(t, app, "PUT", "/notes/"+noteId, token, map[string]string{
		"content": "counted again",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, "DELETE", "/notes/"+noteId, token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, snapshotAfter := doJSON(t, app, "GET", "/metrics", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, before+1, counterValue(snapshotAfter, "notes_created_total"))
	assert.GreaterOrEqual(t, counterValue(snapshotAfter, "notes_updated_total"), float64(1))
	assert.GreaterOrEqual(t, counterValue(snapshotAfter, "notes_deleted_total"), float64(1))
	assert.Greater(t, counterValue(snapshotAfter, "http_requests_total_200"), float64(0))
}

func TestAuthFlowHardening(t *testing.T) {
	app := newTestApp(t)

	email := fmt.Sprintf("hardening-%s@example.com", uuid.New().String())
	resp, _ := doJSON(t, app, "POST", "/auth/signup", "", map[string]string{
		"email":    email,
		"password": "pass-one",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate signup
	resp, body := doJSON(t, app, "POST", "/auth/signup", "", map[string]string{
		"email":    email,
		"password": "pass-two",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already registered", body["detail"])

	// /me round trip
	token := signupAndLogin(t, app)
	resp, body = doJSON(t, app, "GET", "/auth/me", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["email"])

	resp, body = doJSON(t, app, "GET", "/auth/me", "garbage-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or expired token", body["detail"])
}

func counterValue(snapshot map[string]interface{}, name string) float64 {
	counters, _ := snapshot["counters"].(map[string]interface{})
	value, _ := counters[name].(float64)
	return value
}
