package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"customer-notes-be/internal/bootstrap"
	"customer-notes-be/internal/config"
	"customer-notes-be/internal/server"
	"customer-notes-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// newTestApp boots the full HTTP stack against the database from the
// environment. Tests are skipped when no database is configured.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	// Generous quota so only the dedicated rate limit test trips it.
	t.Setenv("RATE_LIMIT_PER_MINUTE", "100000")

	cfg := config.Load()
	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")

	container := bootstrap.NewContainer(gormDB, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp, nil
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Endpoints returning bare arrays are decoded by the caller.
		return resp, map[string]interface{}{"_raw": string(raw)}
	}
	return resp, parsed
}

// signupAndLogin registers a fresh user and returns a bearer token.
func signupAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	email := fmt.Sprintf("it-user-%s@example.com", uuid.New().String())
	resp, _ := doJSON(t, app, "POST", "/auth/signup", "", map[string]string{
		"email":    email,
		"password": "integration-pass",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", "integration-pass")
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	loginResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, loginResp.StatusCode)

	var body map[string]interface{}
	raw, err := io.ReadAll(loginResp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))

	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createCustomer provisions a customer with a unique email and returns its id.
func createCustomer(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/customers", "", map[string]string{
		"name":  "Integration Customer",
		"email": fmt.Sprintf("it-cust-%s@example.com", uuid.New().String()),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}
