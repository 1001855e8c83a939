package integration

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCrudFlow(t *testing.T) {
	app := newTestApp(t)

	email := fmt.Sprintf("crud-%s@example.com", uuid.New().String())

	// Create
	resp, body := doJSON(t, app, "POST", "/customers", "", map[string]string{
		"name":  "Acme Corp",
		"email": email,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	customerId, _ := body["id"].(string)
	require.NotEmpty(t, customerId)
	assert.Equal(t, "Acme Corp", body["name"])
	assert.Equal(t, email, body["email"])

	// Creating again with the same email returns the existing row.
	resp, body = doJSON(t, app, "POST", "/customers", "", map[string]string{
		"name":  "Acme Corp Again",
		"email": email,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, customerId, body["id"])
	assert.Equal(t, "Acme Corp", body["name"])

	// Show
	resp, body = doJSON(t, app, "GET", "/customers/"+customerId, "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, email, body["email"])

	// Update email
	newEmail := fmt.Sprintf("crud-updated-%s@example.com", uuid.New().String())
	resp, body = doJSON(t, app, "PATCH", "/customers/"+customerId, "", map[string]string{
		"email": newEmail,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, newEmail, body["email"])

	// Delete
	resp, _ = doJSON(t, app, "DELETE", "/customers/"+customerId, "", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Gone afterwards
	resp, body = doJSON(t, app, "GET", "/customers/"+customerId, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Customer not found", body["detail"])
}

func TestCustomerNotFoundCases(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/customers/"+uuid.New().String(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Customer not found", body["detail"])

	// Malformed ids read as absent, not as a validation failure.
	resp, body = doJSON(t, app, "GET", "/customers/not-a-uuid", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Customer not found", body["detail"])

	resp, _ = doJSON(t, app, "DELETE", "/customers/"+uuid.New().String(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCustomerEmailConflictOnUpdate(t *testing.T) {
	app := newTestApp(t)

	firstId := createCustomer(t, app)
	secondId := createCustomer(t, app)

	resp, body := doJSON(t, app, "GET", "/customers/"+firstId, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	firstEmail, _ := body["email"].(string)

	resp, body = doJSON(t, app, "PATCH", "/customers/"+secondId, "", map[string]string{
		"email": firstEmail,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already in use", body["detail"])
}

func TestCustomerValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "POST", "/customers", "", map[string]string{
		"name": "No Email",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/customers", "", map[string]string{
		"name":  "Bad Email",
		"email": "not-an-email",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCascadeDeleteRemovesNotes(t *testing.T) {
	app := newTestApp(t)
	token := signupAndLogin(t, app)
	customerId := createCustomer(t, app)

	resp, noteBody := doJSON(t, app, "POST", "/customers/"+customerId+"/notes", token, map[string]string{
		"content": "to be cascaded",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	noteId, _ := noteBody["id"].(string)
	require.NotEmpty(t, noteId)

	resp, _ = doJSON(t, app, "DELETE", "/customers/"+customerId, "", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The note went with its customer.
	resp, body := doJSON(t, app, "PUT", "/notes/"+noteId, token, map[string]string{
		"content": "still there?",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Note not found", body["detail"])
}
