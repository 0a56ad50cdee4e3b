package serverutils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/notfound", func(ctx *fiber.Ctx) error {
		return NotFound("notebook not found")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return Conflict("cannot delete the last notebook")
	})
	app.Get("/unauthorized", func(ctx *fiber.Ctx) error {
		return Unauthorized("incorrect username or password")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestErrorHandler_AppErrors(t *testing.T) {
	app := newErrorApp()

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/notfound", http.StatusNotFound, "notebook not found"},
		{"/conflict", http.StatusBadRequest, "cannot delete the last notebook"},
		{"/unauthorized", http.StatusUnauthorized, "incorrect username or password"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			body := decodeEnvelope(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tc.status), body["code"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestErrorHandler_UnknownErrorIsOpaque500(t *testing.T) {
	app := newErrorApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	// The driver error must not reach the client
	assert.Equal(t, "internal server error", body["message"])
}
