package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apicatalogo/internal/middleware"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "middleware_secret"

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(zap.NewNop())})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(zap.NewNop()))
	return app
}

func signToken(t *testing.T, key string, method jwt.SigningMethod, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{"sub": "catalog-admin", "exp": exp.Unix()})
	signed, err := token.SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp()
	app.Post("/protected", middleware.AuthRequired(secret), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("subject").(string))
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer abc", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", jwt.SigningMethodHS256, time.Now().Add(time.Hour)), fiber.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, secret, jwt.SigningMethodHS256, time.Now().Add(-time.Hour)), fiber.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, secret, jwt.SigningMethodHS256, time.Now().Add(time.Hour)), fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("connection reset") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Ocorreu um problema ao tratar a sua solicitação", body["message"])
	assert.Equal(t, float64(500), body["statusCode"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(middleware.GetRequestID(c)) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	generated := resp.Header.Get(middleware.HeaderRequestID)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-42", resp.Header.Get(middleware.HeaderRequestID))
}
