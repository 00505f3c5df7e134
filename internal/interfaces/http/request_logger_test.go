package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/fieldstock-api/internal/interfaces/http"
	"github.com/jhoicas/fieldstock-api/pkg/logger"
)

func TestRequestLogger_RegistraStatusYUsuario(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Output: &buf})

	app := fiber.New()
	app.Get("/api/ping", apphttp.RequestLogger(log), apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", tokenForRole(t, "technician"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, float64(http.StatusNoContent), entry["status"])
	assert.Equal(t, testUserID, entry["user_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestRequestLogger_NoAutorizadoEsWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Level: "info", Output: &buf})

	app := fiber.New()
	app.Get("/api/ping", apphttp.RequestLogger(log), apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(http.StatusUnauthorized), entry["status"])
}
