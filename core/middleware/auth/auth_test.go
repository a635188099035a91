package auth_test

import (
	"net/http/httptest"
	"testing"

	"menu-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/menu", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	t.Run("EmptyKeyDisablesCheck", func(t *testing.T) {
		app := setupApp("")
		resp, err := app.Test(httptest.NewRequest("GET", "/menu", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("ValidKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/menu", nil)
		req.Header.Set("X-Api-Key", "secret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app := setupApp("secret")
		resp, err := app.Test(httptest.NewRequest("GET", "/menu", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("WrongKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/menu", nil)
		req.Header.Set("X-Api-Key", "guess")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
