package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

var testSecret = []byte("test-secret")

func testUser(role models.UserRole) *models.User {
	u := &models.User{Username: "alice", Role: role}
	u.ID = 42
	return u
}

func authApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	handlers := append([]fiber.Handler{Auth(testSecret)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": UserID(c)})
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthMiddleware(t *testing.T) {
	app := authApp(t)

	t.Run("accepts a valid token", func(t *testing.T) {
		token, err := IssueToken(testSecret, testUser(models.UserRoleStandard), 0)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := IssueToken([]byte("other-secret"), testUser(models.UserRoleStandard), 0)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := IssueToken(testSecret, testUser(models.UserRoleStandard), -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireAdmin(t *testing.T) {
	app := authApp(t, RequireAdmin())

	t.Run("admin passes", func(t *testing.T) {
		token, err := IssueToken(testSecret, testUser(models.UserRoleAdmin), 0)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("standard user is forbidden", func(t *testing.T) {
		token, err := IssueToken(testSecret, testUser(models.UserRoleStandard), 0)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
