package handlers

import (
	"net/http/httptest"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// parseParams runs parseGameQueryParameters against a real request
func parseParams(t *testing.T, target string) *models.GameQueryParameters {
	t.Helper()

	var got *models.GameQueryParameters
	app := fiber.New()
	app.Get("/games", func(c *fiber.Ctx) error {
		got = parseGameQueryParameters(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, got)
	return got
}

func TestParseGameQueryParameters(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := parseParams(t, "/games")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, models.DefaultPageSize, p.PageSize)
		assert.Empty(t, p.Search)
		assert.Nil(t, p.StatusID)
		assert.Nil(t, p.IsActive)
		assert.Empty(t, p.ExcludeStatusIDs)
	})

	t.Run("quick filters", func(t *testing.T) {
		p := parseParams(t, "/games?page=3&pageSize=25&search=hollow&sortBy=name&sortDescending=true&statusId=4&minGrade=7.5&releasedYear=2023&isActive=true&viewName=Backlog")
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.PageSize)
		assert.Equal(t, "hollow", p.Search)
		assert.Equal(t, "name", p.SortBy)
		assert.True(t, p.SortDescending)
		require.NotNil(t, p.StatusID)
		assert.Equal(t, uint(4), *p.StatusID)
		require.NotNil(t, p.MinGrade)
		assert.Equal(t, 7.5, *p.MinGrade)
		require.NotNil(t, p.ReleasedYear)
		assert.Equal(t, 2023, *p.ReleasedYear)
		require.NotNil(t, p.IsActive)
		assert.True(t, *p.IsActive)
		assert.Equal(t, "Backlog", p.ViewName)
	})

	t.Run("repeated exclude keys", func(t *testing.T) {
		p := parseParams(t, "/games?excludeStatusIds=4&excludeStatusIds=7&excludeStatusIds=9")
		assert.Equal(t, []uint{4, 7, 9}, p.ExcludeStatusIDs)
	})

	t.Run("page clamping", func(t *testing.T) {
		p := parseParams(t, "/games?page=0&pageSize=100000")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, models.DefaultPageSize, p.PageSize)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		p := parseParams(t, "/games?statusId=abc&minGrade=high&excludeStatusIds=x")
		assert.Nil(t, p.StatusID)
		assert.Nil(t, p.MinGrade)
		assert.Empty(t, p.ExcludeStatusIDs)
	})
}
