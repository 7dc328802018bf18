// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/handlers"
	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Catalog path segments, shared by server registration and client URL helpers
const (
	PlatformsPath      = handlers.PlatformsSegment
	StatusesPath       = handlers.StatusesSegment
	PlayWithPath       = handlers.PlayWithSegment
	PlayedStatusesPath = handlers.PlayedStatusesSegment
)

// CatalogPaths lists every catalog segment, in registration order
var CatalogPaths = []string{PlatformsPath, StatusesPath, PlayWithPath, PlayedStatusesPath}

// RegisterRoutes configures all the v1 routes.
//
// NOTE: route ordering matters because fiber matches routes in registration
// order; fixed segments (e.g. /reorder) must precede :id params.
func RegisterRoutes(app *fiber.App, h *handlers.APIHandler, auth fiber.Handler) {
	app.Get("/health", h.HealthCheck)

	v1 := app.Group(APIv1Prefix)
	v1.Post("/auth/login", h.Login)

	protected := v1.Group("", auth)

	// Games
	protected.Get("/games", h.ListGames)
	protected.Get("/games/export", h.ExportCSV)
	protected.Get("/games/:id", h.GetGame)
	protected.Post("/games", h.CreateGame)
	protected.Post("/games/import", h.ImportCSV)
	protected.Put("/games/:id", h.UpdateGame)
	protected.Delete("/games/:id", h.DeleteGame)

	// Views
	protected.Get("/views", h.ListViews)
	protected.Post("/views", h.CreateView)
	protected.Put("/views/reorder", h.ReorderViews)
	protected.Put("/views/:id", h.UpdateView)
	protected.Delete("/views/:id", h.DeleteView)

	// Catalogs share one handler set, dispatched on the path segment
	for _, path := range CatalogPaths {
		protected.Get("/"+path, h.ListCatalog(path))
		protected.Post("/"+path, h.CreateCatalogItem(path))
		protected.Put("/"+path+"/reorder", h.ReorderCatalog(path))
		protected.Put("/"+path+"/:id", h.UpdateCatalogItem(path))
		protected.Delete("/"+path+"/:id", h.DeleteCatalogItem(path))
	}

	// Users (admin only)
	admin := protected.Group("/users", middleware.RequireAdmin())
	admin.Get("", h.ListUsers)
	admin.Post("", h.CreateUser)
	admin.Put("/:id", h.UpdateUser)
	admin.Delete("/:id", h.DeleteUser)
}

// URL helpers used by the API client

// HealthCheckURL returns the health check endpoint
func HealthCheckURL() string {
	return "/health"
}

// LoginURL returns the login endpoint
func LoginURL() string {
	return APIv1Prefix + "/auth/login"
}

// GamesURL returns the games collection endpoint with optional query params
func GamesURL(q url.Values) string {
	base := APIv1Prefix + "/games"
	if len(q) > 0 {
		return base + "?" + q.Encode()
	}
	return base
}

// GameURL returns the endpoint for a single game
func GameURL(id uint) string {
	return fmt.Sprintf("%s/games/%d", APIv1Prefix, id)
}

// GamesExportURL returns the CSV export endpoint
func GamesExportURL() string {
	return APIv1Prefix + "/games/export"
}

// GamesImportURL returns the CSV import endpoint
func GamesImportURL() string {
	return APIv1Prefix + "/games/import"
}

// ViewsURL returns the views collection endpoint
func ViewsURL() string {
	return APIv1Prefix + "/views"
}

// ViewURL returns the endpoint for a single view
func ViewURL(id uint) string {
	return fmt.Sprintf("%s/views/%d", APIv1Prefix, id)
}

// ViewsReorderURL returns the view reorder endpoint
func ViewsReorderURL() string {
	return APIv1Prefix + "/views/reorder"
}

// CatalogURL returns the collection endpoint for a catalog
func CatalogURL(path string) string {
	return APIv1Prefix + "/" + path
}

// CatalogItemURL returns the endpoint for a single catalog item
func CatalogItemURL(path string, id uint) string {
	return fmt.Sprintf("%s/%s/%d", APIv1Prefix, path, id)
}

// CatalogReorderURL returns the reorder endpoint for a catalog
func CatalogReorderURL(path string) string {
	return APIv1Prefix + "/" + path + "/reorder"
}

// UsersURL returns the users collection endpoint
func UsersURL() string {
	return APIv1Prefix + "/users"
}

// UserURL returns the endpoint for a single user
func UserURL(id uint) string {
	return fmt.Sprintf("%s/users/%d", APIv1Prefix, id)
}
