// Package handlers provides HTTP request handling
package handlers

import (
	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/repos"
)

// APIHandler aggregates the repositories behind the HTTP surface
type APIHandler struct {
	jwtSecret []byte

	users *repos.UserRepository
	games *repos.GameRepository
	views *repos.ViewRepository

	platforms      *repos.CatalogRepository[models.Platform]
	statuses       *repos.CatalogRepository[models.Status]
	playWith       *repos.CatalogRepository[models.PlayWith]
	playedStatuses *repos.CatalogRepository[models.PlayedStatus]
}

// NewAPIHandler creates the handler set over a database connection
func NewAPIHandler(db *gorm.DB, jwtSecret []byte) *APIHandler {
	return &APIHandler{
		jwtSecret:      jwtSecret,
		users:          repos.NewUserRepository(db),
		games:          repos.NewGameRepository(db),
		views:          repos.NewViewRepository(db),
		platforms:      repos.NewCatalogRepository[models.Platform](db),
		statuses:       repos.NewCatalogRepository[models.Status](db),
		playWith:       repos.NewCatalogRepository[models.PlayWith](db),
		playedStatuses: repos.NewCatalogRepository[models.PlayedStatus](db),
	}
}

// JWTSecret exposes the signing secret to route registration
func (h *APIHandler) JWTSecret() []byte {
	return h.jwtSecret
}

// HealthCheck reports service liveness
func (h *APIHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(map[string]string{"status": "ok"})
}

func respondWithError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
