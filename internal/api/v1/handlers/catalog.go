package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/repos"
	"github.com/David-H-Afonso/gamesdatabase/internal/types"
)

// Catalog path segments, shared with route registration.
const (
	PlatformsSegment      = "platforms"
	StatusesSegment       = "statuses"
	PlayWithSegment       = "play-with"
	PlayedStatusesSegment = "played-statuses"
)

// catalogItem is the pointer-side contract every catalog model satisfies
// through its embedded base.
type catalogItem[T repos.CatalogModel] interface {
	*T
	SetOwner(uint)
	ItemName() string
}

func listCatalogItems[T repos.CatalogModel](repo *repos.CatalogRepository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := repo.List(c.Context(), middleware.UserID(c))
		if err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCatalogListFailed)
		}
		return c.JSON(types.ListResponse[T]{
			Rows:       items,
			Pagination: types.PaginationResponse{Total: len(items), Page: 1, PageSize: len(items)},
		})
	}
}

func createCatalogItem[T repos.CatalogModel, PT catalogItem[T]](repo *repos.CatalogRepository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var item T
		if err := c.BodyParser(&item); err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
		}
		ptr := PT(&item)
		if ptr.ItemName() == "" {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgCatalogNameRequired)
		}
		ptr.SetOwner(middleware.UserID(c))
		if err := repo.Create(c.Context(), &item); err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCatalogCreateFailed)
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

func updateCatalogItem[T repos.CatalogModel](repo *repos.CatalogRepository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
		}
		var item T
		if err := c.BodyParser(&item); err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
		}
		userID := middleware.UserID(c)
		if err := repo.Update(c.Context(), userID, id, &item); err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCatalogUpdateFailed)
		}
		updated, err := repo.GetByID(c.Context(), userID, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondWithError(c, fiber.StatusNotFound, ErrMsgCatalogNotFound)
		} else if err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCatalogUpdateFailed)
		}
		return c.JSON(updated)
	}
}

func deleteCatalogItem[T repos.CatalogModel](repo *repos.CatalogRepository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
		}
		if err := repo.Delete(c.Context(), middleware.UserID(c), id); err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCatalogDeleteFailed)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func reorderCatalogItems[T repos.CatalogModel](repo *repos.CatalogRepository[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req types.ReorderRequest
		if err := c.BodyParser(&req); err != nil {
			return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
		}
		if err := repo.Reorder(c.Context(), middleware.UserID(c), req.IDs); err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgCatalogReorderFailed)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func unknownCatalog(c *fiber.Ctx) error {
	return respondWithError(c, fiber.StatusNotFound, ErrMsgUnknownCatalog)
}

// ListCatalog returns the list handler for one catalog path
func (h *APIHandler) ListCatalog(path string) fiber.Handler {
	switch path {
	case PlatformsSegment:
		return listCatalogItems(h.platforms)
	case StatusesSegment:
		return listCatalogItems(h.statuses)
	case PlayWithSegment:
		return listCatalogItems(h.playWith)
	case PlayedStatusesSegment:
		return listCatalogItems(h.playedStatuses)
	}
	return unknownCatalog
}

// CreateCatalogItem returns the create handler for one catalog path
func (h *APIHandler) CreateCatalogItem(path string) fiber.Handler {
	switch path {
	case PlatformsSegment:
		return createCatalogItem[models.Platform](h.platforms)
	case StatusesSegment:
		return createCatalogItem[models.Status](h.statuses)
	case PlayWithSegment:
		return createCatalogItem[models.PlayWith](h.playWith)
	case PlayedStatusesSegment:
		return createCatalogItem[models.PlayedStatus](h.playedStatuses)
	}
	return unknownCatalog
}

// UpdateCatalogItem returns the update handler for one catalog path
func (h *APIHandler) UpdateCatalogItem(path string) fiber.Handler {
	switch path {
	case PlatformsSegment:
		return updateCatalogItem(h.platforms)
	case StatusesSegment:
		return updateCatalogItem(h.statuses)
	case PlayWithSegment:
		return updateCatalogItem(h.playWith)
	case PlayedStatusesSegment:
		return updateCatalogItem(h.playedStatuses)
	}
	return unknownCatalog
}

// DeleteCatalogItem returns the delete handler for one catalog path
func (h *APIHandler) DeleteCatalogItem(path string) fiber.Handler {
	switch path {
	case PlatformsSegment:
		return deleteCatalogItem(h.platforms)
	case StatusesSegment:
		return deleteCatalogItem(h.statuses)
	case PlayWithSegment:
		return deleteCatalogItem(h.playWith)
	case PlayedStatusesSegment:
		return deleteCatalogItem(h.playedStatuses)
	}
	return unknownCatalog
}

// ReorderCatalog returns the reorder handler for one catalog path
func (h *APIHandler) ReorderCatalog(path string) fiber.Handler {
	switch path {
	case PlatformsSegment:
		return reorderCatalogItems(h.platforms)
	case StatusesSegment:
		return reorderCatalogItems(h.statuses)
	case PlayWithSegment:
		return reorderCatalogItems(h.playWith)
	case PlayedStatusesSegment:
		return reorderCatalogItems(h.playedStatuses)
	}
	return unknownCatalog
}
