package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/filter"
	"github.com/David-H-Afonso/gamesdatabase/internal/types"
)

// ListGames returns one page of the user's collection. When viewName is
// present the saved view's filter groups and sorting apply; otherwise the
// flat quick filters are pushed down to SQL.
func (h *APIHandler) ListGames(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	params := parseGameQueryParameters(c)

	if params.ViewName != "" {
		return h.listGamesByView(c, userID, params)
	}

	games, total, err := h.games.List(c.Context(), userID, params)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameListFailed)
	}

	return c.JSON(types.ListResponse[models.Game]{
		Rows: games,
		Pagination: types.PaginationResponse{
			Total:    int(total),
			Page:     params.Page,
			PageSize: params.PageSize,
		},
	})
}

// listGamesByView evaluates a saved view against the user's collection
func (h *APIHandler) listGamesByView(c *fiber.Ctx, userID uint, params *models.GameQueryParameters) error {
	view, err := h.views.GetByName(c.Context(), userID, params.ViewName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgViewNotFound)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameListFailed)
	}

	cfg, err := filter.ParseConfiguration([]byte(view.Configuration))
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewBadConfig)
	}

	all, err := h.games.ListAll(c.Context(), userID)
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameListFailed)
	}

	matched := make([]models.Game, 0, len(all))
	for i := range all {
		if filter.Evaluate(&all[i], cfg) {
			matched = append(matched, all[i])
		}
	}
	matched = filter.SortGames(matched, cfg.Sorting)

	total := len(matched)
	start := (params.Page - 1) * params.PageSize
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return c.JSON(types.ListResponse[models.Game]{
		Rows: matched[start:end],
		Pagination: types.PaginationResponse{
			Total:    total,
			Page:     params.Page,
			PageSize: params.PageSize,
		},
	})
}

// GetGame returns a single game by id
func (h *APIHandler) GetGame(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	game, err := h.games.GetByID(c.Context(), middleware.UserID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgGameNotFound)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameListFailed)
	}
	return c.JSON(game)
}

// CreateGame adds a game to the user's collection
func (h *APIHandler) CreateGame(c *fiber.Ctx) error {
	var game models.Game
	if err := c.BodyParser(&game); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if game.Name == "" {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgGameNameRequired)
	}

	game.ID = 0
	game.UserID = middleware.UserID(c)
	if err := h.games.Create(c.Context(), &game); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameCreateFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// UpdateGame modifies a game's fields
func (h *APIHandler) UpdateGame(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	var game models.Game
	if err := c.BodyParser(&game); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}

	userID := middleware.UserID(c)
	game.UserID = userID
	if err := h.games.Update(c.Context(), userID, id, &game); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameUpdateFailed)
	}

	updated, err := h.games.GetByID(c.Context(), userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgGameNotFound)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameUpdateFailed)
	}
	return c.JSON(updated)
}

// DeleteGame removes a game from the collection
func (h *APIHandler) DeleteGame(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}
	if err := h.games.Delete(c.Context(), middleware.UserID(c), id); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgGameDeleteFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
