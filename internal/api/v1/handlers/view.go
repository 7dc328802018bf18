package handlers

import (
	"encoding/json"
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/filter"
	"github.com/David-H-Afonso/gamesdatabase/internal/types"
)

// viewRequest is the create/update payload for a saved view. Configuration
// is kept raw so legacy encodings are accepted and canonicalized here.
type viewRequest struct {
	Name          string          `json:"name"`
	IsPublic      bool            `json:"is_public"`
	Configuration json.RawMessage `json:"configuration"`
}

// canonicalConfiguration decodes, validates and normalizes a view
// configuration, returning its canonical JSON form.
func canonicalConfiguration(raw json.RawMessage) (string, error) {
	cfg, err := filter.ParseConfiguration(raw)
	if err != nil {
		return "", err
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	for gi := range cfg.FilterGroups {
		for fi, f := range cfg.FilterGroups[gi].Filters {
			normalized, err := filter.Normalize(f)
			if err != nil {
				return "", err
			}
			cfg.FilterGroups[gi].Filters[fi] = normalized
		}
	}
	for fi, f := range cfg.Filters {
		normalized, err := filter.Normalize(f)
		if err != nil {
			return "", err
		}
		cfg.Filters[fi] = normalized
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListViews returns the views visible to the user
func (h *APIHandler) ListViews(c *fiber.Ctx) error {
	views, err := h.views.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewListFailed)
	}
	return c.JSON(types.ListResponse[models.GameView]{
		Rows:       views,
		Pagination: types.PaginationResponse{Total: len(views), Page: 1, PageSize: len(views)},
	})
}

// CreateView saves a new named view
func (h *APIHandler) CreateView(c *fiber.Ctx) error {
	var req viewRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if req.Name == "" {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgViewNameRequired)
	}

	configuration, err := canonicalConfiguration(req.Configuration)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, err.Error())
	}

	view := models.GameView{
		UserID:        middleware.UserID(c),
		Name:          req.Name,
		IsPublic:      req.IsPublic,
		Configuration: configuration,
	}
	if err := h.views.Create(c.Context(), &view); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewCreateFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// UpdateView modifies a view's name, visibility or configuration
func (h *APIHandler) UpdateView(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}

	var req viewRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}

	userID := middleware.UserID(c)
	update := models.GameView{
		Name:     req.Name,
		IsPublic: req.IsPublic,
	}
	if len(req.Configuration) > 0 {
		configuration, err := canonicalConfiguration(req.Configuration)
		if err != nil {
			return respondWithError(c, fiber.StatusBadRequest, err.Error())
		}
		update.Configuration = configuration
	}

	if err := h.views.Update(c.Context(), userID, id, &update); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewUpdateFailed)
	}

	view, err := h.views.GetByID(c.Context(), userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return respondWithError(c, fiber.StatusNotFound, ErrMsgViewNotFound)
	} else if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewUpdateFailed)
	}
	return c.JSON(view)
}

// DeleteView removes a view
func (h *APIHandler) DeleteView(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidID)
	}
	if err := h.views.Delete(c.Context(), middleware.UserID(c), id); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewDeleteFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderViews rewrites the display order of the user's views
func (h *APIHandler) ReorderViews(c *fiber.Ctx) error {
	var req types.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgInvalidReqBody)
	}
	if err := h.views.Reorder(c.Context(), middleware.UserID(c), req.IDs); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgViewReorderFailed)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
