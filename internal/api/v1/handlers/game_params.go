package handlers

import (
	"strconv"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// parseGameQueryParameters reads the quick-filter query string into the flat
// parameter shape. Absent keys stay nil so they do not participate in query
// equivalence downstream.
func parseGameQueryParameters(c *fiber.Ctx) *models.GameQueryParameters {
	p := &models.GameQueryParameters{
		Page:           c.QueryInt("page", 1),
		PageSize:       c.QueryInt("pageSize", models.DefaultPageSize),
		Search:         c.Query("search"),
		SortBy:         c.Query("sortBy"),
		SortDescending: c.QueryBool("sortDescending"),
		ViewName:       c.Query("viewName"),
	}

	p.IsActive = queryBoolPtr(c, "isActive")
	p.StatusID = queryUintPtr(c, "statusId")
	p.PlatformID = queryUintPtr(c, "platformId")
	p.PlayWithID = queryUintPtr(c, "playWithId")
	p.PlayedStatusID = queryUintPtr(c, "playedStatusId")
	p.MinGrade = queryFloatPtr(c, "minGrade")
	p.MaxGrade = queryFloatPtr(c, "maxGrade")
	p.ReleasedYear = queryIntPtr(c, "releasedYear")
	p.StartedYear = queryIntPtr(c, "startedYear")
	p.FinishedYear = queryIntPtr(c, "finishedYear")
	p.IsCheaperByKey = queryBoolPtr(c, "isCheaperByKey")

	// Arrays arrive as repeated keys, one per element
	for _, raw := range c.Context().QueryArgs().PeekMulti("excludeStatusIds") {
		if id, err := strconv.ParseUint(string(raw), 10, 32); err == nil {
			p.ExcludeStatusIDs = append(p.ExcludeStatusIDs, uint(id))
		}
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > models.MaxPageSize {
		p.PageSize = models.DefaultPageSize
	}

	return p
}

func queryBoolPtr(c *fiber.Ctx, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryUintPtr(c *fiber.Ctx, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func queryIntPtr(c *fiber.Ctx, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloatPtr(c *fiber.Ctx, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
