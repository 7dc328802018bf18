package client

import (
	"net/url"
	"strconv"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// QueryValues flattens quick-filter parameters into URL query values. Unset
// fields are omitted entirely; array fields repeat the key once per element
// (excludeStatusIds=1&excludeStatusIds=2), never comma-joined.
func QueryValues(p *models.GameQueryParameters) url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}

	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortDescending {
		q.Set("sortDescending", "true")
	}

	setBool(q, "isActive", p.IsActive)
	setUint(q, "statusId", p.StatusID)
	setUint(q, "platformId", p.PlatformID)
	setUint(q, "playWithId", p.PlayWithID)
	setUint(q, "playedStatusId", p.PlayedStatusID)
	setFloat(q, "minGrade", p.MinGrade)
	setFloat(q, "maxGrade", p.MaxGrade)
	setInt(q, "releasedYear", p.ReleasedYear)
	setInt(q, "startedYear", p.StartedYear)
	setInt(q, "finishedYear", p.FinishedYear)
	setBool(q, "isCheaperByKey", p.IsCheaperByKey)

	for _, id := range p.ExcludeStatusIDs {
		q.Add("excludeStatusIds", strconv.FormatUint(uint64(id), 10))
	}

	if p.ViewName != "" {
		q.Set("viewName", p.ViewName)
	}

	return q
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

func setUint(q url.Values, key string, v *uint) {
	if v != nil {
		q.Set(key, strconv.FormatUint(uint64(*v), 10))
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
