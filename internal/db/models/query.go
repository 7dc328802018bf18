package models

const (
	// DefaultPageSize is the number of games returned per page when the
	// request does not specify one
	DefaultPageSize = 50
	// MaxPageSize is the maximum allowed page size
	MaxPageSize = 500
)

// GameQueryParameters is the flat "quick filter" shape used by the game list
// outside the view builder. It is intentionally simpler than a view
// configuration; the two representations are not interconvertible.
type GameQueryParameters struct {
	Page           int    `json:"page"`
	PageSize       int    `json:"page_size"`
	Search         string `json:"search,omitempty"`
	SortBy         string `json:"sort_by,omitempty"`
	SortDescending bool   `json:"sort_descending,omitempty"`

	IsActive       *bool `json:"is_active,omitempty"`
	StatusID       *uint `json:"status_id,omitempty"`
	PlatformID     *uint `json:"platform_id,omitempty"`
	PlayWithID     *uint `json:"play_with_id,omitempty"`
	PlayedStatusID *uint `json:"played_status_id,omitempty"`

	MinGrade *float64 `json:"min_grade,omitempty"`
	MaxGrade *float64 `json:"max_grade,omitempty"`

	ReleasedYear *int `json:"released_year,omitempty"`
	StartedYear  *int `json:"started_year,omitempty"`
	FinishedYear *int `json:"finished_year,omitempty"`

	ExcludeStatusIDs []uint `json:"exclude_status_ids,omitempty"`

	// IsCheaperByKey is carried for forward compatibility with the store
	// integration; it does not participate in query equivalence.
	IsCheaperByKey *bool `json:"is_cheaper_by_key,omitempty"`

	// ViewName delegates filtering and sorting to a saved view server-side
	ViewName string `json:"view_name,omitempty"`
}

// Equivalent reports whether two parameter sets would produce the same page of
// results. Absent values compare equal to their zero form, so a nil receiver
// or argument is treated as an empty parameter set. ExcludeStatusIDs compares
// element-wise in order. Fields outside the enumerated set (IsCheaperByKey)
// are ignored.
func (p *GameQueryParameters) Equivalent(other *GameQueryParameters) bool {
	if p == nil {
		p = &GameQueryParameters{}
	}
	if other == nil {
		other = &GameQueryParameters{}
	}

	if p.Page != other.Page ||
		p.PageSize != other.PageSize ||
		p.Search != other.Search ||
		p.SortBy != other.SortBy ||
		p.SortDescending != other.SortDescending ||
		p.ViewName != other.ViewName {
		return false
	}

	if !ptrEqual(p.IsActive, other.IsActive) ||
		!ptrEqual(p.StatusID, other.StatusID) ||
		!ptrEqual(p.PlatformID, other.PlatformID) ||
		!ptrEqual(p.PlayWithID, other.PlayWithID) ||
		!ptrEqual(p.PlayedStatusID, other.PlayedStatusID) ||
		!ptrEqual(p.MinGrade, other.MinGrade) ||
		!ptrEqual(p.MaxGrade, other.MaxGrade) ||
		!ptrEqual(p.ReleasedYear, other.ReleasedYear) ||
		!ptrEqual(p.StartedYear, other.StartedYear) ||
		!ptrEqual(p.FinishedYear, other.FinishedYear) {
		return false
	}

	if len(p.ExcludeStatusIDs) != len(other.ExcludeStatusIDs) {
		return false
	}
	for i, id := range p.ExcludeStatusIDs {
		if other.ExcludeStatusIDs[i] != id {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the parameters
func (p *GameQueryParameters) Clone() *GameQueryParameters {
	if p == nil {
		return nil
	}
	c := *p
	c.IsActive = clonePtr(p.IsActive)
	c.StatusID = clonePtr(p.StatusID)
	c.PlatformID = clonePtr(p.PlatformID)
	c.PlayWithID = clonePtr(p.PlayWithID)
	c.PlayedStatusID = clonePtr(p.PlayedStatusID)
	c.MinGrade = clonePtr(p.MinGrade)
	c.MaxGrade = clonePtr(p.MaxGrade)
	c.ReleasedYear = clonePtr(p.ReleasedYear)
	c.StartedYear = clonePtr(p.StartedYear)
	c.FinishedYear = clonePtr(p.FinishedYear)
	c.IsCheaperByKey = clonePtr(p.IsCheaperByKey)
	if p.ExcludeStatusIDs != nil {
		c.ExcludeStatusIDs = append([]uint(nil), p.ExcludeStatusIDs...)
	}
	return &c
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
