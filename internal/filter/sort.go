package filter

import (
	"sort"
	"strings"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// Direction is the sort direction for one key
type Direction string

// Sort directions. An empty direction sorts ascending.
const (
	DirectionAscending  Direction = "Ascending"
	DirectionDescending Direction = "Descending"
)

// Sort is one key of a view's multi-key sort. Lower Order sorts first. Order
// values are supposed to be unique and dense from 1, but the UI does not
// guarantee that, so duplicates and gaps are tolerated: keys with equal Order
// keep their original relative precedence.
type Sort struct {
	Field     Field     `json:"field"`
	Direction Direction `json:"direction"`
	Order     int       `json:"order"`
}

// SortGames returns the records ordered by the view's sort keys, most
// significant first. The sort is stable and records with a null value in a
// key always sort after records with a value, regardless of direction.
func SortGames(games []models.Game, sorts []Sort) []models.Game {
	out := append([]models.Game(nil), games...)
	if len(sorts) == 0 {
		return out
	}

	keys := append([]Sort(nil), sorts...)
	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Order < keys[j].Order
	})

	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range keys {
			a := fieldValueOf(&out[i], key.Field)
			b := fieldValueOf(&out[j], key.Field)

			if a.null || b.null {
				if a.null && b.null {
					continue
				}
				// nulls last either direction
				return b.null
			}

			c := compareValues(a, b)
			if c == 0 {
				continue
			}
			if key.Direction == DirectionDescending {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	return out
}

func compareValues(a, b fieldValue) int {
	switch a.kind {
	case kindText:
		return strings.Compare(strings.ToLower(a.str), strings.ToLower(b.str))
	case kindNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case kindDate, kindDateTime:
		switch {
		case a.t.Before(b.t):
			return -1
		case a.t.After(b.t):
			return 1
		}
		return 0
	}
	return 0
}
