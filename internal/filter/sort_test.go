package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

func names(games []models.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Name
	}
	return out
}

func TestSortGamesSingleKey(t *testing.T) {
	games := []models.Game{
		{Name: "Celeste"},
		{Name: "axiom verge"},
		{Name: "Braid"},
	}

	asc := SortGames(games, []Sort{{Field: FieldName, Direction: DirectionAscending, Order: 1}})
	assert.Equal(t, []string{"axiom verge", "Braid", "Celeste"}, names(asc), "name sort is case insensitive")

	desc := SortGames(games, []Sort{{Field: FieldName, Direction: DirectionDescending, Order: 1}})
	assert.Equal(t, []string{"Celeste", "Braid", "axiom verge"}, names(desc))

	// Input order untouched
	assert.Equal(t, []string{"Celeste", "axiom verge", "Braid"}, names(games))
}

func TestSortGamesNullsLast(t *testing.T) {
	games := []models.Game{
		{Name: "NoGrade"},
		{Name: "High", Grade: floatPtr(9)},
		{Name: "AlsoNoGrade"},
		{Name: "Low", Grade: floatPtr(2)},
	}

	asc := SortGames(games, []Sort{{Field: FieldGrade, Direction: DirectionAscending, Order: 1}})
	assert.Equal(t, []string{"Low", "High", "NoGrade", "AlsoNoGrade"}, names(asc))

	desc := SortGames(games, []Sort{{Field: FieldGrade, Direction: DirectionDescending, Order: 1}})
	assert.Equal(t, []string{"High", "Low", "NoGrade", "AlsoNoGrade"}, names(desc),
		"nulls stay last even when descending")
}

func TestSortGamesMultiKey(t *testing.T) {
	games := []models.Game{
		{Name: "B", Grade: floatPtr(5), Finished: timePtr(day(2024, 1, 2))},
		{Name: "A", Grade: floatPtr(5), Finished: timePtr(day(2024, 1, 1))},
		{Name: "C", Grade: floatPtr(9), Finished: timePtr(day(2023, 12, 1))},
	}

	// Grade descending is the primary key regardless of slice position
	sorts := []Sort{
		{Field: FieldFinished, Direction: DirectionAscending, Order: 2},
		{Field: FieldGrade, Direction: DirectionDescending, Order: 1},
	}

	got := SortGames(games, sorts)
	assert.Equal(t, []string{"C", "A", "B"}, names(got))
}

func TestSortGamesStability(t *testing.T) {
	games := []models.Game{
		{Name: "first", Grade: floatPtr(5)},
		{Name: "second", Grade: floatPtr(5)},
		{Name: "third", Grade: floatPtr(5)},
	}

	got := SortGames(games, []Sort{{Field: FieldGrade, Direction: DirectionAscending, Order: 1}})
	assert.Equal(t, []string{"first", "second", "third"}, names(got),
		"equal keys keep their original relative order")

	// Duplicate Order values are tolerated; earlier slice position wins
	dup := SortGames(games, []Sort{
		{Field: FieldName, Direction: DirectionDescending, Order: 1},
		{Field: FieldGrade, Direction: DirectionAscending, Order: 1},
	})
	assert.Equal(t, []string{"third", "second", "first"}, names(dup))
}

func TestSortGamesNoKeys(t *testing.T) {
	games := []models.Game{{Name: "B"}, {Name: "A"}}
	got := SortGames(games, nil)
	assert.Equal(t, []string{"B", "A"}, names(got))

	// A copy, not the same backing array
	got[0].Name = "mutated"
	assert.Equal(t, "B", games[0].Name)
}

func TestSortGamesDates(t *testing.T) {
	games := []models.Game{
		{Name: "later", Started: timePtr(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))},
		{Name: "earlier", Started: timePtr(time.Date(2024, 4, 1, 23, 0, 0, 0, time.UTC))},
		{Name: "never"},
	}

	got := SortGames(games, []Sort{{Field: FieldStarted, Direction: DirectionAscending, Order: 1}})
	assert.Equal(t, []string{"earlier", "later", "never"}, names(got))
}
