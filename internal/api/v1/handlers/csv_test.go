package handlers

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

func TestSnapshotRecordRoundTrip(t *testing.T) {
	released := time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)
	score := 8.5
	statusID := uint(3)
	comment := "short but dense"

	game := &models.Game{
		Name:     "Tunic",
		Comment:  &comment,
		StatusID: &statusID,
		Score:    &score,
		Released: &released,
	}

	record := gameToRecord(game)
	require.Len(t, record, len(csvHeader))
	assert.Equal(t, "Tunic", record[0])
	assert.Equal(t, "3", record[5])
	assert.Equal(t, "8.5", record[9])
	assert.Equal(t, "2023-06-10", record[14])

	back, err := recordToGame(record)
	require.NoError(t, err)
	assert.Equal(t, game.Name, back.Name)
	assert.Equal(t, *game.Comment, *back.Comment)
	assert.Equal(t, *game.StatusID, *back.StatusID)
	assert.Equal(t, *game.Score, *back.Score)
	assert.True(t, game.Released.Equal(*back.Released))
	assert.Nil(t, back.PlatformID, "absent columns stay nil")
}

func TestReadSnapshotRowsSkipsMalformedRows(t *testing.T) {
	full := func(name string) string {
		row := make([]string, len(csvHeader))
		row[0] = name
		return strings.Join(row, ",")
	}

	t.Run("short row does not hide later rows", func(t *testing.T) {
		body := strings.Join([]string{full("First"), "only,three,columns", full("Last")}, "\n")
		r := csv.NewReader(strings.NewReader(body))
		r.FieldsPerRecord = len(csvHeader)

		games, skipped := readSnapshotRows(r)
		require.Len(t, games, 2)
		assert.Equal(t, "First", games[0].Name)
		assert.Equal(t, "Last", games[1].Name)
		assert.Equal(t, 1, skipped)
	})

	t.Run("conversion failures count the same way", func(t *testing.T) {
		bad := make([]string, len(csvHeader))
		bad[0] = "Broken"
		bad[14] = "sometime"
		body := strings.Join([]string{strings.Join(bad, ","), full("Kept")}, "\n")
		r := csv.NewReader(strings.NewReader(body))
		r.FieldsPerRecord = len(csvHeader)

		games, skipped := readSnapshotRows(r)
		require.Len(t, games, 1)
		assert.Equal(t, "Kept", games[0].Name)
		assert.Equal(t, 1, skipped)
	})

	t.Run("all rows valid", func(t *testing.T) {
		body := strings.Join([]string{full("A"), full("B")}, "\n")
		r := csv.NewReader(strings.NewReader(body))
		r.FieldsPerRecord = len(csvHeader)

		games, skipped := readSnapshotRows(r)
		assert.Len(t, games, 2)
		assert.Zero(t, skipped)
	})
}

func TestRecordToGameRejectsBadRows(t *testing.T) {
	blank := make([]string, len(csvHeader))
	_, err := recordToGame(blank)
	assert.Error(t, err, "rows without a name are skipped")

	badDate := make([]string, len(csvHeader))
	badDate[0] = "Broken"
	badDate[14] = "sometime"
	_, err = recordToGame(badDate)
	assert.Error(t, err)

	badID := make([]string, len(csvHeader))
	badID[0] = "Broken"
	badID[5] = "-1"
	_, err = recordToGame(badID)
	assert.Error(t, err)
}
