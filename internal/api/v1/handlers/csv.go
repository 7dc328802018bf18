package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/David-H-Afonso/gamesdatabase/internal/api/v1/middleware"
	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
	"github.com/David-H-Afonso/gamesdatabase/internal/logger"
)

// csvHeader is the column layout of collection snapshots, both exported
// and accepted on import.
var csvHeader = []string{
	"name", "comment", "description", "logo", "cover",
	"status_id", "platform_id", "play_with_id", "played_status_id",
	"score", "grade", "critic", "story", "completion",
	"released", "started", "finished", "release_date",
}

const csvDateLayout = "2006-01-02"

// ExportCSV streams the user's full collection as a CSV snapshot
func (h *APIHandler) ExportCSV(c *fiber.Ctx) error {
	games, err := h.games.ListAll(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgExportFailed)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgExportFailed)
	}
	for i := range games {
		if err := w.Write(gameToRecord(&games[i])); err != nil {
			return respondWithError(c, fiber.StatusInternalServerError, ErrMsgExportFailed)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return respondWithError(c, fiber.StatusInternalServerError, ErrMsgExportFailed)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="games.csv"`)
	return c.Send(buf.Bytes())
}

// ImportCSV creates games from an uploaded CSV snapshot. Rows that fail to
// parse are skipped and counted rather than aborting the whole import.
func (h *APIHandler) ImportCSV(c *fiber.Ctx) error {
	r := csv.NewReader(bytes.NewReader(c.Body()))
	r.FieldsPerRecord = len(csvHeader)

	header, err := r.Read()
	if err != nil || len(header) != len(csvHeader) {
		return respondWithError(c, fiber.StatusBadRequest, ErrMsgImportFailed)
	}

	userID := middleware.UserID(c)
	games, skipped := readSnapshotRows(r)
	imported := 0
	for _, game := range games {
		game.UserID = userID
		if err := h.games.Create(c.Context(), game); err != nil {
			skipped++
			continue
		}
		imported++
	}

	logger.InfoWithFields("csv import finished", map[string]interface{}{
		"user_id":  userID,
		"imported": imported,
		"skipped":  skipped,
	})
	return c.JSON(fiber.Map{"imported": imported, "skipped": skipped})
}

// readSnapshotRows parses the data rows of a snapshot, counting rather
// than failing on rows that are malformed at the CSV level or that fail
// field conversion. The reader keeps its position after a row-level
// parse error, so a bad row never hides the rows below it.
func readSnapshotRows(r *csv.Reader) ([]*models.Game, int) {
	var games []*models.Game
	skipped := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		} else if err != nil {
			break
		}
		game, err := recordToGame(record)
		if err != nil {
			skipped++
			continue
		}
		games = append(games, game)
	}
	return games, skipped
}

func gameToRecord(g *models.Game) []string {
	return []string{
		g.Name,
		strValue(g.Comment), strValue(g.Description), strValue(g.Logo), strValue(g.Cover),
		uintValue(g.StatusID), uintValue(g.PlatformID), uintValue(g.PlayWithID), uintValue(g.PlayedStatusID),
		floatValue(g.Score), floatValue(g.Grade), floatValue(g.Critic), floatValue(g.Story), floatValue(g.Completion),
		dateValue(g.Released), dateValue(g.Started), dateValue(g.Finished), dateValue(g.ReleaseDate),
	}
}

func recordToGame(record []string) (*models.Game, error) {
	if record[0] == "" {
		return nil, fmt.Errorf("missing name")
	}
	g := &models.Game{
		Name:        record[0],
		Comment:     strPtr(record[1]),
		Description: strPtr(record[2]),
		Logo:        strPtr(record[3]),
		Cover:       strPtr(record[4]),
	}

	var err error
	if g.StatusID, err = uintPtr(record[5]); err != nil {
		return nil, err
	}
	if g.PlatformID, err = uintPtr(record[6]); err != nil {
		return nil, err
	}
	if g.PlayWithID, err = uintPtr(record[7]); err != nil {
		return nil, err
	}
	if g.PlayedStatusID, err = uintPtr(record[8]); err != nil {
		return nil, err
	}
	if g.Score, err = floatPtr(record[9]); err != nil {
		return nil, err
	}
	if g.Grade, err = floatPtr(record[10]); err != nil {
		return nil, err
	}
	if g.Critic, err = floatPtr(record[11]); err != nil {
		return nil, err
	}
	if g.Story, err = floatPtr(record[12]); err != nil {
		return nil, err
	}
	if g.Completion, err = floatPtr(record[13]); err != nil {
		return nil, err
	}
	if g.Released, err = datePtr(record[14]); err != nil {
		return nil, err
	}
	if g.Started, err = datePtr(record[15]); err != nil {
		return nil, err
	}
	if g.Finished, err = datePtr(record[16]); err != nil {
		return nil, err
	}
	if g.ReleaseDate, err = datePtr(record[17]); err != nil {
		return nil, err
	}
	return g, nil
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func uintValue(p *uint) string {
	if p == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*p), 10)
}

func floatValue(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func dateValue(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.Format(csvDateLayout)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func uintPtr(s string) (*uint, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}

func floatPtr(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func datePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(csvDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
