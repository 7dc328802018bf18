package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// sortColumns whitelists the sortable columns for quick-filter sorting;
// anything else falls back to name
var sortColumns = map[string]string{
	"name":       "name",
	"score":      "score",
	"grade":      "grade",
	"critic":     "critic",
	"released":   "released",
	"started":    "started",
	"finished":   "finished",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// GameRepository provides access to game-related database operations
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

// GetByID retrieves a game owned by the user
func (r *GameRepository) GetByID(ctx context.Context, userID, id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// Update updates a game owned by the user
func (r *GameRepository) Update(ctx context.Context, userID, id uint, game *models.Game) error {
	return r.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(game).Error
}

// Delete removes a game owned by the user
func (r *GameRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Game{}, id).Error
}

// applyQueryParameters translates quick filters into SQL predicates
func (r *GameRepository) applyQueryParameters(query *gorm.DB, p *models.GameQueryParameters) *gorm.DB {
	if p == nil {
		return query
	}

	if p.Search != "" {
		pattern := "%" + p.Search + "%"
		query = query.Where("name ILIKE ? OR comment ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}
	if p.StatusID != nil {
		query = query.Where("status_id = ?", *p.StatusID)
	}
	if p.PlatformID != nil {
		query = query.Where("platform_id = ?", *p.PlatformID)
	}
	if p.PlayWithID != nil {
		query = query.Where("play_with_id = ?", *p.PlayWithID)
	}
	if p.PlayedStatusID != nil {
		query = query.Where("played_status_id = ?", *p.PlayedStatusID)
	}
	if p.MinGrade != nil {
		query = query.Where("grade >= ?", *p.MinGrade)
	}
	if p.MaxGrade != nil {
		query = query.Where("grade <= ?", *p.MaxGrade)
	}
	if p.ReleasedYear != nil {
		query = query.Where("EXTRACT(YEAR FROM released) = ?", *p.ReleasedYear)
	}
	if p.StartedYear != nil {
		query = query.Where("EXTRACT(YEAR FROM started) = ?", *p.StartedYear)
	}
	if p.FinishedYear != nil {
		query = query.Where("EXTRACT(YEAR FROM finished) = ?", *p.FinishedYear)
	}
	if len(p.ExcludeStatusIDs) > 0 {
		query = query.Where("status_id IS NULL OR status_id NOT IN (?)", p.ExcludeStatusIDs)
	}

	return query
}

// List returns one page of the user's games matching the quick filters,
// along with the total count before pagination.
func (r *GameRepository) List(ctx context.Context, userID uint, p *models.GameQueryParameters) ([]models.Game, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Game{}).Where("user_id = ?", userID)
	query = r.applyQueryParameters(query, p)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	page, pageSize := 1, models.DefaultPageSize
	sortBy, desc := models.GameNameField, false
	if p != nil {
		if p.Page > 0 {
			page = p.Page
		}
		if p.PageSize > 0 && p.PageSize <= models.MaxPageSize {
			pageSize = p.PageSize
		}
		if col, ok := sortColumns[p.SortBy]; ok {
			sortBy = col
		}
		desc = p.SortDescending
	}

	order := sortBy
	if desc {
		order += " DESC"
	}

	var games []models.Game
	err := query.Order(order).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&games).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list games: %w", err)
	}
	return games, total, nil
}

// ListAll returns every game owned by the user, for view evaluation and
// CSV export
func (r *GameRepository) ListAll(ctx context.Context, userID uint) ([]models.Game, error) {
	var games []models.Game
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(models.GameCreatedAtField).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}
