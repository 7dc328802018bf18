package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// ViewRepository provides access to saved game views
type ViewRepository struct {
	db *gorm.DB
}

// NewViewRepository creates a new view repository
func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Create creates a new view
func (r *ViewRepository) Create(ctx context.Context, view *models.GameView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

// GetByID retrieves a view visible to the user: their own, or a public one
func (r *ViewRepository) GetByID(ctx context.Context, userID, id uint) (*models.GameView, error) {
	var view models.GameView
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR is_public = true", userID).
		First(&view, id).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// GetByName retrieves a view by name, preferring the user's own over a
// public one of the same name
func (r *ViewRepository) GetByName(ctx context.Context, userID uint, name string) (*models.GameView, error) {
	var view models.GameView
	err := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		First(&view).Error
	if err == nil {
		return &view, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Where("name = ? AND is_public = true", name).
		First(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// List returns the views visible to the user in display order
func (r *ViewRepository) List(ctx context.Context, userID uint) ([]models.GameView, error) {
	var views []models.GameView
	err := r.db.WithContext(ctx).
		Where("user_id = ? OR is_public = true", userID).
		Order(models.GameSortOrderField).
		Find(&views).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list views: %w", err)
	}
	return views, nil
}

// Update updates a view owned by the user
func (r *ViewRepository) Update(ctx context.Context, userID, id uint, view *models.GameView) error {
	return r.db.WithContext(ctx).Model(&models.GameView{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(view).Error
}

// Delete removes a view owned by the user
func (r *ViewRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.GameView{}, id).Error
}

// Reorder rewrites the display order of the user's views to match ids
func (r *ViewRepository) Reorder(ctx context.Context, userID uint, ids []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			err := tx.Model(&models.GameView{}).
				Where("id = ? AND user_id = ?", id, userID).
				Update(models.GameSortOrderField, i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
