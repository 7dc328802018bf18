package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// CatalogModel constrains the generic catalog repository to the four
// auxiliary catalog tables
type CatalogModel interface {
	models.Platform | models.Status | models.PlayWith | models.PlayedStatus
}

// CatalogRepository provides CRUD and reordering for one catalog table
type CatalogRepository[T CatalogModel] struct {
	db *gorm.DB
}

// NewCatalogRepository creates a repository for one catalog model
func NewCatalogRepository[T CatalogModel](db *gorm.DB) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db}
}

// Create creates a new catalog item
func (r *CatalogRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetByID retrieves a catalog item owned by the user
func (r *CatalogRepository[T]) GetByID(ctx context.Context, userID, id uint) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns the user's catalog items in display order
func (r *CatalogRepository[T]) List(ctx context.Context, userID uint) ([]T, error) {
	var items []T
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(models.GameSortOrderField).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	return items, nil
}

// Update updates a catalog item owned by the user
func (r *CatalogRepository[T]) Update(ctx context.Context, userID, id uint, item *T) error {
	var model T
	return r.db.WithContext(ctx).Model(&model).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(item).Error
}

// Delete removes a catalog item owned by the user
func (r *CatalogRepository[T]) Delete(ctx context.Context, userID, id uint) error {
	var model T
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model).Error
}

// Reorder rewrites the display order of the user's catalog items
func (r *CatalogRepository[T]) Reorder(ctx context.Context, userID uint, ids []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		for i, id := range ids {
			err := tx.Model(&model).
				Where("id = ? AND user_id = ?", id, userID).
				Update(models.GameSortOrderField, i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
