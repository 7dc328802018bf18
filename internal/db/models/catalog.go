package models

import "gorm.io/gorm"

// CatalogBase holds the fields shared by every auxiliary catalog table.
// Catalogs are user scoped: two users can each have their own "Backlog" status.
type CatalogBase struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null;index"`
	Name      string `json:"name" gorm:"not null"`
	Color     string `json:"color"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	SortOrder int    `json:"sort_order"`
}

// SetOwner stamps the owning user on a catalog item
func (b *CatalogBase) SetOwner(userID uint) {
	b.UserID = userID
}

// ItemName returns the item's display name
func (b *CatalogBase) ItemName() string {
	return b.Name
}

// Platform represents a platform a game can be owned on
type Platform struct {
	CatalogBase
}

// Status represents a collection status (backlog, playing, dropped, ...)
type Status struct {
	CatalogBase
	IsDefault bool `json:"is_default"`
}

// PlayWith represents a "play with" option (solo, co-op, a named friend, ...)
type PlayWith struct {
	CatalogBase
}

// PlayedStatus represents how far a game has been played
type PlayedStatus struct {
	CatalogBase
}
