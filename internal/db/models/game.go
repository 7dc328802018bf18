package models

import (
	"time"

	"gorm.io/gorm"
)

// Column names used by repositories when building queries
const (
	GameNameField      = "name"
	GameCreatedAtField = "created_at"
	GameSortOrderField = "sort_order"
)

// Game represents a single entry in a user's collection
type Game struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;index"`
	Name   string `json:"name" gorm:"not null;index"`

	Comment     *string `json:"comment"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Cover       *string `json:"cover"`

	StatusID       *uint `json:"status_id" gorm:"index"`
	PlatformID     *uint `json:"platform_id" gorm:"index"`
	PlayWithID     *uint `json:"play_with_id"`
	PlayedStatusID *uint `json:"played_status_id"`

	Score      *float64 `json:"score"`
	Grade      *float64 `json:"grade"`
	Critic     *float64 `json:"critic"`
	Story      *float64 `json:"story"`
	Completion *float64 `json:"completion"`

	Released    *time.Time `json:"released"`
	Started     *time.Time `json:"started"`
	Finished    *time.Time `json:"finished"`
	ReleaseDate *time.Time `json:"release_date"`
}
