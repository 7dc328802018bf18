package models

import "gorm.io/gorm"

// GameView is a named, persisted filter+sort configuration for the game list.
// Configuration is stored as raw JSON and decoded by the filter package; older
// clients persisted it double-encoded, which the decoder still accepts.
type GameView struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"not null;index"`
	Name          string `json:"name" gorm:"not null"`
	IsPublic      bool   `json:"is_public"`
	Configuration string `json:"configuration" gorm:"type:jsonb"`
	SortOrder     int    `json:"sort_order"`
}
