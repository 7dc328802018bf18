// Package models exposes the database models needed by API client consumers.
package models

// NOTE: This package uses type aliases to internal definitions
// as a temporary measure. This should be revisited
// during a proper refactoring to define stable public types.

import (
	internalmodels "github.com/David-H-Afonso/gamesdatabase/internal/db/models"
)

// Game represents a single entry in a user's collection
type Game = internalmodels.Game

// GameQueryParameters carries the quick filters, view selection and
// pagination for game list requests
type GameQueryParameters = internalmodels.GameQueryParameters

// GameView represents a saved view: named filter groups plus sorting
type GameView = internalmodels.GameView

// Platform represents a platform a game can be owned on
type Platform = internalmodels.Platform

// Status represents a collection status
type Status = internalmodels.Status

// PlayWith represents a "play with" option
type PlayWith = internalmodels.PlayWith

// PlayedStatus represents how far a game has been played
type PlayedStatus = internalmodels.PlayedStatus

// User represents an account
type User = internalmodels.User

// UserRole is the access level of an account
type UserRole = internalmodels.UserRole

const (
	// UserRoleStandard is the regular user role
	UserRoleStandard UserRole = internalmodels.UserRoleStandard
	// UserRoleAdmin is the administrator role
	UserRoleAdmin UserRole = internalmodels.UserRoleAdmin
)
