package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// UserRole represents the role of a user in the system
type UserRole int

// User role constants
const (
	// UserRoleStandard represents a standard user
	UserRoleStandard UserRole = iota
	// UserRoleAdmin represents an administrator user
	UserRoleAdmin
)

// User represents an account in the system
type User struct {
	gorm.Model
	Username     string   `json:"username" gorm:"not null;unique"`
	PasswordHash string   `json:"-" gorm:"not null"`
	Role         UserRole `json:"role" gorm:"index"`
	// Preferences holds per-user UI settings as raw JSON (theme, default view, ...)
	Preferences string `json:"preferences" gorm:"type:jsonb;default:'{}'"`
}

func (s UserRole) String() string {
	return []string{
		"standard",
		"admin",
	}[s]
}

// ParseUserRole converts a string representation of a user role to UserRole type
func ParseUserRole(str string) (UserRole, error) {
	for i, role := range []string{
		"standard",
		"admin",
	} {
		if role == str {
			return UserRole(i), nil
		}
	}
	return UserRoleStandard, fmt.Errorf("invalid user role: %s", str)
}

func (s UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	role, err := ParseUserRole(str)
	if err != nil {
		return err
	}

	*s = role
	return nil
}
