package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole(t *testing.T) {
	tests := []struct {
		name          string
		role          UserRole
		stringValue   string
		validForParse bool
		roleIndex     int
	}{
		{
			name:          "Standard role",
			role:          UserRoleStandard,
			stringValue:   "standard",
			validForParse: true,
			roleIndex:     0,
		},
		{
			name:          "Admin role",
			role:          UserRoleAdmin,
			stringValue:   "admin",
			validForParse: true,
			roleIndex:     1,
		},
		{
			name:          "Invalid role",
			stringValue:   "invalid_role",
			validForParse: false,
			roleIndex:     -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.roleIndex >= 0 {
				assert.Equal(t, tt.stringValue, tt.role.String())
				assert.Equal(t, tt.roleIndex, int(tt.role))
			}

			parsedRole, err := ParseUserRole(tt.stringValue)
			if tt.validForParse {
				assert.NoError(t, err)
				assert.Equal(t, tt.role, parsedRole)
			} else {
				assert.Error(t, err)
				assert.Equal(t, UserRoleStandard, parsedRole)
			}
		})
	}
}

func TestUserRoleJSONRoundTrip(t *testing.T) {
	for _, role := range []UserRole{UserRoleStandard, UserRoleAdmin} {
		data, err := json.Marshal(role)
		assert.NoError(t, err)

		var decoded UserRole
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, role, decoded)
	}

	var decoded UserRole
	assert.Error(t, json.Unmarshal([]byte(`"superuser"`), &decoded))
}

func TestUserJSONHidesPasswordHash(t *testing.T) {
	user := User{
		Username:     "alice",
		PasswordHash: "bcrypt-hash",
		Role:         UserRoleAdmin,
	}

	data, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "bcrypt-hash")
	assert.Contains(t, string(data), `"alice"`)
}
