package users_enums

import (
	"fmt"
	"strings"
)

type UserRole string

const (
	UserRoleSuperAdmin     UserRole = "SUPER_ADMIN"
	UserRoleAdmin          UserRole = "ADMIN"
	UserRoleProjectManager UserRole = "PROJECT_MANAGER"
	UserRoleUser           UserRole = "USER"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleSuperAdmin, UserRoleAdmin, UserRoleProjectManager, UserRoleUser:
		return true
	default:
		return false
	}
}

// ParseUserRole accepts role literals case-insensitively and rejects anything
// outside the closed set.
func ParseUserRole(raw string) (UserRole, error) {
	role := UserRole(strings.ToUpper(strings.TrimSpace(raw)))
	if !role.IsValid() {
		return "", fmt.Errorf("unrecognized role: %q", raw)
	}

	return role, nil
}
