package users_models

import (
	"time"

	users_enums "projecthub/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	HashedPassword *string              `json:"-"              gorm:"column:hashed_password"`
	Role           users_enums.UserRole `json:"role"`
	GithubUsername *string              `json:"githubUsername" gorm:"column:github_username"`
	Deleted        bool                 `json:"deleted"`
	LastUpdated    time.Time            `json:"lastUpdated"    gorm:"column:last_updated"`
	LastLogout     time.Time            `json:"-"              gorm:"column:last_logout"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Permission methods
func (u *User) IsAdmin() bool {
	return u.Role == users_enums.UserRoleSuperAdmin || u.Role == users_enums.UserRoleAdmin
}

func (u *User) CanManageUsers() bool {
	return u.IsAdmin()
}

func (u *User) CanManageProjects() bool {
	return u.IsAdmin() || u.Role == users_enums.UserRoleProjectManager
}

func (u *User) CanDecideAccessRequests() bool {
	return u.IsAdmin() || u.Role == users_enums.UserRoleProjectManager
}

func (u *User) IsActiveUser() bool {
	return !u.Deleted
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
