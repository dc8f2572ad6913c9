package users_dto

import (
	"time"

	users_enums "projecthub/internal/features/users/enums"

	"github.com/google/uuid"
)

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type CreateUserRequestDTO struct {
	Name           string  `json:"name"           binding:"required,min=1,max=255"`
	Email          string  `json:"email"          binding:"required,email"`
	Password       string  `json:"password"       binding:"required,min=8"`
	Role           string  `json:"role"           binding:"required"`
	GithubUsername *string `json:"githubUsername"`
}

type UpdateUserRequestDTO struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Role           *string `json:"role"`
	GithubUsername *string `json:"githubUsername"`
}

type UserProfileResponseDTO struct {
	ID             uuid.UUID            `json:"id"`
	Name           string               `json:"name"`
	Email          string               `json:"email"`
	Role           users_enums.UserRole `json:"role"`
	GithubUsername *string              `json:"githubUsername"`
	Deleted        bool                 `json:"deleted"`
	LastUpdated    time.Time            `json:"lastUpdated"`
	CreatedAt      time.Time            `json:"createdAt"`
}

type ListUsersRequestDTO struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type ListUsersResponseDTO struct {
	Users []UserProfileResponseDTO `json:"users"`
	Total int64                    `json:"total"`
}

type DeleteStatus string

const (
	DeleteStatusDeleted        DeleteStatus = "DELETED"
	DeleteStatusAlreadyDeleted DeleteStatus = "ALREADY_DELETED"
	DeleteStatusNotFound       DeleteStatus = "NOT_FOUND"
)

type DeleteResponseDTO struct {
	Status DeleteStatus `json:"status"`
}
