package projects_dto

import (
	"time"

	users_enums "projecthub/internal/features/users/enums"

	"github.com/google/uuid"
)

// Project DTOs
type CreateProjectRequestDTO struct {
	ID          uuid.UUID `json:"id"          binding:"required"`
	Name        string    `json:"name"        binding:"required,min=1,max=255"`
	Description string    `json:"description"`
}

type UpdateProjectRequestDTO struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	DesignFileURL *string `json:"designFileUrl"`
	DriveURL      *string `json:"driveUrl"`
}

type ProjectResponseDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DesignFileURL *string   `json:"designFileUrl"`
	DriveURL      *string   `json:"driveUrl"`
	Deleted       bool      `json:"deleted"`
	LastUpdated   time.Time `json:"lastUpdated"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
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

// Membership DTOs
type AddMemberRequestDTO struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	Name      string               `json:"name"`
	Email     string               `json:"email"` // Populated from user join
	Role      users_enums.UserRole `json:"role"`
	Deleted   bool                 `json:"deleted"`
	CreatedAt time.Time            `json:"createdAt"`
}

type GetMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}

// RemoveMemberWithRepoRequestDTO carries the collaborator coordinates for the
// combined "remove locally and revoke repository access" operation. The access
// token is caller-supplied and never stored.
type RemoveMemberWithRepoRequestDTO struct {
	RepoOwner   string `json:"repoOwner"   binding:"required"`
	RepoName    string `json:"repoName"    binding:"required"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken" binding:"required"`
}

type RemoveMemberResponseDTO struct {
	Message             string `json:"message"`
	CollaboratorRemoved *bool  `json:"collaboratorRemoved,omitempty"`
}

// External repository DTOs
type CreateRepositoryRequestDTO struct {
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Description string     `json:"description"`
	ProjectID   *uuid.UUID `json:"projectId"`
}

type RepositoryResponseDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ProjectID   *uuid.UUID `json:"projectId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ListRepositoriesResponseDTO struct {
	Repositories []RepositoryResponseDTO `json:"repositories"`
}
