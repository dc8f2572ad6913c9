package directory_dto

import (
	"github.com/google/uuid"
)

type DirectorySummaryDTO struct {
	ActiveProjects   int64            `json:"activeProjects"`
	InactiveProjects int64            `json:"inactiveProjects"`
	TotalProjects    int64            `json:"totalProjects"`
	ActiveUsers      int64            `json:"activeUsers"`
	UsersByRole      map[string]int64 `json:"usersByRole"`
}

type ProjectMemberCountDTO struct {
	ProjectID   uuid.UUID `json:"projectId"`
	ProjectName string    `json:"projectName"`
	MemberCount int64     `json:"memberCount"`
}

type ListProjectMemberCountsDTO struct {
	Projects []ProjectMemberCountDTO `json:"projects"`
}

type ProjectLinkGapDTO struct {
	ProjectID     uuid.UUID `json:"projectId"`
	ProjectName   string    `json:"projectName"`
	MissingDesign bool      `json:"missingDesign"`
	MissingDrive  bool      `json:"missingDrive"`
}

type ListProjectLinkGapsDTO struct {
	Projects []ProjectLinkGapDTO `json:"projects"`
}

type UserEngagementDTO struct {
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProjectCount int64     `json:"projectCount"`
}

type ListUserEngagementDTO struct {
	Users []UserEngagementDTO `json:"users"`
}
