package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMembership pairs are set-like: no multiplicity and no per-membership
// role, a member's capabilities derive from the user's global role.
type ProjectMembership struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
