package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// ExternalRepository may exist unattached: ProjectID stays nil when the
// repository was linked while its project was soft-deleted.
type ExternalRepository struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id"`
	Name        string     `json:"name"        gorm:"column:name"`
	Description string     `json:"description" gorm:"column:description"`
	ProjectID   *uuid.UUID `json:"projectId"   gorm:"column:project_id"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
}

func (ExternalRepository) TableName() string {
	return "external_repositories"
}
