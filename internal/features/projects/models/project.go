package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// Project IDs are assigned by the caller at creation time, not generated.
type Project struct {
	ID            uuid.UUID `json:"id"            gorm:"column:id"`
	Name          string    `json:"name"          gorm:"column:name"`
	Description   string    `json:"description"   gorm:"column:description"`
	DesignFileURL *string   `json:"designFileUrl" gorm:"column:design_file_url"`
	DriveURL      *string   `json:"driveUrl"      gorm:"column:drive_url"`
	Deleted       bool      `json:"deleted"       gorm:"column:deleted"`
	LastUpdated   time.Time `json:"lastUpdated"   gorm:"column:last_updated"`
	CreatedAt     time.Time `json:"createdAt"     gorm:"column:created_at"`
}

func (Project) TableName() string {
	return "projects"
}
