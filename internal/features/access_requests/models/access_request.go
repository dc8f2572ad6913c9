package access_requests_models

import (
	"time"

	"github.com/google/uuid"
)

// AccessRequest references the proposed user and target project by id only.
// Both references must stay resolvable even after the referenced row is
// soft-deleted, so there are no foreign keys here. PmName is a stored display
// string, deliberately denormalized; user names for rendering come from a
// separate join.
type AccessRequest struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PmName      string    `json:"pmName" gorm:"column:pm_name;not null"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	ProjectID   uuid.UUID `json:"projectId" gorm:"type:uuid;not null"`
	Description string    `json:"description" gorm:"default:''"`
	Allowed     bool      `json:"allowed" gorm:"default:false"`
	Updated     bool      `json:"updated" gorm:"default:false"`
	PmNotified  bool      `json:"pmNotified" gorm:"column:pm_notified;default:false"`
	Deleted     bool      `json:"-" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (AccessRequest) TableName() string {
	return "access_requests"
}

// IsPending reports whether no decision has been recorded yet.
func (r *AccessRequest) IsPending() bool {
	return !r.Updated
}
