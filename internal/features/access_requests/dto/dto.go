package access_requests_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAccessRequestDTO struct {
	PmName      string    `json:"pmName" binding:"required"`
	UserID      uuid.UUID `json:"userId" binding:"required"`
	ProjectID   uuid.UUID `json:"projectId" binding:"required"`
	Description string    `json:"description"`
}

type DecideAccessRequestDTO struct {
	Allowed *bool `json:"allowed" binding:"required"`
}

type AccessRequestResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	PmName      string    `json:"pmName"`
	UserID      uuid.UUID `json:"userId"`
	ProjectID   uuid.UUID `json:"projectId"`
	Description string    `json:"description"`
	Allowed     bool      `json:"allowed"`
	Updated     bool      `json:"updated"`
	PmNotified  bool      `json:"pmNotified"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListAccessRequestsResponseDTO struct {
	Requests []AccessRequestResponseDTO `json:"requests"`
}

type NotificationDTO struct {
	RequestID uuid.UUID `json:"requestId"`
	Message   string    `json:"message"`
}

type ListNotificationsResponseDTO struct {
	Notifications []NotificationDTO `json:"notifications"`
}
