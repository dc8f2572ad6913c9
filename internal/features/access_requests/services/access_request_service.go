package access_requests_services

import (
	"errors"
	"fmt"

	access_requests_dto "projecthub/internal/features/access_requests/dto"
	access_requests_models "projecthub/internal/features/access_requests/models"
	access_requests_repositories "projecthub/internal/features/access_requests/repositories"
	audit_logs "projecthub/internal/features/audit_logs"
	users_models "projecthub/internal/features/users/models"
	users_services "projecthub/internal/features/users/services"

	"github.com/google/uuid"
)

const (
	grantedMessageSuffix = " has been granted"
	deniedMessageSuffix  = " has been denied"
	messagePrefix        = "Request for adding "
)

var ErrAccessRequestUserNotFound = errors.New("referenced user not found")
var ErrAccessRequestProjectNotFound = errors.New("referenced project not found")

// ProjectResolver resolves a project id regardless of its deleted flag. The
// workflow only needs existence, not project data.
type ProjectResolver interface {
	ProjectExists(projectID uuid.UUID) (bool, error)
}

type AccessRequestService struct {
	accessRequestRepository *access_requests_repositories.AccessRequestRepository
	userService             *users_services.UserService
	projectResolver         ProjectResolver
	auditLogService         *audit_logs.AuditLogService
}

// CreateRequest records a new proposal. Duplicate outstanding requests for the
// same (user, project) pair are allowed: several sponsors may propose the same
// addition and each gets its own decision.
func (s *AccessRequestService) CreateRequest(
	request *access_requests_dto.CreateAccessRequestDTO,
	createdBy *users_models.User,
) (*access_requests_dto.AccessRequestResponseDTO, error) {
	user, err := s.userService.GetUserByAnyID(request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return nil, ErrAccessRequestUserNotFound
	}

	exists, err := s.projectResolver.ProjectExists(request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project: %w", err)
	}
	if !exists {
		return nil, ErrAccessRequestProjectNotFound
	}

	accessRequest := &access_requests_models.AccessRequest{
		ID:          uuid.New(),
		PmName:      request.PmName,
		UserID:      request.UserID,
		ProjectID:   request.ProjectID,
		Description: request.Description,
	}

	if err := s.accessRequestRepository.CreateRequest(accessRequest); err != nil {
		return nil, fmt.Errorf("failed to create access request: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Access request created for user: %s", request.UserID),
		&createdBy.ID,
		&request.ProjectID,
	)

	return toResponse(accessRequest), nil
}

// Decide records the PM's verdict and returns the active request list. An
// unknown id is a silent no-op so retries converge on the same response.
func (s *AccessRequestService) Decide(
	requestID uuid.UUID,
	allowed bool,
	decidedBy *users_models.User,
) (*access_requests_dto.ListAccessRequestsResponseDTO, error) {
	if !decidedBy.CanDecideAccessRequests() {
		return nil, errors.New("insufficient permissions to decide access requests")
	}

	request, err := s.accessRequestRepository.GetRequestByID(requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve access request: %w", err)
	}

	if request != nil {
		request.Allowed = allowed
		request.Updated = true

		if err := s.accessRequestRepository.UpdateRequest(request); err != nil {
			return nil, fmt.Errorf("failed to update access request: %w", err)
		}

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Access request decided (allowed=%t): %s", allowed, requestID),
			&decidedBy.ID,
			&request.ProjectID,
		)
	}

	return s.GetActiveRequests()
}

func (s *AccessRequestService) GetActiveRequests() (*access_requests_dto.ListAccessRequestsResponseDTO, error) {
	requests, err := s.accessRequestRepository.GetActiveRequests()
	if err != nil {
		return nil, fmt.Errorf("failed to get access requests: %w", err)
	}

	responses := make([]access_requests_dto.AccessRequestResponseDTO, len(requests))
	for i, request := range requests {
		responses[i] = *toResponse(request)
	}

	return &access_requests_dto.ListAccessRequestsResponseDTO{Requests: responses}, nil
}

// GetUnreadForPM returns decided, unacknowledged requests for the named PM as
// rendered notification messages.
func (s *AccessRequestService) GetUnreadForPM(pmName string) (*access_requests_dto.ListNotificationsResponseDTO, error) {
	requests, err := s.accessRequestRepository.GetRequestsForPM(pmName, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return s.renderNotifications(requests)
}

// GetAllForPM returns every uncleared request for the named PM, read or not,
// rendered the same way.
func (s *AccessRequestService) GetAllForPM(pmName string) (*access_requests_dto.ListNotificationsResponseDTO, error) {
	requests, err := s.accessRequestRepository.GetRequestsForPM(pmName, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return s.renderNotifications(requests)
}

// MarkNotified flags the decision as seen by the PM. Unknown ids are a silent
// no-op.
func (s *AccessRequestService) MarkNotified(requestID uuid.UUID) error {
	request, err := s.accessRequestRepository.GetRequestByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to resolve access request: %w", err)
	}
	if request == nil {
		return nil
	}

	request.PmNotified = true

	if err := s.accessRequestRepository.UpdateRequest(request); err != nil {
		return fmt.Errorf("failed to update access request: %w", err)
	}

	return nil
}

// ClearAll archives every request by flipping its deleted flag. Rows are kept
// so past decisions remain in storage.
func (s *AccessRequestService) ClearAll(clearedBy *users_models.User) error {
	if !clearedBy.CanDecideAccessRequests() {
		return errors.New("insufficient permissions to clear access requests")
	}

	if err := s.accessRequestRepository.ClearAllRequests(); err != nil {
		return fmt.Errorf("failed to clear access requests: %w", err)
	}

	s.auditLogService.WriteAuditLog("Access requests cleared", &clearedBy.ID, nil)

	return nil
}

// renderNotifications builds the granted/denied sentences. The user name comes
// from a lookup join at render time, tolerating soft-deleted users; the stored
// pm name stays denormalized.
func (s *AccessRequestService) renderNotifications(
	requests []*access_requests_models.AccessRequest,
) (*access_requests_dto.ListNotificationsResponseDTO, error) {
	notifications := make([]access_requests_dto.NotificationDTO, 0, len(requests))

	for _, request := range requests {
		user, err := s.userService.GetUserByAnyID(request.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user for rendering: %w", err)
		}

		userName := request.UserID.String()
		if user != nil {
			userName = user.Name
		}

		notifications = append(notifications, access_requests_dto.NotificationDTO{
			RequestID: request.ID,
			Message:   RenderDecision(userName, request.Allowed),
		})
	}

	return &access_requests_dto.ListNotificationsResponseDTO{Notifications: notifications}, nil
}

// RenderDecision produces the exact notification sentence shown to the PM.
func RenderDecision(userName string, allowed bool) string {
	if allowed {
		return messagePrefix + userName + grantedMessageSuffix
	}

	return messagePrefix + userName + deniedMessageSuffix
}

func toResponse(request *access_requests_models.AccessRequest) *access_requests_dto.AccessRequestResponseDTO {
	return &access_requests_dto.AccessRequestResponseDTO{
		ID:          request.ID,
		PmName:      request.PmName,
		UserID:      request.UserID,
		ProjectID:   request.ProjectID,
		Description: request.Description,
		Allowed:     request.Allowed,
		Updated:     request.Updated,
		PmNotified:  request.PmNotified,
		CreatedAt:   request.CreatedAt,
	}
}
