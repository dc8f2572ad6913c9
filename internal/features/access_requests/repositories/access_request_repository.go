package access_requests_repositories

import (
	"errors"

	access_requests_models "projecthub/internal/features/access_requests/models"
	"projecthub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessRequestRepository struct{}

func (r *AccessRequestRepository) CreateRequest(request *access_requests_models.AccessRequest) error {
	return storage.GetDb().Create(request).Error
}

// GetRequestByID returns nil without error when the id is unknown or the
// request has been cleared. The decide and mark-notified paths rely on that
// to stay no-ops under retry.
func (r *AccessRequestRepository) GetRequestByID(requestID uuid.UUID) (*access_requests_models.AccessRequest, error) {
	var request access_requests_models.AccessRequest

	if err := storage.GetDb().
		Where("id = ? AND deleted = FALSE", requestID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &request, nil
}

func (r *AccessRequestRepository) UpdateRequest(request *access_requests_models.AccessRequest) error {
	return storage.GetDb().Save(request).Error
}

// GetActiveRequests returns every request that has not been cleared, newest
// first.
func (r *AccessRequestRepository) GetActiveRequests() ([]*access_requests_models.AccessRequest, error) {
	var requests []*access_requests_models.AccessRequest

	if err := storage.GetDb().
		Where("deleted = FALSE").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// GetRequestsForPM returns decided, unacknowledged requests for the named PM
// when unreadOnly is set, otherwise every uncleared request for that PM.
func (r *AccessRequestRepository) GetRequestsForPM(
	pmName string,
	unreadOnly bool,
) ([]*access_requests_models.AccessRequest, error) {
	query := storage.GetDb().
		Where("pm_name = ? AND deleted = FALSE", pmName)

	if unreadOnly {
		query = query.Where("updated = TRUE AND pm_notified = FALSE")
	}

	var requests []*access_requests_models.AccessRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// ClearAllRequests flags every uncleared request as deleted. Rows stay in
// place for audit history.
func (r *AccessRequestRepository) ClearAllRequests() error {
	return storage.GetDb().
		Model(&access_requests_models.AccessRequest{}).
		Where("deleted = FALSE").
		Update("deleted", true).Error
}
