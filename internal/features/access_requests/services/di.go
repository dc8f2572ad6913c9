package access_requests_services

import (
	access_requests_repositories "projecthub/internal/features/access_requests/repositories"
	audit_logs "projecthub/internal/features/audit_logs"
	projects_repositories "projecthub/internal/features/projects/repositories"
	users_services "projecthub/internal/features/users/services"

	"github.com/google/uuid"
)

// projectExistenceResolver adapts the projects repository to the existence
// check the workflow needs, keeping the weak-reference semantics: a
// soft-deleted project still counts as existing.
type projectExistenceResolver struct {
	projectRepository *projects_repositories.ProjectRepository
}

func (r *projectExistenceResolver) ProjectExists(projectID uuid.UUID) (bool, error) {
	project, err := r.projectRepository.GetAnyProjectByID(projectID)
	if err != nil {
		return false, err
	}

	return project != nil, nil
}

var accessRequestRepository = &access_requests_repositories.AccessRequestRepository{}

var accessRequestService = &AccessRequestService{
	accessRequestRepository,
	users_services.GetUserService(),
	&projectExistenceResolver{&projects_repositories.ProjectRepository{}},
	audit_logs.GetAuditLogService(),
}

func GetAccessRequestService() *AccessRequestService {
	return accessRequestService
}
