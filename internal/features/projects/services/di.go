package projects_services

import (
	"projecthub/internal/cache"
	"projecthub/internal/features/audit_logs"
	projects_models "projecthub/internal/features/projects/models"
	projects_repositories "projecthub/internal/features/projects/repositories"
	"projecthub/internal/features/repohost"
	users_services "projecthub/internal/features/users/services"
	cache_utils "projecthub/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}
var externalRepositoryRepository = &projects_repositories.ExternalRepositoryRepository{}

var projectService = &ProjectService{
	projectRepository,
	membershipRepository,
	externalRepositoryRepository,
	audit_logs.GetAuditLogService(),
	cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "ph_project:"),
	singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository,
	projectRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
	repohost.GetCollaboratorGateway(),
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
