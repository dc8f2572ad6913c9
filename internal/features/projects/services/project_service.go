package projects_services

import (
	"errors"
	"fmt"
	"time"

	audit_logs "projecthub/internal/features/audit_logs"
	projects_dto "projecthub/internal/features/projects/dto"
	projects_models "projecthub/internal/features/projects/models"
	projects_repositories "projecthub/internal/features/projects/repositories"
	users_models "projecthub/internal/features/users/models"
	cache_utils "projecthub/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository            *projects_repositories.ProjectRepository
	membershipRepository         *projects_repositories.MembershipRepository
	externalRepositoryRepository *projects_repositories.ExternalRepositoryRepository
	auditLogService              *audit_logs.AuditLogService

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

// CreateProject persists a project under the caller-assigned ID. A reused ID
// is a conflict, never an overwrite.
func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	if !creator.CanManageProjects() {
		return nil, errors.New("insufficient permissions to create projects")
	}

	existing, err := s.projectRepository.GetAnyProjectByID(request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing project: %w", err)
	}
	if existing != nil {
		return nil, ErrProjectIDConflict
	}

	project := &projects_models.Project{
		ID:          request.ID,
		Name:        request.Name,
		Description: request.Description,
		LastUpdated: time.Now().UTC(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProjectIDConflict
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	response := toProjectResponse(project)

	return &response, nil
}

func (s *ProjectService) GetProject(projectID uuid.UUID) (*projects_dto.ProjectResponseDTO, error) {
	project, err := s.getProjectCached(projectID)
	if err != nil {
		return nil, err
	}

	response := toProjectResponse(project)

	return &response, nil
}

func (s *ProjectService) GetProjects() (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.projectRepository.GetActiveProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]projects_dto.ProjectResponseDTO, len(projects))
	for i, project := range projects {
		responses[i] = toProjectResponse(project)
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: responses}, nil
}

func (s *ProjectService) GetUserProjects(userID uuid.UUID) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.membershipRepository.GetProjectsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: projects}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	updatedBy *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	if !updatedBy.CanManageProjects() {
		return nil, errors.New("insufficient permissions to update project")
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	if request.Name != nil {
		project.Name = *request.Name
	}
	if request.Description != nil {
		project.Description = *request.Description
	}
	if request.DesignFileURL != nil {
		project.DesignFileURL = request.DesignFileURL
	}
	if request.DriveURL != nil {
		project.DriveURL = request.DriveURL
	}

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&updatedBy.ID,
		&projectID,
	)

	response := toProjectResponse(project)

	return &response, nil
}

// DeleteProject flips the deleted flag. Memberships are left in place: the
// store never cascades, active listings filter on the flag downstream.
func (s *ProjectService) DeleteProject(
	projectID uuid.UUID,
	deletedBy *users_models.User,
) (projects_dto.DeleteStatus, error) {
	if !deletedBy.CanManageProjects() {
		return "", errors.New("insufficient permissions to delete project")
	}

	project, err := s.projectRepository.GetAnyProjectByID(projectID)
	if err != nil {
		return "", fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return projects_dto.DeleteStatusNotFound, nil
	}

	if project.Deleted {
		return projects_dto.DeleteStatusAlreadyDeleted, nil
	}

	if err := s.projectRepository.MarkProjectDeleted(projectID); err != nil {
		return "", fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Name),
		&deletedBy.ID,
		&projectID,
	)

	return projects_dto.DeleteStatusDeleted, nil
}

func (s *ProjectService) CreateRepository(
	request *projects_dto.CreateRepositoryRequestDTO,
	createdBy *users_models.User,
) (*projects_dto.RepositoryResponseDTO, error) {
	if !createdBy.CanManageProjects() {
		return nil, errors.New("insufficient permissions to manage repositories")
	}

	// A repository linked while its project is soft-deleted stays unattached.
	projectID := request.ProjectID
	if projectID != nil {
		project, err := s.projectRepository.GetAnyProjectByID(*projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project: %w", err)
		}
		if project == nil {
			return nil, ErrProjectNotFound
		}
		if project.Deleted {
			projectID = nil
		}
	}

	repository := &projects_models.ExternalRepository{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		ProjectID:   projectID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.externalRepositoryRepository.CreateRepository(repository); err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Repository linked: %s", repository.Name),
		&createdBy.ID,
		projectID,
	)

	response := toRepositoryResponse(repository)

	return &response, nil
}

func (s *ProjectService) GetProjectRepositories(
	projectID uuid.UUID,
) (*projects_dto.ListRepositoriesResponseDTO, error) {
	repositories, err := s.externalRepositoryRepository.GetRepositoriesByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	return toRepositoryList(repositories), nil
}

func (s *ProjectService) GetUnattachedRepositories() (*projects_dto.ListRepositoriesResponseDTO, error) {
	repositories, err := s.externalRepositoryRepository.GetUnattachedRepositories()
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	return toRepositoryList(repositories), nil
}

func (s *ProjectService) getProjectCached(projectID uuid.UUID) (*projects_models.Project, error) {
	if cached := s.projectCacheUtil.Get(projectID.String()); cached != nil {
		return cached, nil
	}

	result, err, _ := s.singleflight.Do(projectID.String(), func() (any, error) {
		project, err := s.projectRepository.GetProjectByID(projectID)
		if err != nil {
			return nil, ErrProjectNotFound
		}

		s.projectCacheUtil.Set(projectID.String(), project)

		return project, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*projects_models.Project), nil
}

func toProjectResponse(project *projects_models.Project) projects_dto.ProjectResponseDTO {
	return projects_dto.ProjectResponseDTO{
		ID:            project.ID,
		Name:          project.Name,
		Description:   project.Description,
		DesignFileURL: project.DesignFileURL,
		DriveURL:      project.DriveURL,
		Deleted:       project.Deleted,
		LastUpdated:   project.LastUpdated,
		CreatedAt:     project.CreatedAt,
	}
}

func toRepositoryResponse(repository *projects_models.ExternalRepository) projects_dto.RepositoryResponseDTO {
	return projects_dto.RepositoryResponseDTO{
		ID:          repository.ID,
		Name:        repository.Name,
		Description: repository.Description,
		ProjectID:   repository.ProjectID,
		CreatedAt:   repository.CreatedAt,
	}
}

func toRepositoryList(
	repositories []*projects_models.ExternalRepository,
) *projects_dto.ListRepositoriesResponseDTO {
	responses := make([]projects_dto.RepositoryResponseDTO, len(repositories))
	for i, repository := range repositories {
		responses[i] = toRepositoryResponse(repository)
	}

	return &projects_dto.ListRepositoriesResponseDTO{Repositories: responses}
}
