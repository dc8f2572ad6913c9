package projects_repositories

import (
	"errors"
	"time"

	projects_models "projecthub/internal/features/projects/models"
	"projecthub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if project.LastUpdated.IsZero() {
		project.LastUpdated = project.CreatedAt
	}

	return storage.GetDb().Create(project).Error
}

// GetProjectByID resolves only non-deleted projects.
func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().
		Where("id = ? AND deleted = FALSE", projectID).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetAnyProjectByID resolves the project regardless of the deleted flag,
// returning nil without error when the id is unknown.
func (r *ProjectRepository) GetAnyProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	project.LastUpdated = time.Now().UTC()
	return storage.GetDb().Save(project).Error
}

func (r *ProjectRepository) MarkProjectDeleted(projectID uuid.UUID) error {
	return storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"deleted":      true,
			"last_updated": time.Now().UTC(),
		}).Error
}

func (r *ProjectRepository) GetActiveProjects() ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Where("deleted = FALSE").
		Order("name ASC").
		Find(&projects).Error

	return projects, err
}
