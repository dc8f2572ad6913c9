package projects_repositories

import (
	"errors"
	"time"

	projects_models "projecthub/internal/features/projects/models"
	"projecthub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExternalRepositoryRepository struct{}

func (r *ExternalRepositoryRepository) CreateRepository(repository *projects_models.ExternalRepository) error {
	if repository.ID == uuid.Nil {
		repository.ID = uuid.New()
	}

	if repository.CreatedAt.IsZero() {
		repository.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(repository).Error
}

func (r *ExternalRepositoryRepository) GetRepositoryByID(
	repositoryID uuid.UUID,
) (*projects_models.ExternalRepository, error) {
	var repository projects_models.ExternalRepository

	err := storage.GetDb().Where("id = ?", repositoryID).First(&repository).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &repository, nil
}

func (r *ExternalRepositoryRepository) GetRepositoriesByProjectID(
	projectID uuid.UUID,
) ([]*projects_models.ExternalRepository, error) {
	var repositories []*projects_models.ExternalRepository

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&repositories).Error

	return repositories, err
}

// GetUnattachedRepositories lists repositories whose project reference is nil.
func (r *ExternalRepositoryRepository) GetUnattachedRepositories() ([]*projects_models.ExternalRepository, error) {
	var repositories []*projects_models.ExternalRepository

	err := storage.GetDb().
		Where("project_id IS NULL").
		Order("created_at ASC").
		Find(&repositories).Error

	return repositories, err
}

func (r *ExternalRepositoryRepository) UpdateRepository(repository *projects_models.ExternalRepository) error {
	return storage.GetDb().Save(repository).Error
}
