package projects_repositories

import (
	"errors"
	"time"

	projects_dto "projecthub/internal/features/projects/dto"
	projects_models "projecthub/internal/features/projects/models"
	users_enums "projecthub/internal/features/users/enums"
	"projecthub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

// CreateMembership inserts the pair. A concurrent duplicate add surfaces as
// gorm.ErrDuplicatedKey from the unique index, which callers translate to the
// same Conflict as the pre-check.
func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByUserAndProject(
	userID, projectID uuid.UUID,
) (*projects_models.ProjectMembership, error) {
	var membership projects_models.ProjectMembership

	err := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// RemoveMember deletes the pair if present. Removing an absent member is a
// successful no-op, not an error.
func (r *MembershipRepository) RemoveMember(userID, projectID uuid.UUID) error {
	return storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&projects_models.ProjectMembership{}).Error
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
	roleFilter *users_enums.UserRole,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	var members []*projects_dto.ProjectMemberResponseDTO

	query := storage.GetDb().
		Table("project_memberships pm").
		Select("pm.id, pm.user_id, u.name, u.email, u.role, u.deleted, pm.created_at").
		Joins("JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID)

	if roleFilter != nil {
		query = query.Where("u.role = ?", *roleFilter)
	}

	err := query.Order("pm.created_at ASC").Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) GetProjectsByUserID(
	userID uuid.UUID,
) ([]projects_dto.ProjectResponseDTO, error) {
	results := make([]projects_dto.ProjectResponseDTO, 0)

	err := storage.GetDb().
		Table("projects p").
		Select("p.id, p.name, p.description, p.design_file_url, p.drive_url, p.deleted, p.last_updated, p.created_at").
		Joins("JOIN project_memberships pm ON p.id = pm.project_id").
		Where("pm.user_id = ?", userID).
		Order("p.name ASC").
		Scan(&results).Error

	return results, err
}
