package users_repositories

import (
	"errors"
	"time"

	users_models "projecthub/internal/features/users/models"
	"projecthub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct{}

func (r *UserRepository) CreateUser(user *users_models.User) error {
	return storage.GetDb().Create(user).Error
}

func (r *UserRepository) GetUserByEmail(email string) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

// GetUserByID resolves only non-deleted users. Callers that need the three-way
// found/deleted/missing distinction use GetAnyUserByID.
func (r *UserRepository) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().
		Where("id = ? AND deleted = FALSE", userID).
		First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetAnyUserByID resolves the user regardless of the deleted flag, returning
// nil without error when the id is unknown.
func (r *UserRepository) GetAnyUserByID(userID uuid.UUID) (*users_models.User, error) {
	var user users_models.User

	if err := storage.GetDb().Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdateUser(user *users_models.User) error {
	user.LastUpdated = time.Now().UTC()
	return storage.GetDb().Save(user).Error
}

func (r *UserRepository) MarkUserDeleted(userID uuid.UUID) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"deleted":      true,
			"last_updated": time.Now().UTC(),
		}).Error
}

func (r *UserRepository) UpdateLastLogout(userID uuid.UUID, logoutTime time.Time) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("id = ?", userID).
		Update("last_logout", logoutTime).Error
}

func (r *UserRepository) GetUsers(limit, offset int, beforeCreatedAt *time.Time) ([]*users_models.User, int64, error) {
	var users []*users_models.User
	var total int64

	countQuery := storage.GetDb().Model(&users_models.User{})
	if beforeCreatedAt != nil {
		countQuery = countQuery.Where("created_at < ?", *beforeCreatedAt)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := storage.GetDb().
		Limit(limit).
		Offset(offset).
		Order("created_at DESC")

	if beforeCreatedAt != nil {
		query = query.Where("created_at < ?", *beforeCreatedAt)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) RenameUserEmailForTests(oldEmail, newEmail string) error {
	return storage.GetDb().Model(&users_models.User{}).
		Where("email = ?", oldEmail).
		Update("email", newEmail).Error
}
