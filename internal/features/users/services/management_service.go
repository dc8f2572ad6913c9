package users_services

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	users_dto "projecthub/internal/features/users/dto"
	users_enums "projecthub/internal/features/users/enums"
	users_interfaces "projecthub/internal/features/users/interfaces"
	users_models "projecthub/internal/features/users/models"
	users_repositories "projecthub/internal/features/users/repositories"

	"github.com/google/uuid"
)

type UserManagementService struct {
	userRepository *users_repositories.UserRepository
	auditLogWriter users_interfaces.AuditLogWriter
}

func (s *UserManagementService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// CreateUser is the privileged creation path: only admins may call it.
func (s *UserManagementService) CreateUser(
	request *users_dto.CreateUserRequestDTO,
	createdBy *users_models.User,
) (*users_dto.UserProfileResponseDTO, error) {
	if !createdBy.CanManageUsers() {
		return nil, errors.New("insufficient permissions to create users")
	}

	role, err := users_enums.ParseUserRole(request.Role)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	hashedPasswordStr := string(hashedPassword)
	user := &users_models.User{
		ID:             uuid.New(),
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: &hashedPasswordStr,
		Role:           role,
		GithubUsername: request.GithubUsername,
		LastUpdated:    time.Now().UTC(),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User created: %s with role %s", user.Email, user.Role),
		&createdBy.ID,
		nil,
	)

	profile := toProfile(user)

	return &profile, nil
}

func (s *UserManagementService) UpdateUser(
	userID uuid.UUID,
	request *users_dto.UpdateUserRequestDTO,
	updatedBy *users_models.User,
) (*users_dto.UserProfileResponseDTO, error) {
	if !updatedBy.CanManageUsers() && updatedBy.ID != userID {
		return nil, errors.New("insufficient permissions to update users")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.GithubUsername != nil {
		user.GithubUsername = request.GithubUsername
	}
	if request.Role != nil {
		if !updatedBy.CanManageUsers() {
			return nil, errors.New("insufficient permissions to change user roles")
		}

		role, err := users_enums.ParseUserRole(*request.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	if err := s.userRepository.UpdateUser(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User updated: %s", user.Email),
		&updatedBy.ID,
		nil,
	)

	profile := toProfile(user)

	return &profile, nil
}

// DeleteUser is a flag flip, never a physical removal. The three-way status
// lets callers tell "already deleted" from "never existed".
func (s *UserManagementService) DeleteUser(
	userID uuid.UUID,
	deletedBy *users_models.User,
) (users_dto.DeleteStatus, error) {
	if !deletedBy.CanManageUsers() {
		return "", errors.New("insufficient permissions to delete users")
	}

	if userID == deletedBy.ID {
		return "", errors.New("cannot delete your own account")
	}

	user, err := s.userRepository.GetAnyUserByID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return users_dto.DeleteStatusNotFound, nil
	}

	if user.Deleted {
		return users_dto.DeleteStatusAlreadyDeleted, nil
	}

	if err := s.userRepository.MarkUserDeleted(userID); err != nil {
		return "", fmt.Errorf("failed to delete user: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User deleted: %s", user.Email),
		&deletedBy.ID,
		nil,
	)

	return users_dto.DeleteStatusDeleted, nil
}

func (s *UserManagementService) GetUsers(
	currentUser *users_models.User,
	request *users_dto.ListUsersRequestDTO,
) (*users_dto.ListUsersResponseDTO, error) {
	if !currentUser.CanManageUsers() {
		return nil, errors.New("insufficient permissions to list users")
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	users, total, err := s.userRepository.GetUsers(limit, offset, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]users_dto.UserProfileResponseDTO, len(users))
	for i, user := range users {
		profiles[i] = toProfile(user)
	}

	return &users_dto.ListUsersResponseDTO{
		Users: profiles,
		Total: total,
	}, nil
}

func (s *UserManagementService) GetUserProfile(
	userID uuid.UUID,
	requestedBy *users_models.User,
) (*users_dto.UserProfileResponseDTO, error) {
	// Users can view their own profile, admins can view any profile
	if userID != requestedBy.ID && !requestedBy.CanManageUsers() {
		return nil, errors.New("insufficient permissions to view user profile")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	profile := toProfile(user)

	return &profile, nil
}

func toProfile(user *users_models.User) users_dto.UserProfileResponseDTO {
	return users_dto.UserProfileResponseDTO{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		GithubUsername: user.GithubUsername,
		Deleted:        user.Deleted,
		LastUpdated:    user.LastUpdated,
		CreatedAt:      user.CreatedAt,
	}
}
