package projects_services

import (
	"context"
	"errors"
	"fmt"

	audit_logs "projecthub/internal/features/audit_logs"
	projects_dto "projecthub/internal/features/projects/dto"
	projects_interfaces "projecthub/internal/features/projects/interfaces"
	projects_models "projecthub/internal/features/projects/models"
	projects_repositories "projecthub/internal/features/projects/repositories"
	users_enums "projecthub/internal/features/users/enums"
	users_models "projecthub/internal/features/users/models"
	users_services "projecthub/internal/features/users/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	memberRemovedMessage       = "User removed"
	memberRemoveFailureMessage = "Unable to remove user"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	projectRepository    *projects_repositories.ProjectRepository
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	collaboratorGateway  projects_interfaces.CollaboratorGateway
}

// SetCollaboratorGateway replaces the external registry boundary; tests use it
// to observe and fail the external step.
func (s *MembershipService) SetCollaboratorGateway(gateway projects_interfaces.CollaboratorGateway) {
	s.collaboratorGateway = gateway
}

func (s *MembershipService) GetMembers(
	projectID uuid.UUID,
	roleFilter *users_enums.UserRole,
) (*projects_dto.GetMembersResponseDTO, error) {
	project, err := s.projectRepository.GetAnyProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project: %w", err)
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID, roleFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	membersList := make([]projects_dto.ProjectMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &projects_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

// AddMember creates the membership pair. The existence pre-check produces the
// friendly Conflict; the unique index catches the concurrent case and maps to
// the same Conflict.
func (s *MembershipService) AddMember(
	projectID uuid.UUID,
	userID uuid.UUID,
	addedBy *users_models.User,
) (*projects_dto.GetMembersResponseDTO, error) {
	if !addedBy.CanManageProjects() {
		return nil, errors.New("insufficient permissions to manage members")
	}

	if err := s.resolveEntities(projectID, userID); err != nil {
		return nil, err
	}

	existingMembership, err := s.membershipRepository.GetMembershipByUserAndProject(userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if existingMembership != nil {
		return nil, ErrAlreadyMember
	}

	membership := &projects_models.ProjectMembership{
		ProjectID: projectID,
		UserID:    userID,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User added to project: %s", userID),
		&addedBy.ID,
		&projectID,
	)

	return s.GetMembers(projectID, nil)
}

// RemoveMember is idempotent at the collection level: removing a user who is
// not a member succeeds, only unknown entity ids are NotFound.
func (s *MembershipService) RemoveMember(
	projectID uuid.UUID,
	userID uuid.UUID,
	removedBy *users_models.User,
) (*projects_dto.RemoveMemberResponseDTO, error) {
	if !removedBy.CanManageProjects() {
		return nil, errors.New("insufficient permissions to remove members")
	}

	if err := s.resolveEntities(projectID, userID); err != nil {
		return nil, err
	}

	if err := s.membershipRepository.RemoveMember(userID, projectID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User removed from project: %s", userID),
		&removedBy.ID,
		&projectID,
	)

	return &projects_dto.RemoveMemberResponseDTO{Message: memberRemovedMessage}, nil
}

// RemoveMemberAndCollaborator removes the membership locally first, then
// attempts to revoke collaborator access on the external repository host. The
// local removal always stands; a failed external call only changes the
// advisory in the response.
func (s *MembershipService) RemoveMemberAndCollaborator(
	ctx context.Context,
	projectID uuid.UUID,
	userID uuid.UUID,
	request *projects_dto.RemoveMemberWithRepoRequestDTO,
	removedBy *users_models.User,
) (*projects_dto.RemoveMemberResponseDTO, error) {
	if !removedBy.CanManageProjects() {
		return nil, errors.New("insufficient permissions to remove members")
	}

	if err := s.resolveEntities(projectID, userID); err != nil {
		return nil, err
	}

	username := request.Username
	if username == "" {
		user, err := s.userService.GetUserByID(userID)
		if err == nil && user.GithubUsername != nil {
			username = *user.GithubUsername
		}
	}

	if err := s.membershipRepository.RemoveMember(userID, projectID); err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User removed from project: %s", userID),
		&removedBy.ID,
		&projectID,
	)

	removed := s.collaboratorGateway.DeleteCollaborator(
		ctx,
		request.RepoOwner,
		request.RepoName,
		username,
		request.AccessToken,
	)

	message := memberRemovedMessage
	if !removed {
		message = memberRemoveFailureMessage
	}

	return &projects_dto.RemoveMemberResponseDTO{
		Message:             message,
		CollaboratorRemoved: &removed,
	}, nil
}

// resolveEntities checks both ids, tolerating soft-deleted rows: memberships
// of deleted entities remain addressable, only unknown ids are NotFound.
func (s *MembershipService) resolveEntities(projectID, userID uuid.UUID) error {
	project, err := s.projectRepository.GetAnyProjectByID(projectID)
	if err != nil {
		return fmt.Errorf("failed to resolve project: %w", err)
	}
	if project == nil {
		return ErrProjectNotFound
	}

	user, err := s.userService.GetUserByAnyID(userID)
	if err != nil {
		return fmt.Errorf("failed to resolve user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	return nil
}
