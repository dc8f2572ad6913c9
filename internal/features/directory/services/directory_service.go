package directory_services

import (
	"errors"
	"fmt"

	directory_dto "projecthub/internal/features/directory/dto"
	directory_repositories "projecthub/internal/features/directory/repositories"
)

// Membership buckets accepted by GetUserEngagement.
const (
	EngagementNone     = "none"
	EngagementSingle   = "single"
	EngagementMultiple = "multiple"
)

type DirectoryService struct {
	directoryRepository *directory_repositories.DirectoryRepository
}

func (s *DirectoryService) GetSummary() (*directory_dto.DirectorySummaryDTO, error) {
	active, inactive, err := s.directoryRepository.CountProjects()
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	usersByRole, err := s.directoryRepository.CountActiveUsersByRole()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var activeUsers int64
	for _, count := range usersByRole {
		activeUsers += count
	}

	return &directory_dto.DirectorySummaryDTO{
		ActiveProjects:   active,
		InactiveProjects: inactive,
		TotalProjects:    active + inactive,
		ActiveUsers:      activeUsers,
		UsersByRole:      usersByRole,
	}, nil
}

func (s *DirectoryService) GetProjectMemberCounts() (*directory_dto.ListProjectMemberCountsDTO, error) {
	counts, err := s.directoryRepository.GetProjectMemberCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	countsList := make([]directory_dto.ProjectMemberCountDTO, len(counts))
	for i, count := range counts {
		countsList[i] = *count
	}

	return &directory_dto.ListProjectMemberCountsDTO{Projects: countsList}, nil
}

func (s *DirectoryService) GetProjectsMissingLinks() (*directory_dto.ListProjectLinkGapsDTO, error) {
	gaps, err := s.directoryRepository.GetProjectsMissingLinks()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects missing links: %w", err)
	}

	gapsList := make([]directory_dto.ProjectLinkGapDTO, len(gaps))
	for i, gap := range gaps {
		gapsList[i] = *gap
	}

	return &directory_dto.ListProjectLinkGapsDTO{Projects: gapsList}, nil
}

// GetUserEngagement lists active users bucketed by how many active projects
// they belong to.
func (s *DirectoryService) GetUserEngagement(bucket string) (*directory_dto.ListUserEngagementDTO, error) {
	var minCount, maxCount int

	switch bucket {
	case EngagementNone:
		minCount, maxCount = 0, 0
	case EngagementSingle:
		minCount, maxCount = 1, 1
	case EngagementMultiple:
		minCount, maxCount = 2, -1
	default:
		return nil, errors.New("unknown membership bucket")
	}

	users, err := s.directoryRepository.GetUsersByProjectCount(minCount, maxCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	usersList := make([]directory_dto.UserEngagementDTO, len(users))
	for i, user := range users {
		usersList[i] = *user
	}

	return &directory_dto.ListUserEngagementDTO{Users: usersList}, nil
}
