package directory_repositories

import (
	directory_dto "projecthub/internal/features/directory/dto"
	"projecthub/internal/storage"
)

// DirectoryRepository holds no state of its own; every call recomputes from
// the membership and artifact tables.
type DirectoryRepository struct{}

type roleCountRow struct {
	Role  string
	Count int64
}

func (r *DirectoryRepository) CountProjects() (active int64, inactive int64, err error) {
	type row struct {
		Active   int64
		Inactive int64
	}

	var result row
	err = storage.GetDb().Raw(`
		SELECT
			COUNT(*) FILTER (WHERE deleted = FALSE) AS active,
			COUNT(*) FILTER (WHERE deleted = TRUE) AS inactive
		FROM projects`).Scan(&result).Error

	return result.Active, result.Inactive, err
}

func (r *DirectoryRepository) CountActiveUsersByRole() (map[string]int64, error) {
	var rows []roleCountRow

	err := storage.GetDb().Raw(`
		SELECT role, COUNT(*) AS count
		FROM users
		WHERE deleted = FALSE
		GROUP BY role`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}

	return counts, nil
}

// GetProjectMemberCounts counts only non-deleted members of non-deleted
// projects. Memberships of soft-deleted users survive in storage but are
// filtered out here, on the read side.
func (r *DirectoryRepository) GetProjectMemberCounts() ([]*directory_dto.ProjectMemberCountDTO, error) {
	var counts = make([]*directory_dto.ProjectMemberCountDTO, 0)

	err := storage.GetDb().Raw(`
		SELECT
			p.id AS project_id,
			p.name AS project_name,
			COUNT(u.id) AS member_count
		FROM projects p
		LEFT JOIN project_memberships pm ON pm.project_id = p.id
		LEFT JOIN users u ON u.id = pm.user_id AND u.deleted = FALSE
		WHERE p.deleted = FALSE
		GROUP BY p.id, p.name
		ORDER BY p.name`).Scan(&counts).Error

	return counts, err
}

// GetProjectsMissingLinks lists active projects lacking a design-file
// reference, a shared-drive reference, or both.
func (r *DirectoryRepository) GetProjectsMissingLinks() ([]*directory_dto.ProjectLinkGapDTO, error) {
	var gaps = make([]*directory_dto.ProjectLinkGapDTO, 0)

	err := storage.GetDb().Raw(`
		SELECT
			id AS project_id,
			name AS project_name,
			(design_file_url IS NULL OR design_file_url = '') AS missing_design,
			(drive_url IS NULL OR drive_url = '') AS missing_drive
		FROM projects
		WHERE deleted = FALSE
			AND (design_file_url IS NULL OR design_file_url = ''
				OR drive_url IS NULL OR drive_url = '')
		ORDER BY name`).Scan(&gaps).Error

	return gaps, err
}

// GetUsersByProjectCount buckets active users by how many active projects
// they belong to: minCount/maxCount bound the bucket, maxCount < 0 means
// unbounded.
func (r *DirectoryRepository) GetUsersByProjectCount(
	minCount int,
	maxCount int,
) ([]*directory_dto.UserEngagementDTO, error) {
	var users = make([]*directory_dto.UserEngagementDTO, 0)

	sql := `
		SELECT
			u.id AS user_id,
			u.name,
			u.email,
			COUNT(p.id) AS project_count
		FROM users u
		LEFT JOIN project_memberships pm ON pm.user_id = u.id
		LEFT JOIN projects p ON p.id = pm.project_id AND p.deleted = FALSE
		WHERE u.deleted = FALSE
		GROUP BY u.id, u.name, u.email
		HAVING COUNT(p.id) >= ?`
	args := []any{minCount}

	if maxCount >= 0 {
		sql += " AND COUNT(p.id) <= ?"
		args = append(args, maxCount)
	}

	sql += " ORDER BY u.name"

	err := storage.GetDb().Raw(sql, args...).Scan(&users).Error

	return users, err
}
