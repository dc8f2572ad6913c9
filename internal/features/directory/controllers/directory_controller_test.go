package directory_controllers

import (
	"net/http"
	"testing"

	directory_dto "projecthub/internal/features/directory/dto"
	projects_controllers "projecthub/internal/features/projects/controllers"
	projects_dto "projecthub/internal/features/projects/dto"
	projects_testing "projecthub/internal/features/projects/testing"
	users_enums "projecthub/internal/features/users/enums"
	users_testing "projecthub/internal/features/users/testing"
	test_utils "projecthub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createDirectoryTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		GetDirectoryController(),
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
	)
}

func fetchSummary(t *testing.T, router *gin.Engine, token string) *directory_dto.DirectorySummaryDTO {
	t.Helper()

	var summary directory_dto.DirectorySummaryDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/directory/summary",
		"Bearer "+token,
		http.StatusOK,
		&summary,
	)

	return &summary
}

func Test_DirectorySummary_ActivePlusInactiveEqualsTotal(t *testing.T) {
	router := createDirectoryTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	before := fetchSummary(t, router, manager.Token)
	assert.Equal(t, before.TotalProjects, before.ActiveProjects+before.InactiveProjects)

	first := projects_testing.CreateTestProject("Summary project one", manager, router)
	projects_testing.CreateTestProject("Summary project two", manager, router)
	projects_testing.CreateTestProject("Summary project three", manager, router)
	projects_testing.DeleteProjectViaAPI(first, manager.Token, router)

	after := fetchSummary(t, router, manager.Token)

	assert.Equal(t, after.TotalProjects, after.ActiveProjects+after.InactiveProjects)
	assert.Equal(t, before.TotalProjects+3, after.TotalProjects)
	assert.Equal(t, before.ActiveProjects+2, after.ActiveProjects)
	assert.Equal(t, before.InactiveProjects+1, after.InactiveProjects)
}

func Test_DirectorySummary_CountsUsersByRole(t *testing.T) {
	router := createDirectoryTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	before := fetchSummary(t, router, manager.Token)

	users_testing.CreateTestUser(users_enums.UserRoleUser)
	users_testing.CreateTestUser(users_enums.UserRoleUser)
	users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	after := fetchSummary(t, router, manager.Token)

	assert.Equal(t, before.UsersByRole["USER"]+2, after.UsersByRole["USER"])
	assert.Equal(t, before.UsersByRole["ADMIN"]+1, after.UsersByRole["ADMIN"])
	assert.Equal(t, before.ActiveUsers+3, after.ActiveUsers)
}

func Test_ProjectMemberCounts_CountsOnlyActiveMembers(t *testing.T) {
	router := createDirectoryTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	memberOne := users_testing.CreateTestUser(users_enums.UserRoleUser)
	memberTwo := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject("Counted project", manager, router)

	projects_testing.AddMemberToProject(project, memberOne, manager.Token, router)
	projects_testing.AddMemberToProject(project, memberTwo, manager.Token, router)

	var counts directory_dto.ListProjectMemberCountsDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/directory/projects/member-counts",
		"Bearer "+manager.Token,
		http.StatusOK,
		&counts,
	)

	var memberCount int64 = -1
	for _, row := range counts.Projects {
		if row.ProjectID == project.ID {
			memberCount = row.MemberCount
		}
	}

	assert.Equal(t, int64(2), memberCount)
}

func Test_ProjectsMissingLinks_ListsProjectsWithoutArtifacts(t *testing.T) {
	router := createDirectoryTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	bare := projects_testing.CreateTestProject("Bare project", manager, router)
	linked := projects_testing.CreateTestProject("Linked project", manager, router)

	designURL := "https://design.example.com/file/1"
	driveURL := "https://drive.example.com/folder/1"
	update := projects_dto.UpdateProjectRequestDTO{
		DesignFileURL: &designURL,
		DriveURL:      &driveURL,
	}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/projects/"+linked.ID.String(),
		"Bearer "+manager.Token,
		update,
		http.StatusOK,
	)

	var gaps directory_dto.ListProjectLinkGapsDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/directory/projects/missing-links",
		"Bearer "+manager.Token,
		http.StatusOK,
		&gaps,
	)

	foundBare := false
	for _, gap := range gaps.Projects {
		assert.NotEqual(t, linked.ID, gap.ProjectID)
		if gap.ProjectID == bare.ID {
			foundBare = true
			assert.True(t, gap.MissingDesign)
			assert.True(t, gap.MissingDrive)
		}
	}

	assert.True(t, foundBare, "project without links should be listed")
}

func Test_UserEngagement_BucketsUsersByActiveProjectCount(t *testing.T) {
	router := createDirectoryTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	idle := users_testing.CreateTestUser(users_enums.UserRoleUser)
	busy := users_testing.CreateTestUser(users_enums.UserRoleUser)

	first := projects_testing.CreateTestProject("Engagement one", manager, router)
	second := projects_testing.CreateTestProject("Engagement two", manager, router)

	projects_testing.AddMemberToProject(first, busy, manager.Token, router)
	projects_testing.AddMemberToProject(second, busy, manager.Token, router)

	var none directory_dto.ListUserEngagementDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/directory/users/engagement?bucket=none",
		"Bearer "+manager.Token,
		http.StatusOK,
		&none,
	)

	var multiple directory_dto.ListUserEngagementDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/directory/users/engagement?bucket=multiple",
		"Bearer "+manager.Token,
		http.StatusOK,
		&multiple,
	)

	idleFound, busyFound := false, false
	for _, user := range none.Users {
		assert.NotEqual(t, busy.UserID, user.UserID)
		if user.UserID == idle.UserID {
			idleFound = true
			assert.Equal(t, int64(0), user.ProjectCount)
		}
	}
	for _, user := range multiple.Users {
		assert.NotEqual(t, idle.UserID, user.UserID)
		if user.UserID == busy.UserID {
			busyFound = true
			assert.Equal(t, int64(2), user.ProjectCount)
		}
	}

	assert.True(t, idleFound, "user without projects should be in the none bucket")
	assert.True(t, busyFound, "user on two projects should be in the multiple bucket")
}

func Test_UserEngagement_WhenBucketUnknown_ReturnsBadRequest(t *testing.T) {
	router := createDirectoryTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/directory/users/engagement?bucket=everything",
		"Bearer "+manager.Token,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "unknown membership bucket")
}

func Test_DirectoryEndpoints_WhenTokenMissingOrInvalid_ReturnsUnauthorized(t *testing.T) {
	router := createDirectoryTestRouter()

	tokens := []string{"", "Bearer invalid-token"}
	for _, token := range tokens {
		test_utils.MakeGetRequest(t, router, "/api/v1/directory/summary", token, http.StatusUnauthorized)
		test_utils.MakeGetRequest(t, router, "/api/v1/directory/projects/member-counts", token, http.StatusUnauthorized)
		test_utils.MakeGetRequest(
			t,
			router,
			"/api/v1/directory/users/engagement?bucket=none",
			token,
			http.StatusUnauthorized,
		)
	}
}
