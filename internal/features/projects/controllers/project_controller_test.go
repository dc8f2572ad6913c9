package projects_controllers

import (
	"fmt"
	"net/http"
	"testing"

	projects_dto "projecthub/internal/features/projects/dto"
	projects_testing "projecthub/internal/features/projects/testing"
	users_enums "projecthub/internal/features/users/enums"
	users_testing "projecthub/internal/features/users/testing"
	test_utils "projecthub/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateProject_WhenManagerAssignsID_ProjectCreatedWithThatID(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	projectID := uuid.New()
	request := projects_dto.CreateProjectRequestDTO{
		ID:   projectID,
		Name: fmt.Sprintf("Test Project %s", projectID.String()[:8]),
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+manager.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, projectID, response.ID)
	assert.Equal(t, request.Name, response.Name)
	assert.False(t, response.Deleted)
}

func Test_CreateProject_WhenIDAlreadyUsed_ReturnsConflict(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	projectID := uuid.New()
	request := projects_dto.CreateProjectRequestDTO{
		ID:   projectID,
		Name: "Original project",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+manager.Token,
		request,
		http.StatusOK,
	)

	request.Name = "Reused id project"
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+manager.Token,
		request,
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "project with this id already exists")
}

func Test_CreateProject_WhenUserIsRegularUser_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	user := users_testing.CreateTestUser(users_enums.UserRoleUser)

	request := projects_dto.CreateProjectRequestDTO{
		ID:   uuid.New(),
		Name: "Forbidden project",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+user.Token,
		request,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "insufficient permissions to create projects")
}

func Test_GetProject_WhenProjectExists_ReturnsProject(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	project := projects_testing.CreateTestProject("Readable project", manager, router)

	var response projects_dto.ProjectResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+manager.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, project.ID, response.ID)
	assert.Equal(t, "Readable project", response.Name)
}

func Test_GetProject_WhenUnknownID_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	user := users_testing.CreateTestUser(users_enums.UserRoleUser)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+uuid.New().String(),
		"Bearer "+user.Token,
		http.StatusNotFound,
	)

	assert.Contains(t, string(resp.Body), "project not found")
}

func Test_UpdateProject_WhenLinksProvided_LinksStored(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	project := projects_testing.CreateTestProject("Linkable project", manager, router)

	designURL := "https://design.example.com/file/abc"
	driveURL := "https://drive.example.com/folder/xyz"
	request := projects_dto.UpdateProjectRequestDTO{
		DesignFileURL: &designURL,
		DriveURL:      &driveURL,
	}

	var response projects_dto.ProjectResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+manager.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.NotNil(t, response.DesignFileURL)
	assert.Equal(t, designURL, *response.DesignFileURL)
	assert.NotNil(t, response.DriveURL)
	assert.Equal(t, driveURL, *response.DriveURL)
}

func Test_DeleteProject_WhenCalledTwice_ReportsDeletedThenAlreadyDeleted(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	project := projects_testing.CreateTestProject("Doomed project", manager, router)

	var first projects_dto.DeleteResponseDTO
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/projects/" + project.ID.String(),
		AuthToken:      "Bearer " + manager.Token,
		ExpectedStatus: http.StatusOK,
	}, &first)

	assert.Equal(t, projects_dto.DeleteStatusDeleted, first.Status)

	var second projects_dto.DeleteResponseDTO
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/projects/" + project.ID.String(),
		AuthToken:      "Bearer " + manager.Token,
		ExpectedStatus: http.StatusOK,
	}, &second)

	assert.Equal(t, projects_dto.DeleteStatusAlreadyDeleted, second.Status)
}

func Test_DeleteProject_WhenUnknownID_ReportsNotFoundStatus(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	var response projects_dto.DeleteResponseDTO
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/projects/" + uuid.New().String(),
		AuthToken:      "Bearer " + manager.Token,
		ExpectedStatus: http.StatusOK,
	}, &response)

	assert.Equal(t, projects_dto.DeleteStatusNotFound, response.Status)
}

func Test_DeleteProject_WhenDeleted_ExcludedFromActiveListing(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	project := projects_testing.CreateTestProject("Vanishing project", manager, router)

	projects_testing.DeleteProjectViaAPI(project, manager.Token, router)

	var response projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+manager.Token,
		http.StatusOK,
		&response,
	)

	for _, listed := range response.Projects {
		assert.NotEqual(t, project.ID, listed.ID)
	}
}

func Test_CreateRepository_WhenProjectDeleted_RepositoryStoredUnattached(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	project := projects_testing.CreateTestProject("Repo host project", manager, router)
	projects_testing.DeleteProjectViaAPI(project, manager.Token, router)

	request := projects_dto.CreateRepositoryRequestDTO{
		Name:      fmt.Sprintf("orphan-repo-%s", uuid.New().String()[:8]),
		ProjectID: &project.ID,
	}

	var response projects_dto.RepositoryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/repositories",
		"Bearer "+manager.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Nil(t, response.ProjectID)

	var unattached projects_dto.ListRepositoriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/repositories/unattached",
		"Bearer "+manager.Token,
		http.StatusOK,
		&unattached,
	)

	found := false
	for _, repo := range unattached.Repositories {
		if repo.ID == response.ID {
			found = true
		}
	}
	assert.True(t, found, "repository should appear in the unattached listing")
}

func Test_ProjectEndpoints_WhenTokenMissingOrInvalid_ReturnsUnauthorized(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	request := projects_dto.CreateProjectRequestDTO{
		ID:   uuid.New(),
		Name: "Unauthorized project",
	}

	tokens := []string{"", "Bearer invalid-token"}
	for _, token := range tokens {
		test_utils.MakePostRequest(t, router, "/api/v1/projects", token, request, http.StatusUnauthorized)
		test_utils.MakeGetRequest(t, router, "/api/v1/projects", token, http.StatusUnauthorized)
		test_utils.MakeGetRequest(t, router, "/api/v1/projects/"+uuid.New().String(), token, http.StatusUnauthorized)
		test_utils.MakeDeleteRequest(t, router, "/api/v1/projects/"+uuid.New().String(), token, http.StatusUnauthorized)
	}
}
