package access_requests_controllers

import (
	"net/http"
	"testing"

	access_requests_dto "projecthub/internal/features/access_requests/dto"
	projects_controllers "projecthub/internal/features/projects/controllers"
	projects_models "projecthub/internal/features/projects/models"
	projects_testing "projecthub/internal/features/projects/testing"
	users_dto "projecthub/internal/features/users/dto"
	users_enums "projecthub/internal/features/users/enums"
	users_testing "projecthub/internal/features/users/testing"
	test_utils "projecthub/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createRequestFixture(
	t *testing.T,
	router *gin.Engine,
	pmName string,
	manager *users_dto.SignInResponseDTO,
	proposed *users_dto.SignInResponseDTO,
	project *projects_models.Project,
) *access_requests_dto.AccessRequestResponseDTO {
	t.Helper()

	request := access_requests_dto.CreateAccessRequestDTO{
		PmName:      pmName,
		UserID:      proposed.UserID,
		ProjectID:   project.ID,
		Description: "Needs access",
	}

	var response access_requests_dto.AccessRequestResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests",
		"Bearer "+manager.Token,
		request,
		http.StatusOK,
		&response,
	)

	return &response
}

func decideRequest(
	t *testing.T,
	router *gin.Engine,
	requestID uuid.UUID,
	allowed bool,
	manager *users_dto.SignInResponseDTO,
) *access_requests_dto.ListAccessRequestsResponseDTO {
	t.Helper()

	decision := access_requests_dto.DecideAccessRequestDTO{Allowed: &allowed}

	var response access_requests_dto.ListAccessRequestsResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/"+requestID.String()+"/decision",
		"Bearer "+manager.Token,
		decision,
		http.StatusOK,
		&response,
	)

	return &response
}

func Test_CreateAccessRequest_WhenInputsValid_RequestCreatedPending(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject("Access project", manager, router)

	response := createRequestFixture(t, router, "pm-"+uuid.New().String()[:8], manager, proposed, project)

	assert.Equal(t, proposed.UserID, response.UserID)
	assert.Equal(t, project.ID, response.ProjectID)
	assert.False(t, response.Allowed)
	assert.False(t, response.Updated)
	assert.False(t, response.PmNotified)
}

func Test_CreateAccessRequest_WhenDuplicatePending_BothRequestsAccumulate(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject("Duplicate requests project", manager, router)

	pmName := "pm-" + uuid.New().String()[:8]
	first := createRequestFixture(t, router, pmName, manager, proposed, project)
	second := createRequestFixture(t, router, pmName, manager, proposed, project)

	assert.NotEqual(t, first.ID, second.ID)

	var all access_requests_dto.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/notifications?pmName="+pmName,
		"Bearer "+manager.Token,
		http.StatusOK,
		&all,
	)

	assert.Len(t, all.Notifications, 2)
}

func Test_CreateAccessRequest_WhenProjectUnknown_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetAccessRequestController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUser(users_enums.UserRoleUser)

	request := access_requests_dto.CreateAccessRequestDTO{
		PmName:    "pm-" + uuid.New().String()[:8],
		UserID:    proposed.UserID,
		ProjectID: uuid.New(),
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/access-requests",
		"Bearer "+manager.Token,
		request,
		http.StatusNotFound,
	)

	assert.Contains(t, string(resp.Body), "referenced project not found")
}

func Test_DecideAccessRequest_WhenAllowed_RenderedAsGranted(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUserWithName(users_enums.UserRoleUser, "Alice")
	project := projects_testing.CreateTestProject("Granted project", manager, router)

	pmName := "pm-" + uuid.New().String()[:8]
	created := createRequestFixture(t, router, pmName, manager, proposed, project)
	decideRequest(t, router, created.ID, true, manager)

	var unread access_requests_dto.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/notifications/unread?pmName="+pmName,
		"Bearer "+manager.Token,
		http.StatusOK,
		&unread,
	)

	assert.Len(t, unread.Notifications, 1)
	assert.Equal(t, "Request for adding Alice has been granted", unread.Notifications[0].Message)
}

func Test_DecideAccessRequest_WhenDenied_RenderedAsDenied(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUserWithName(users_enums.UserRoleUser, "Bob")
	project := projects_testing.CreateTestProject("Denied project", manager, router)

	pmName := "pm-" + uuid.New().String()[:8]
	created := createRequestFixture(t, router, pmName, manager, proposed, project)
	decideRequest(t, router, created.ID, false, manager)

	var unread access_requests_dto.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/notifications/unread?pmName="+pmName,
		"Bearer "+manager.Token,
		http.StatusOK,
		&unread,
	)

	assert.Len(t, unread.Notifications, 1)
	assert.Equal(t, "Request for adding Bob has been denied", unread.Notifications[0].Message)
}

func Test_DecideAccessRequest_WhenIDUnknown_ReturnsUnchangedActiveList(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject("Unchanged project", manager, router)

	createRequestFixture(t, router, "pm-"+uuid.New().String()[:8], manager, proposed, project)

	var before access_requests_dto.ListAccessRequestsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests",
		"Bearer "+manager.Token,
		http.StatusOK,
		&before,
	)

	after := decideRequest(t, router, uuid.New(), true, manager)

	assert.Equal(t, len(before.Requests), len(after.Requests))
	for i := range before.Requests {
		assert.Equal(t, before.Requests[i].ID, after.Requests[i].ID)
		assert.Equal(t, before.Requests[i].Updated, after.Requests[i].Updated)
	}
}

func Test_DecideAccessRequest_WhenUserIsRegularUser_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetAccessRequestController())

	regular := users_testing.CreateTestUser(users_enums.UserRoleUser)

	allowed := true
	decision := access_requests_dto.DecideAccessRequestDTO{Allowed: &allowed}

	resp := test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/access-requests/"+uuid.New().String()+"/decision",
		"Bearer "+regular.Token,
		decision,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "insufficient permissions to decide access requests")
}

func Test_MarkNotified_WhenAcknowledged_ExcludedFromUnreadIncludedInAll(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUserWithName(users_enums.UserRoleUser, "Carol")
	project := projects_testing.CreateTestProject("Acknowledged project", manager, router)

	pmName := "pm-" + uuid.New().String()[:8]
	created := createRequestFixture(t, router, pmName, manager, proposed, project)
	decideRequest(t, router, created.ID, true, manager)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/access-requests/"+created.ID.String()+"/notified",
		"Bearer "+manager.Token,
		nil,
		http.StatusOK,
	)

	var unread access_requests_dto.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/notifications/unread?pmName="+pmName,
		"Bearer "+manager.Token,
		http.StatusOK,
		&unread,
	)

	assert.Empty(t, unread.Notifications)

	var all access_requests_dto.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/notifications?pmName="+pmName,
		"Bearer "+manager.Token,
		http.StatusOK,
		&all,
	)

	assert.Len(t, all.Notifications, 1)
	assert.Equal(t, "Request for adding Carol has been granted", all.Notifications[0].Message)
}

func Test_MarkNotified_WhenIDUnknown_SucceedsAsNoOp(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetAccessRequestController())

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/access-requests/"+uuid.New().String()+"/notified",
		"Bearer "+manager.Token,
		nil,
		http.StatusOK,
	)
}

func Test_ClearAllAccessRequests_WhenCleared_PMQueuesEmpty(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetAccessRequestController(),
		projects_controllers.GetProjectController(),
	)

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)
	proposed := users_testing.CreateTestUser(users_enums.UserRoleUser)
	project := projects_testing.CreateTestProject("Cleared project", manager, router)

	pmName := "pm-" + uuid.New().String()[:8]
	created := createRequestFixture(t, router, pmName, manager, proposed, project)
	decideRequest(t, router, created.ID, true, manager)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/access-requests",
		"Bearer "+manager.Token,
		http.StatusOK,
	)

	var unread access_requests_dto.ListNotificationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests/notifications/unread?pmName="+pmName,
		"Bearer "+manager.Token,
		http.StatusOK,
		&unread,
	)

	assert.Empty(t, unread.Notifications)

	var active access_requests_dto.ListAccessRequestsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/access-requests",
		"Bearer "+manager.Token,
		http.StatusOK,
		&active,
	)

	assert.Empty(t, active.Requests)
}

func Test_AccessRequestEndpoints_WhenTokenMissingOrInvalid_ReturnsUnauthorized(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetAccessRequestController())

	request := access_requests_dto.CreateAccessRequestDTO{
		PmName:    "pm",
		UserID:    uuid.New(),
		ProjectID: uuid.New(),
	}

	tokens := []string{"", "Bearer invalid-token"}
	for _, token := range tokens {
		test_utils.MakePostRequest(t, router, "/api/v1/access-requests", token, request, http.StatusUnauthorized)
		test_utils.MakeGetRequest(t, router, "/api/v1/access-requests", token, http.StatusUnauthorized)
		test_utils.MakeGetRequest(
			t,
			router,
			"/api/v1/access-requests/notifications/unread?pmName=pm",
			token,
			http.StatusUnauthorized,
		)
		test_utils.MakeDeleteRequest(t, router, "/api/v1/access-requests", token, http.StatusUnauthorized)
	}
}
