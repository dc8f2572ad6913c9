package users_controllers

import (
	"net/http"
	"testing"

	users_dto "projecthub/internal/features/users/dto"
	users_enums "projecthub/internal/features/users/enums"
	users_testing "projecthub/internal/features/users/testing"
	test_utils "projecthub/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateUser_WhenAdminProvidesValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	request := users_dto.CreateUserRequestDTO{
		Name:     "New Member",
		Email:    "member-" + uuid.New().String() + "@example.com",
		Password: "memberpassword123",
		Role:     "user",
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users",
		"Bearer "+admin.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, request.Email, response.Email)
	assert.Equal(t, users_enums.UserRoleUser, response.Role)
	assert.False(t, response.Deleted)
}

func Test_CreateUser_WhenRoleUnrecognized_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	request := users_dto.CreateUserRequestDTO{
		Name:     "Bad Role",
		Email:    "badrole-" + uuid.New().String() + "@example.com",
		Password: "password12345",
		Role:     "wizard",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users",
		"Bearer "+admin.Token,
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "unrecognized role")
}

func Test_CreateUser_WhenCallerIsProjectManager_ReturnsForbidden(t *testing.T) {
	router := createUserTestRouter()

	manager := users_testing.CreateTestUser(users_enums.UserRoleProjectManager)

	request := users_dto.CreateUserRequestDTO{
		Name:     "Not Allowed",
		Email:    "blocked-" + uuid.New().String() + "@example.com",
		Password: "password12345",
		Role:     "user",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/users",
		"Bearer "+manager.Token,
		request,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "insufficient permissions to create users")
}

func Test_UpdateUser_WhenNameChanged_ProfileReflectsChange(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	target := users_testing.CreateTestUser(users_enums.UserRoleUser)

	newName := "Renamed User"
	request := users_dto.UpdateUserRequestDTO{Name: &newName}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/"+target.UserID.String(),
		"Bearer "+admin.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, newName, response.Name)
}

func Test_DeleteUser_WhenCalledTwice_ReportsDeletedThenAlreadyDeleted(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	target := users_testing.CreateTestUser(users_enums.UserRoleUser)

	var first users_dto.DeleteResponseDTO
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/users/" + target.UserID.String(),
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusOK,
	}, &first)

	assert.Equal(t, users_dto.DeleteStatusDeleted, first.Status)

	var second users_dto.DeleteResponseDTO
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/users/" + target.UserID.String(),
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusOK,
	}, &second)

	assert.Equal(t, users_dto.DeleteStatusAlreadyDeleted, second.Status)
}

func Test_DeleteUser_WhenUnknownID_ReportsNotFoundStatus(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	var response users_dto.DeleteResponseDTO
	test_utils.MakeRequestAndUnmarshal(t, router, test_utils.RequestOptions{
		Method:         "DELETE",
		URL:            "/api/v1/users/" + uuid.New().String(),
		AuthToken:      "Bearer " + admin.Token,
		ExpectedStatus: http.StatusOK,
	}, &response)

	assert.Equal(t, users_dto.DeleteStatusNotFound, response.Status)
}

func Test_DeleteUser_WhenDeletingSelf_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/users/"+admin.UserID.String(),
		"Bearer "+admin.Token,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "cannot delete your own account")
}

func Test_DeletedUser_WhenUsingOldToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	admin := users_testing.CreateTestUser(users_enums.UserRoleAdmin)
	target := users_testing.CreateTestUser(users_enums.UserRoleUser)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/users/"+target.UserID.String(),
		"Bearer "+admin.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(t, router, "/api/v1/users/me", "Bearer "+target.Token, http.StatusUnauthorized)
}

func Test_ManagementEndpoints_WhenTokenMissingOrInvalid_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	request := users_dto.CreateUserRequestDTO{
		Name:     "Nobody",
		Email:    "nobody@example.com",
		Password: "password12345",
		Role:     "user",
	}

	tokens := []string{"", "Bearer invalid-token"}
	for _, token := range tokens {
		test_utils.MakePostRequest(t, router, "/api/v1/users", token, request, http.StatusUnauthorized)
		test_utils.MakeGetRequest(t, router, "/api/v1/users", token, http.StatusUnauthorized)
		test_utils.MakeGetRequest(t, router, "/api/v1/users/"+uuid.New().String(), token, http.StatusUnauthorized)
		test_utils.MakeDeleteRequest(t, router, "/api/v1/users/"+uuid.New().String(), token, http.StatusUnauthorized)
	}
}
