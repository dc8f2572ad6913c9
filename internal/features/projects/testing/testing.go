package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"projecthub/internal/features/audit_logs"
	projects_dto "projecthub/internal/features/projects/dto"
	projects_models "projecthub/internal/features/projects/models"
	users_dto "projecthub/internal/features/users/dto"
	users_middleware "projecthub/internal/features/users/middleware"
	users_services "projecthub/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func CreateTestProject(name string, owner *users_dto.SignInResponseDTO, router *gin.Engine) *projects_models.Project {
	request := projects_dto.CreateProjectRequestDTO{
		ID:   uuid.New(),
		Name: name,
	}

	w := MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response projects_dto.ProjectResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &projects_models.Project{
		ID:   response.ID,
		Name: response.Name,
	}
}

func AddMemberToProject(
	project *projects_models.Project,
	member *users_dto.SignInResponseDTO,
	managerToken string,
	router *gin.Engine,
) {
	request := projects_dto.AddMemberRequestDTO{
		UserID: member.UserID,
	}

	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+managerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to add member to project via API: " + w.Body.String())
	}
}

func DeleteProjectViaAPI(project *projects_models.Project, deleterToken string, router *gin.Engine) {
	w := MakeAPIRequest(
		router,
		"DELETE",
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+deleterToken,
		nil,
	)

	if w.Code != http.StatusOK {
		panic("Failed to delete project via API: " + w.Body.String())
	}
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
