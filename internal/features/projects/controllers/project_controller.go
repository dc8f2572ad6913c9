package projects_controllers

import (
	"errors"
	"net/http"

	projects_dto "projecthub/internal/features/projects/dto"
	projects_services "projecthub/internal/features/projects/services"
	users_middleware "projecthub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects", c.CreateProject)
	router.GET("/projects", c.ListProjects)
	router.GET("/projects/me", c.ListMyProjects)
	router.GET("/projects/:id", c.GetProject)
	router.PUT("/projects/:id", c.UpdateProject)
	router.DELETE("/projects/:id", c.DeleteProject)

	router.POST("/repositories", c.CreateRepository)
	router.GET("/repositories/unattached", c.ListUnattachedRepositories)
	router.GET("/projects/:id/repositories", c.ListProjectRepositories)
}

// CreateProject
// @Summary Create a project
// @Description Create a project under a caller-assigned ID
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 409
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		if errors.Is(err, projects_services.ErrProjectIDConflict) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "insufficient permissions to create projects" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListProjects
// @Summary List active projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 401
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	response, err := c.projectService.GetProjects()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyProjects
// @Summary List projects the current user belongs to
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 401
// @Router /projects/me [get]
func (c *ProjectController) ListMyProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.projectService.GetUserProjects(user.ID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 401
// @Failure 404
// @Router /projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.projectService.GetProject(projectID)
	if err != nil {
		if errors.Is(err, projects_services.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateProject
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body projects_dto.UpdateProjectRequestDTO true "Fields to update"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.projectService.UpdateProject(projectID, &request, user)
	if err != nil {
		if errors.Is(err, projects_services.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "insufficient permissions to update project" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteProject
// @Summary Soft-delete a project
// @Description Flags the project as deleted; responds with a three-way status
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.DeleteResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /projects/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	status, err := c.projectService.DeleteProject(projectID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to delete project" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.DeleteResponseDTO{Status: status})
}

// CreateRepository
// @Summary Link an external repository
// @Tags repositories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateRepositoryRequestDTO true "Repository data"
// @Success 200 {object} projects_dto.RepositoryResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /repositories [post]
func (c *ProjectController) CreateRepository(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateRepositoryRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.projectService.CreateRepository(&request, user)
	if err != nil {
		if errors.Is(err, projects_services.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if err.Error() == "insufficient permissions to manage repositories" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListProjectRepositories
// @Summary List repositories linked to a project
// @Tags repositories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} projects_dto.ListRepositoriesResponseDTO
// @Failure 401
// @Router /projects/{id}/repositories [get]
func (c *ProjectController) ListProjectRepositories(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.projectService.GetProjectRepositories(projectID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListUnattachedRepositories
// @Summary List repositories not attached to any project
// @Tags repositories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.ListRepositoriesResponseDTO
// @Failure 401
// @Router /repositories/unattached [get]
func (c *ProjectController) ListUnattachedRepositories(ctx *gin.Context) {
	response, err := c.projectService.GetUnattachedRepositories()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
