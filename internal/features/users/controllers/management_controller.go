package users_controllers

import (
	"net/http"

	users_dto "projecthub/internal/features/users/dto"
	users_middleware "projecthub/internal/features/users/middleware"
	users_services "projecthub/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ManagementController struct {
	managementService *users_services.UserManagementService
}

func (c *ManagementController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/users", c.CreateUser)
	router.GET("/users", c.ListUsers)
	router.GET("/users/:id", c.GetUser)
	router.PUT("/users/:id", c.UpdateUser)
	router.DELETE("/users/:id", c.DeleteUser)
}

// CreateUser
// @Summary Create a user (admin only)
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.CreateUserRequestDTO true "User data"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /users [post]
func (c *ManagementController) CreateUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.CreateUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.managementService.CreateUser(&request, user)
	if err != nil {
		if err.Error() == "insufficient permissions to create users" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListUsers
// @Summary List users (admin only)
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} users_dto.ListUsersResponseDTO
// @Failure 401
// @Failure 403
// @Router /users [get]
func (c *ManagementController) ListUsers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.ListUsersRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.managementService.GetUsers(user, &request)
	if err != nil {
		if err.Error() == "insufficient permissions to list users" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUser
// @Summary Get a user profile
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /users/{id} [get]
func (c *ManagementController) GetUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	response, err := c.managementService.GetUserProfile(userID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view user profile" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateUser
// @Summary Update a user
// @Tags user-management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body users_dto.UpdateUserRequestDTO true "Fields to update"
// @Success 200 {object} users_dto.UserProfileResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /users/{id} [put]
func (c *ManagementController) UpdateUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request users_dto.UpdateUserRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.managementService.UpdateUser(userID, &request, user)
	if err != nil {
		if err.Error() == "insufficient permissions to update users" ||
			err.Error() == "insufficient permissions to change user roles" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteUser
// @Summary Soft-delete a user (admin only)
// @Description Flags the user as deleted; responds with a three-way status
// @Tags user-management
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} users_dto.DeleteResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /users/{id} [delete]
func (c *ManagementController) DeleteUser(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	status, err := c.managementService.DeleteUser(userID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to delete users" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.DeleteResponseDTO{Status: status})
}
