package projects_controllers

import (
	"errors"
	"net/http"

	projects_dto "projecthub/internal/features/projects/dto"
	projects_services "projecthub/internal/features/projects/services"
	users_enums "projecthub/internal/features/users/enums"
	users_middleware "projecthub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *projects_services.MembershipService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:id/members", c.GetMembers)
	router.POST("/projects/:id/members", c.AddMember)
	router.DELETE("/projects/:id/members/:userId", c.RemoveMember)
	router.POST("/projects/:id/members/:userId/remove-collaborator", c.RemoveMemberAndCollaborator)
}

// GetMembers
// @Summary List project members
// @Description List members of a project, optionally filtered by role
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param role query string false "Role filter"
// @Success 200 {object} projects_dto.GetMembersResponseDTO
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /projects/{id}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
	projectID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var roleFilter *users_enums.UserRole
	if roleParam := ctx.Query("role"); roleParam != "" {
		role, err := users_enums.ParseUserRole(roleParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		roleFilter = &role
	}

	response, err := c.membershipService.GetMembers(projectID, roleFilter)
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

// AddMember
// @Summary Add a user to a project
// @Description Adds the membership pair; adding an existing member is a conflict
// @Tags memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body projects_dto.AddMemberRequestDTO true "Member data"
// @Success 200 {object} projects_dto.GetMembersResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Failure 409
// @Router /projects/{id}/members [post]
func (c *MembershipController) AddMember(ctx *gin.Context) {
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

	var request projects_dto.AddMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.membershipService.AddMember(projectID, request.UserID, user)
	if err != nil {
		switch {
		case errors.Is(err, projects_services.ErrAlreadyMember):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, projects_services.ErrProjectNotFound),
			errors.Is(err, projects_services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err.Error() == "insufficient permissions to manage members":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RemoveMember
// @Summary Remove a user from a project
// @Description Removing a non-member succeeds; only unknown ids are not found
// @Tags memberships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param userId path string true "User ID"
// @Success 200 {object} projects_dto.RemoveMemberResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{id}/members/{userId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
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

	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	response, err := c.membershipService.RemoveMember(projectID, userID, user)
	if err != nil {
		switch {
		case errors.Is(err, projects_services.ErrProjectNotFound),
			errors.Is(err, projects_services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err.Error() == "insufficient permissions to remove members":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RemoveMemberAndCollaborator
// @Summary Remove a member and revoke repository access
// @Description Removes the membership locally, then attempts to remove the collaborator on the repository host. The response message reflects whether the external revocation succeeded.
// @Tags memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param userId path string true "User ID"
// @Param request body projects_dto.RemoveMemberWithRepoRequestDTO true "Repository coordinates"
// @Success 200 {object} projects_dto.RemoveMemberResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /projects/{id}/members/{userId}/remove-collaborator [post]
func (c *MembershipController) RemoveMemberAndCollaborator(ctx *gin.Context) {
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

	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request projects_dto.RemoveMemberWithRepoRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.membershipService.RemoveMemberAndCollaborator(
		ctx.Request.Context(),
		projectID,
		userID,
		&request,
		user,
	)
	if err != nil {
		switch {
		case errors.Is(err, projects_services.ErrProjectNotFound),
			errors.Is(err, projects_services.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err.Error() == "insufficient permissions to remove members":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, response)
}
