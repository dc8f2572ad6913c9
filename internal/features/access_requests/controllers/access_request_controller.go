package access_requests_controllers

import (
	"errors"
	"net/http"

	access_requests_dto "projecthub/internal/features/access_requests/dto"
	access_requests_services "projecthub/internal/features/access_requests/services"
	users_middleware "projecthub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccessRequestController struct {
	accessRequestService *access_requests_services.AccessRequestService
}

func (c *AccessRequestController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/access-requests", c.CreateRequest)
	router.GET("/access-requests", c.ListActiveRequests)
	router.PUT("/access-requests/:id/decision", c.DecideRequest)
	router.PUT("/access-requests/:id/notified", c.MarkNotified)
	router.GET("/access-requests/notifications/unread", c.GetUnreadNotifications)
	router.GET("/access-requests/notifications", c.GetAllNotifications)
	router.DELETE("/access-requests", c.ClearAll)
}

// CreateRequest
// @Summary Create an access request
// @Description Propose adding a user to a project, pending PM decision
// @Tags access-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body access_requests_dto.CreateAccessRequestDTO true "Request data"
// @Success 200 {object} access_requests_dto.AccessRequestResponseDTO
// @Failure 400
// @Failure 401
// @Failure 404
// @Router /access-requests [post]
func (c *AccessRequestController) CreateRequest(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request access_requests_dto.CreateAccessRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.accessRequestService.CreateRequest(&request, user)
	if err != nil {
		if errors.Is(err, access_requests_services.ErrAccessRequestUserNotFound) ||
			errors.Is(err, access_requests_services.ErrAccessRequestProjectNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ListActiveRequests
// @Summary List active access requests
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} access_requests_dto.ListAccessRequestsResponseDTO
// @Failure 401
// @Router /access-requests [get]
func (c *AccessRequestController) ListActiveRequests(ctx *gin.Context) {
	response, err := c.accessRequestService.GetActiveRequests()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DecideRequest
// @Summary Decide an access request
// @Description Record the PM's allow/deny decision. Unknown ids are a no-op and return the unchanged active list.
// @Tags access-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body access_requests_dto.DecideAccessRequestDTO true "Decision"
// @Success 200 {object} access_requests_dto.ListAccessRequestsResponseDTO
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /access-requests/{id}/decision [put]
func (c *AccessRequestController) DecideRequest(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var request access_requests_dto.DecideAccessRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.accessRequestService.Decide(requestID, *request.Allowed, user)
	if err != nil {
		if err.Error() == "insufficient permissions to decide access requests" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// MarkNotified
// @Summary Acknowledge a decision notification
// @Description Marks the decision as seen by the PM. Unknown ids are a no-op.
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200
// @Failure 400
// @Failure 401
// @Router /access-requests/{id}/notified [put]
func (c *AccessRequestController) MarkNotified(ctx *gin.Context) {
	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := c.accessRequestService.MarkNotified(requestID); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Notification acknowledged"})
}

// GetUnreadNotifications
// @Summary Unread decision notifications for a PM
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Param pmName query string true "PM display name"
// @Success 200 {object} access_requests_dto.ListNotificationsResponseDTO
// @Failure 400
// @Failure 401
// @Router /access-requests/notifications/unread [get]
func (c *AccessRequestController) GetUnreadNotifications(ctx *gin.Context) {
	pmName := ctx.Query("pmName")
	if pmName == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "pmName is required"})
		return
	}

	response, err := c.accessRequestService.GetUnreadForPM(pmName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAllNotifications
// @Summary All decision notifications for a PM
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Param pmName query string true "PM display name"
// @Success 200 {object} access_requests_dto.ListNotificationsResponseDTO
// @Failure 400
// @Failure 401
// @Router /access-requests/notifications [get]
func (c *AccessRequestController) GetAllNotifications(ctx *gin.Context) {
	pmName := ctx.Query("pmName")
	if pmName == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "pmName is required"})
		return
	}

	response, err := c.accessRequestService.GetAllForPM(pmName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ClearAll
// @Summary Clear all access requests
// @Description Archives every request; stored rows are kept with a cleared flag
// @Tags access-requests
// @Produce json
// @Security BearerAuth
// @Success 200
// @Failure 401
// @Failure 403
// @Router /access-requests [delete]
func (c *AccessRequestController) ClearAll(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := c.accessRequestService.ClearAll(user); err != nil {
		if err.Error() == "insufficient permissions to clear access requests" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Access requests cleared"})
}
