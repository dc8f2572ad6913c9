package directory_controllers

import (
	"net/http"

	directory_services "projecthub/internal/features/directory/services"

	"github.com/gin-gonic/gin"
)

type DirectoryController struct {
	directoryService *directory_services.DirectoryService
}

func (c *DirectoryController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/directory/summary", c.GetSummary)
	router.GET("/directory/projects/member-counts", c.GetProjectMemberCounts)
	router.GET("/directory/projects/missing-links", c.GetProjectsMissingLinks)
	router.GET("/directory/users/engagement", c.GetUserEngagement)
}

// GetSummary
// @Summary Directory summary counts
// @Description Project counts by active/inactive status and user counts by role
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} directory_dto.DirectorySummaryDTO
// @Failure 401
// @Router /directory/summary [get]
func (c *DirectoryController) GetSummary(ctx *gin.Context) {
	response, err := c.directoryService.GetSummary()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProjectMemberCounts
// @Summary Member counts per active project
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} directory_dto.ListProjectMemberCountsDTO
// @Failure 401
// @Router /directory/projects/member-counts [get]
func (c *DirectoryController) GetProjectMemberCounts(ctx *gin.Context) {
	response, err := c.directoryService.GetProjectMemberCounts()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProjectsMissingLinks
// @Summary Active projects lacking a design-file or shared-drive link
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} directory_dto.ListProjectLinkGapsDTO
// @Failure 401
// @Router /directory/projects/missing-links [get]
func (c *DirectoryController) GetProjectsMissingLinks(ctx *gin.Context) {
	response, err := c.directoryService.GetProjectsMissingLinks()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUserEngagement
// @Summary Active users bucketed by active-project count
// @Tags directory
// @Produce json
// @Security BearerAuth
// @Param bucket query string true "One of none, single, multiple"
// @Success 200 {object} directory_dto.ListUserEngagementDTO
// @Failure 400
// @Failure 401
// @Router /directory/users/engagement [get]
func (c *DirectoryController) GetUserEngagement(ctx *gin.Context) {
	bucket := ctx.Query("bucket")
	if bucket == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "bucket is required"})
		return
	}

	response, err := c.directoryService.GetUserEngagement(bucket)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
