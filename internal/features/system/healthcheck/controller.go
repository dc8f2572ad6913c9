package system_healthcheck

import (
	"net/http"

	users_middleware "projecthub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.Healthcheck)
}

func (c *HealthcheckController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/system/stats", c.GetHostStats)
}

// Healthcheck
// @Summary Liveness probe
// @Description Reports whether the database and cache are reachable
// @Tags system
// @Produce json
// @Success 200
// @Failure 503
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	if err := c.healthcheckService.CheckLiveness(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetHostStats
// @Summary Host resource usage
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} system_healthcheck.HostStats
// @Failure 401
// @Failure 403
// @Router /system/stats [get]
func (c *HealthcheckController) GetHostStats(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !user.IsAdmin() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions to view host stats"})
		return
	}

	stats, err := c.healthcheckService.GetHostStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
