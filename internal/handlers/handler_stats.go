package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stitchworks/trim_inventory_app/internal/core/ports/services"
	"github.com/stitchworks/trim_inventory_app/internal/dto"
)

// statsHandler serves the dashboard aggregates.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

// registerStatsRoutes registers the stats route.
func registerStatsRoutes(rg *gin.RouterGroup, ss portssvc.StatsSvcFacade) {
	h := &statsHandler{statsService: ss}
	rg.GET("/stats", h.getStats)
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Returns the material count and today's entered/issued quantity sums.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (h *statsHandler) getStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Stats unavailable")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}
