package handler

import (
	"github.com/gin-gonic/gin"

	"ejsmarket/internal/service"
)

// StatsHandler handles the admin dashboard endpoint.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetDashboard handles GET /api/v1/admin/stats
// @Summary Dashboard statistics
// @Description Revenue, order, and product aggregates for the back office. Managers receive the full snapshot minus the top products ranking, which is admin-only.
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.DashboardStats} "Dashboard snapshot"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	_, role, ok := extractAuthContext(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetDashboardStats(c.Request.Context(), role)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
