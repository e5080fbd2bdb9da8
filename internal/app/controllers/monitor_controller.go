package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/services"
	"github.com/gocode/elearning/internal/middleware"
)

// MonitorController serves the instructor dashboard
type MonitorController struct {
	monitorService services.MonitorService
}

// NewMonitorController creates a new MonitorController
func NewMonitorController(monitorService services.MonitorService) *MonitorController {
	return &MonitorController{monitorService: monitorService}
}

// Dashboard lists enrollments in the caller's courses with progress
// @Summary Instructor dashboard
// @Description Enrollments across the caller's courses, newest first, with completion percentage
// @Tags monitor
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.DashboardItem
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /courses/monitor/dashboard/ [get]
func (c *MonitorController) Dashboard(ctx *gin.Context) {
	items, err := c.monitorService.GetDashboard(ctx.Request.Context(), middleware.CurrentPrincipal(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}
