package controllers

import (
	"github.com/gin-gonic/gin"

	"vitatrack/internal/services"
	"vitatrack/pkg/middleware"
	"vitatrack/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	tipService       services.TipService
}

func NewDashboardController(dashboardService services.DashboardService, tipService services.TipService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, tipService: tipService}
}

// GetDashboard godoc
// @Summary Recent logs, weekly summary and wellness statistics
// @Tags Dashboard
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, report, "")
}

func (d *DashboardController) GetWeeklySummary(c *gin.Context) {
	summary, err := d.dashboardService.WeeklySummary(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "")
}

func (d *DashboardController) GetDailyTip(c *gin.Context) {
	tip, err := d.tipService.DailyTip(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tip, "")
}
