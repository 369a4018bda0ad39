package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/okandemir/schoolhub/internal/app/models/dto"
	"github.com/okandemir/schoolhub/internal/app/services"
	"github.com/okandemir/schoolhub/internal/middleware"
)

// DashboardController serves the dashboard summary counters
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetStats returns the current summary counters
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, ""))
}
