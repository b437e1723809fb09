package controller

import (
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetCourseDashboard godoc
// @Summary Dashboard payload for one course
// @Description Overall progress, chart series, activity summary and the
// daily quote, assembled in a single response.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response{data=service.CourseDashboard}
// @Router /api/dashboard/{courseId} [get]
func (c *DashboardController) GetCourseDashboard(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	util.Success(ctx, c.DashboardService.GetCourseDashboard(ctx, userKey, ctx.Param("courseId")))
}
