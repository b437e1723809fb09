package controller

import (
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/monitoring"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// swagger:model ActivityTickRequest
type ActivityTickRequest struct {
	SecondsElapsed int64 `json:"secondsElapsed" binding:"min=0"`
}

// Tick godoc
// @Summary Report elapsed learning time
// @Description Adds the elapsed seconds to today's activity accumulator.
// Clients send this periodically while a lesson is open; overlapping ticks
// merge additively.
// @Tags activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ActivityTickRequest true "elapsed seconds"
// @Success 200 {object} util.Response{data=service.ActivitySummary}
// @Failure 400 {object} util.Response
// @Router /api/activity/tick [post]
func (c *ActivityController) Tick(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	var req ActivityTickRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ActivityService.RecordActivity(ctx, userKey, req.SecondsElapsed); err != nil {
		if errors.Is(err, util.ErrInvalidIdentifier) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	monitoring.ActivitySeconds.Add(float64(req.SecondsElapsed))

	util.Success(ctx, c.ActivityService.ActivitySummaryFor(ctx, userKey, time.Now()))
}

// Summary godoc
// @Summary Today's and rolling 7-day learning time
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/activity/summary [get]
func (c *ActivityController) Summary(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	summary := c.ActivityService.ActivitySummaryFor(ctx, userKey, time.Now())
	util.Success(ctx, gin.H{
		"todaySeconds":     summary.TodaySeconds,
		"last7DaysSeconds": summary.Last7DaysSeconds,
		"today":            service.FormatDuration(summary.TodaySeconds),
		"last7Days":        service.FormatDuration(summary.Last7DaysSeconds),
	})
}
