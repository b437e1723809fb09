package controller

import (
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"ailearn_backend/pkg/monitoring"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// xpPerLessonCompletion is awarded the first time a lesson is completed.
const xpPerLessonCompletion = 100

type ProgressController struct {
	ProgressService *service.ProgressService
	UserService     *service.UserService
}

func NewProgressController(progressService *service.ProgressService, userService *service.UserService) *ProgressController {
	return &ProgressController{ProgressService: progressService, UserService: userService}
}

func progressKey(ctx *gin.Context) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return "", false
	}
	return strconv.FormatUint(uint64(claims.UserID), 10), true
}

// swagger:model SaveProgressRequest
type SaveProgressRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	ModuleID  string `json:"moduleId" binding:"required"`
	LessonID  string `json:"lessonId" binding:"required"`
	Completed bool   `json:"completed"`
}

// SaveLessonProgress godoc
// @Summary Record lesson completion
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveProgressRequest true "completion flag"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/progress/lessons [post]
func (c *ProgressController) SaveLessonProgress(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	var req SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	alreadyDone := c.ProgressService.IsLessonCompleted(ctx, userKey, req.CourseID, req.ModuleID, req.LessonID)

	err := c.ProgressService.SaveLessonProgress(ctx, userKey, req.CourseID, req.ModuleID, req.LessonID, req.Completed)
	if err != nil {
		if errors.Is(err, util.ErrInvalidIdentifier) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if req.Completed && !alreadyDone {
		monitoring.LessonCompletions.WithLabelValues(req.CourseID).Inc()
		claims := util.GetUserFromContext(ctx)
		if err := c.UserService.AwardXP(claims.UserID, xpPerLessonCompletion); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	util.Success(ctx, gin.H{"completed": req.Completed})
}

// GetLessonCompletion godoc
// @Summary Check whether a lesson is completed
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "course id"
// @Param moduleId path string true "module id"
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response{data=object}
// @Router /api/progress/courses/{courseId}/modules/{moduleId}/lessons/{lessonId} [get]
func (c *ProgressController) GetLessonCompletion(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	completed := c.ProgressService.IsLessonCompleted(ctx, userKey,
		ctx.Param("courseId"), ctx.Param("moduleId"), ctx.Param("lessonId"))
	util.Success(ctx, gin.H{"completed": completed})
}

// GetModuleProgress godoc
// @Summary Module completion percentage
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "course id"
// @Param moduleId path string true "module id"
// @Success 200 {object} util.Response{data=service.ModuleProgress}
// @Router /api/progress/courses/{courseId}/modules/{moduleId} [get]
func (c *ProgressController) GetModuleProgress(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	mp := c.ProgressService.GetModuleProgress(ctx, userKey, ctx.Param("courseId"), ctx.Param("moduleId"))
	util.Success(ctx, mp)
}

// GetCourseProgress godoc
// @Summary Course progress with per-module breakdown
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response{data=object}
// @Router /api/progress/courses/{courseId} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	userKey, ok := progressKey(ctx)
	if !ok {
		return
	}

	courseID := ctx.Param("courseId")
	util.Success(ctx, gin.H{
		"courseId": courseID,
		"progress": c.ProgressService.GetCourseProgress(ctx, userKey, courseID),
		"modules":  c.ProgressService.GetAllModuleProgress(ctx, userKey, courseID),
	})
}
