package controller

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"errors"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

func (c *ContentController) handleContentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidIdentifier):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// ListCourses godoc
// @Summary List courses
// @Tags content
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *ContentController) ListCourses(ctx *gin.Context) {
	courses, err := c.ContentService.GetCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary Course detail
// @Tags content
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{courseId} [get]
func (c *ContentController) GetCourse(ctx *gin.Context) {
	course, err := c.ContentService.GetCourse(ctx.Param("courseId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// ListModules godoc
// @Summary List a course's modules in display order
// @Tags content
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response{data=[]model.CourseModule}
// @Router /api/courses/{courseId}/modules [get]
func (c *ContentController) ListModules(ctx *gin.Context) {
	modules, err := c.ContentService.GetModules(ctx.Param("courseId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

// swagger:model ModuleRequest
type ModuleRequest struct {
	Title string `json:"title" binding:"required"`
	Order int    `json:"order"`
}

// CreateModule godoc
// @Summary Create a module (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "course id"
// @Param body body ModuleRequest true "module fields"
// @Success 201 {object} util.Response{data=model.CourseModule}
// @Router /api/courses/{courseId}/modules [post]
func (c *ContentController) CreateModule(ctx *gin.Context) {
	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module := &model.CourseModule{
		CourseID: ctx.Param("courseId"),
		Title:    req.Title,
		Order:    req.Order,
	}
	if err := c.ContentService.CreateModule(module); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, module)
}

// UpdateModule godoc
// @Summary Update a module (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "module id"
// @Param body body ModuleRequest true "module fields"
// @Success 200 {object} util.Response{data=model.CourseModule}
// @Router /api/modules/{moduleId} [put]
func (c *ContentController) UpdateModule(ctx *gin.Context) {
	module, err := c.ContentService.GetModule(ctx.Param("moduleId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}

	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module.Title = req.Title
	module.Order = req.Order
	if err := c.ContentService.UpdateModule(module); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, module)
}

// DeleteModule godoc
// @Summary Delete a module (admin)
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "module id"
// @Success 200 {object} util.Response
// @Router /api/modules/{moduleId} [delete]
func (c *ContentController) DeleteModule(ctx *gin.Context) {
	if err := c.ContentService.DeleteModule(ctx.Param("moduleId")); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListLessons godoc
// @Summary List a module's lessons in display order
// @Tags content
// @Produce json
// @Param moduleId path string true "module id"
// @Success 200 {object} util.Response{data=[]model.Lesson}
// @Router /api/modules/{moduleId}/lessons [get]
func (c *ContentController) ListLessons(ctx *gin.Context) {
	lessons, err := c.ContentService.GetLessons(ctx.Param("moduleId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// GetLesson godoc
// @Summary Lesson detail
// @Tags content
// @Produce json
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{lessonId} [get]
func (c *ContentController) GetLesson(ctx *gin.Context) {
	lesson, err := c.ContentService.GetLesson(ctx.Param("lessonId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// swagger:model LessonRequest
type LessonRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content"`
	ColabURL   string   `json:"googleColabUrl"`
	Simulators []string `json:"simulators"`
	Order      int      `json:"order"`
}

// CreateLesson godoc
// @Summary Create a lesson (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param moduleId path string true "module id"
// @Param body body LessonRequest true "lesson fields"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Router /api/modules/{moduleId}/lessons [post]
func (c *ContentController) CreateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		ModuleID:   ctx.Param("moduleId"),
		Title:      req.Title,
		Content:    req.Content,
		ColabURL:   req.ColabURL,
		Simulators: req.Simulators,
		Order:      req.Order,
	}
	if err := c.ContentService.CreateLesson(lesson); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "lesson id"
// @Param body body LessonRequest true "lesson fields"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Router /api/lessons/{lessonId} [put]
func (c *ContentController) UpdateLesson(ctx *gin.Context) {
	lesson, err := c.ContentService.GetLesson(ctx.Param("lessonId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.ColabURL = req.ColabURL
	lesson.Simulators = req.Simulators
	lesson.Order = req.Order
	if err := c.ContentService.UpdateLesson(lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson (admin)
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /api/lessons/{lessonId} [delete]
func (c *ContentController) DeleteLesson(ctx *gin.Context) {
	if err := c.ContentService.DeleteLesson(ctx.Param("lessonId")); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadLessonVideo godoc
// @Summary Upload a lesson video (admin)
// @Description Stores the video and records its probed duration on the
// lesson.
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param lessonId path string true "lesson id"
// @Param video formData file true "video file"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Router /api/lessons/{lessonId}/video [post]
func (c *ContentController) UploadLessonVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	// Stage the upload on disk so it can be probed before storage.
	tmp := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := ctx.SaveUploadedFile(file, tmp); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tmp)

	lesson, err := c.ContentService.AttachLessonVideo(ctx, ctx.Param("lessonId"), tmp, file.Filename)
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// GetQuiz godoc
// @Summary Quiz for a subject/module pair
// @Tags content
// @Produce json
// @Param subjectId path string true "subject id"
// @Param moduleId path string true "module id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{subjectId}/{moduleId} [get]
func (c *ContentController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.ContentService.GetQuiz(ctx.Param("subjectId"), ctx.Param("moduleId"))
	if err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// swagger:model QuizRequest
type QuizRequest struct {
	CourseID  string               `json:"courseId"`
	Questions []model.QuizQuestion `json:"questions" binding:"required"`
}

// SaveQuiz godoc
// @Summary Create or replace a quiz (admin)
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "subject id"
// @Param moduleId path string true "module id"
// @Param body body QuizRequest true "quiz content"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/quizzes/{subjectId}/{moduleId} [put]
func (c *ContentController) SaveQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		CourseID:  req.CourseID,
		SubjectID: ctx.Param("subjectId"),
		ModuleID:  ctx.Param("moduleId"),
		Questions: req.Questions,
	}
	if err := c.ContentService.SaveQuiz(quiz); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz (admin)
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "subject id"
// @Param moduleId path string true "module id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{subjectId}/{moduleId} [delete]
func (c *ContentController) DeleteQuiz(ctx *gin.Context) {
	if err := c.ContentService.DeleteQuiz(ctx.Param("subjectId"), ctx.Param("moduleId")); err != nil {
		c.handleContentError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
