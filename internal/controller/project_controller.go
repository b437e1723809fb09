package controller

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	ProjectService *service.ProjectService
	StorageService *service.StorageService
}

func NewProjectController(projectService *service.ProjectService, storageService *service.StorageService) *ProjectController {
	return &ProjectController{ProjectService: projectService, StorageService: storageService}
}

func (c *ProjectController) handleProjectError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProjectNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// swagger:model ProjectRequest
type ProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repoUrl"`
	Tags        []string `json:"tags"`
	IsPublic    bool     `json:"isPublic"`
}

// Create godoc
// @Summary Share a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProjectRequest true "project fields"
// @Success 201 {object} util.Response{data=model.Project}
// @Router /api/projects [post]
func (c *ProjectController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project := &model.Project{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		RepoURL:     req.RepoURL,
		Tags:        req.Tags,
		IsPublic:    req.IsPublic,
	}
	if err := c.ProjectService.Create(project); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, project)
}

// ListPublic godoc
// @Summary Public project gallery
// @Tags projects
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Project}
// @Router /api/projects [get]
func (c *ProjectController) ListPublic(ctx *gin.Context) {
	projects, err := c.ProjectService.ListPublic()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// ListMine godoc
// @Summary Current user's projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Project}
// @Router /api/projects/mine [get]
func (c *ProjectController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	projects, err := c.ProjectService.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// Get godoc
// @Summary Project detail
// @Tags projects
// @Produce json
// @Param projectId path string true "project id"
// @Success 200 {object} util.Response{data=model.Project}
// @Failure 404 {object} util.Response
// @Router /api/projects/{projectId} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	project, err := c.ProjectService.Get(ctx.Param("projectId"))
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

// Update godoc
// @Summary Update an owned project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "project id"
// @Param body body ProjectRequest true "project fields"
// @Success 200 {object} util.Response{data=model.Project}
// @Failure 403 {object} util.Response
// @Router /api/projects/{projectId} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	project, err := c.ProjectService.Get(ctx.Param("projectId"))
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}

	project.Title = req.Title
	project.Description = req.Description
	project.RepoURL = req.RepoURL
	project.Tags = req.Tags
	project.IsPublic = req.IsPublic
	if err := c.ProjectService.Update(project, claims.UserID, claims.Role); err != nil {
		c.handleProjectError(ctx, err)
		return
	}
	util.Success(ctx, project)
}

// Delete godoc
// @Summary Delete an owned project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "project id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/projects/{projectId} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ProjectService.Delete(ctx.Param("projectId"), claims.UserID, claims.Role); err != nil {
		c.handleProjectError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Upvote godoc
// @Summary Upvote a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "project id"
// @Success 200 {object} util.Response
// @Router /api/projects/{projectId}/upvote [post]
func (c *ProjectController) Upvote(ctx *gin.Context) {
	if err := c.ProjectService.Upvote(ctx.Param("projectId")); err != nil {
		c.handleProjectError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadFile godoc
// @Summary Attach a file to a project
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "project id"
// @Param file formData file true "project archive or notebook"
// @Success 200 {object} util.Response{data=model.Project}
// @Router /api/projects/{projectId}/file [post]
func (c *ProjectController) UploadFile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	project, err := c.ProjectService.Get(ctx.Param("projectId"))
	if err != nil {
		c.handleProjectError(ctx, err)
		return
	}
	if project.UserID != claims.UserID && claims.Role != model.Admin {
		util.Forbidden(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	url, err := c.StorageService.SaveFile(ctx, src, file.Size, file.Filename, "projects")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	project.FileURL = url
	if err := c.ProjectService.Update(project, claims.UserID, claims.Role); err != nil {
		c.handleProjectError(ctx, err)
		return
	}
	util.Success(ctx, project)
}
