package controller

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	UserService *service.UserService
}

func NewAdminController(userService *service.UserService) *AdminController {
	return &AdminController{UserService: userService}
}

// ListUsers godoc
// @Summary User list with learning activity (admin)
// @Description Pages through accounts, each enriched with today's and the
// rolling 7-day learning time.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "page, 1-based"
// @Param limit query int false "page size"
// @Param search query string false "name or email filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := c.UserService.ListUsers(ctx, page, limit, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// swagger:model SetDisabledRequest
type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// SetDisabled godoc
// @Summary Enable or disable an account (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param body body SetDisabledRequest true "disabled flag"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{userId}/disabled [put]
func (c *AdminController) SetDisabled(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.UserID == uint(userID) {
		util.Error(ctx, http.StatusConflict, "Cannot disable your own account")
		return
	}

	user, err := c.UserService.SetDisabled(uint(userID), *req.Disabled)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// swagger:model SetRoleRequest
type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=student admin"`
}

// SetRole godoc
// @Summary Change an account's role (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "user id"
// @Param body body SetRoleRequest true "new role"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{userId}/role [put]
func (c *AdminController) SetRole(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req SetRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetRole(uint(userID), model.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// GetStats godoc
// @Summary Platform counters (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.PlatformStats}
// @Router /api/admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.UserService.GetStats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
