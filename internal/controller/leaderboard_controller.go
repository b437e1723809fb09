package controller

import (
	"ailearn_backend/internal/service"
	"ailearn_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
	UserService        *service.UserService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService, userService *service.UserService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService, UserService: userService}
}

// Get godoc
// @Summary XP leaderboard
// @Description Top learners by XP from the periodically refreshed snapshot.
// @Tags leaderboard
// @Produce json
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *LeaderboardController) Get(ctx *gin.Context) {
	util.Success(ctx, c.LeaderboardService.Get())
}

// MyRank godoc
// @Summary Current user's leaderboard rank
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/leaderboard/me [get]
func (c *LeaderboardController) MyRank(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetUser(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"rank":  c.LeaderboardService.RankOf(user),
		"xp":    user.XP,
		"level": user.Level,
	})
}
