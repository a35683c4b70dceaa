package controller

import (
	"strconv"

	"wanderlist_backend/internal/service"
	"wanderlist_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
	DefaultLimit       int
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService, defaultLimit int) *LeaderboardController {
	return &LeaderboardController{
		LeaderboardService: leaderboardService,
		DefaultLimit:       defaultLimit,
	}
}

// @Summary 排行榜
// @Description 按带照片凭证的积分排名，同分按注册时间排序
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	limit := c.DefaultLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	entries, err := c.LeaderboardService.Top(ctx.Request.Context(), limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// @Summary 我的名次
// @Description 获取当前用户的排行榜名次，未上榜返回 0
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/leaderboard/me [get]
func (c *LeaderboardController) GetMyRank(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rank, err := c.LeaderboardService.RankFor(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"rank": rank})
}
