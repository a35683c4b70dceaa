package controller

import (
	"wanderlist_backend/internal/service"
	"wanderlist_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
	DashboardService   *service.DashboardService
}

func NewAchievementController(achievementService *service.AchievementService, dashboardService *service.DashboardService) *AchievementController {
	return &AchievementController{
		AchievementService: achievementService,
		DashboardService:   dashboardService,
	}
}

// @Summary 已获徽章
// @Description 获取当前用户已获得的徽章
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetEarnedBadges(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.AchievementService.EarnedBadges(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, badges)
}

// @Summary 徽章定义
// @Description 获取全部徽章定义（阈值表）
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements/definitions [get]
func (c *AchievementController) GetDefinitions(ctx *gin.Context) {
	defs, err := c.AchievementService.Definitions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, defs)
}

// @Summary 手动触发重算
// @Description 对当前用户重新评估徽章，输入未变化时不会产生新徽章
// @Tags 成就系统
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements/recompute [post]
func (c *AchievementController) Recompute(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.DashboardService.Recompute(user.UserID, "manual")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
