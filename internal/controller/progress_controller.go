package controller

import (
	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/service"
	"wanderlist_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	DashboardService *service.DashboardService
}

func NewProgressController(dashboardService *service.DashboardService) *ProgressController {
	return &ProgressController{DashboardService: dashboardService}
}

// @Summary 进度快照
// @Description 获取当前用户的总体/大洲/国家进度与积分、连续打卡
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.DashboardService.Snapshot(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, snapshot)
}

// @Summary 大洲进度
// @Description 获取当前用户在指定大洲的进度
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param continent path string true "大洲标识" Enums(europe, asia, africa, americas, oceania)
// @Success 200 {object} util.Response
// @Router /api/progress/continents/{continent} [get]
func (c *ProgressController) GetContinentProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	continent, ok := model.ParseContinent(ctx.Param("continent"))
	if !ok {
		util.BadRequest(ctx, util.ErrUnknownContinent.Error())
		return
	}

	snapshot, err := c.DashboardService.Snapshot(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	for i := range snapshot.Progress.Continents {
		if snapshot.Progress.Continents[i].Code == continent {
			util.Success(ctx, snapshot.Progress.Continents[i])
			return
		}
	}

	// 目录里该大洲暂无地标
	util.NotFound(ctx)
}

// @Summary 连续打卡
// @Description 获取当前用户的连续打卡状态
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/streak [get]
func (c *ProgressController) GetStreak(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.DashboardService.Snapshot(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, snapshot.Streak)
}
