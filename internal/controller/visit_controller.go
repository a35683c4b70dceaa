package controller

import (
	"errors"

	"wanderlist_backend/internal/service"
	"wanderlist_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VisitController struct {
	VisitService *service.VisitService
}

func NewVisitController(visitService *service.VisitService) *VisitController {
	return &VisitController{VisitService: visitService}
}

// @Summary 打卡列表
// @Description 获取当前用户的全部打卡记录
// @Tags 打卡
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/visits [get]
func (c *VisitController) ListVisits(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	visits, err := c.VisitService.ListVisits(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, visits)
}

// @Summary 创建打卡
// @Description 标记地标/国家已访问或记录自定义打卡，写入后触发引擎重算
// @Tags 打卡
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param visit body service.VisitRequest true "打卡信息"
// @Success 201 {object} util.Response
// @Router /api/visits [post]
func (c *VisitController) CreateVisit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.VisitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	visit, result, err := c.VisitService.CreateVisit(ctx.Request.Context(), user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLandmarkNotFound),
			errors.Is(err, util.ErrCountryNotFound),
			errors.Is(err, util.ErrInvalidVisitInput),
			errors.Is(err, util.ErrVisitInFuture):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyVisited):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"visit":     visit,
		"newBadges": result.NewBadges,
		"snapshot":  result.Snapshot,
	})
}

// @Summary 删除打卡
// @Description 删除一条打卡记录，派生数据在重算中自行修正，已获徽章不收回
// @Tags 打卡
// @Produce json
// @Security BearerAuth
// @Param id path string true "打卡ID"
// @Success 200 {object} util.Response
// @Router /api/visits/{id} [delete]
func (c *VisitController) DeleteVisit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.VisitService.DeleteVisit(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrVisitNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"snapshot": result.Snapshot})
}
