package controller

import (
	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/service"
	"wanderlist_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary 大洲列表
// @Description 获取各大洲的目录概览（国家数、地标数、展示元数据）
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/catalog/continents [get]
func (c *CatalogController) ListContinents(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.ListContinents())
}

// @Summary 大洲下的国家
// @Description 获取指定大洲的国家列表
// @Tags 目录
// @Produce json
// @Param continent path string true "大洲标识" Enums(europe, asia, africa, americas, oceania)
// @Success 200 {object} util.Response
// @Router /api/catalog/continents/{continent}/countries [get]
func (c *CatalogController) ListCountries(ctx *gin.Context) {
	continent, ok := model.ParseContinent(ctx.Param("continent"))
	if !ok {
		util.BadRequest(ctx, util.ErrUnknownContinent.Error())
		return
	}

	util.Success(ctx, c.CatalogService.ListCountries(continent))
}

// @Summary 国家下的地标
// @Description 获取指定国家的地标列表
// @Tags 目录
// @Produce json
// @Param id path int true "国家ID"
// @Success 200 {object} util.Response
// @Router /api/catalog/countries/{id}/landmarks [get]
func (c *CatalogController) ListLandmarks(ctx *gin.Context) {
	countryID := util.MustParseUint(ctx.Param("id"))
	if countryID == 0 {
		util.BadRequest(ctx, "invalid country id")
		return
	}

	util.Success(ctx, c.CatalogService.ListLandmarks(countryID))
}

// @Summary 重载目录索引
// @Description 目录数据导入后重建内存索引
// @Tags 目录
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/catalog/reload [post]
func (c *CatalogController) Reload(ctx *gin.Context) {
	if err := c.CatalogService.Reload(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reloaded": true})
}
