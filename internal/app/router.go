package app

import (
	"wanderlist_backend/docs"
	"wanderlist_backend/internal/config"
	"wanderlist_backend/internal/middleware"
	"wanderlist_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		catalog := public.Group("/catalog")
		{
			catalog.GET("/continents", c.catalog.ListContinents)
			catalog.GET("/continents/:continent/countries", c.catalog.ListCountries)
			catalog.GET("/countries/:id/landmarks", c.catalog.ListLandmarks)
		}
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/visits", c.visit.ListVisits)
		authGroup.POST("/visits", c.visit.CreateVisit)
		authGroup.DELETE("/visits/:id", c.visit.DeleteVisit)

		authGroup.GET("/progress", c.progress.GetProgress)
		authGroup.GET("/progress/continents/:continent", c.progress.GetContinentProgress)
		authGroup.GET("/streak", c.progress.GetStreak)

		authGroup.GET("/achievements", c.achievement.GetEarnedBadges)
		authGroup.GET("/achievements/definitions", c.achievement.GetDefinitions)
		authGroup.POST("/achievements/recompute", c.achievement.Recompute)

		authGroup.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		authGroup.GET("/leaderboard/me", c.leaderboard.GetMyRank)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)
	}

	// 3. 管理接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.POST("/catalog/reload", c.catalog.Reload)
	}
}
