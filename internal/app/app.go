package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderlist_backend/internal/config"
	"wanderlist_backend/internal/controller"
	"wanderlist_backend/internal/repository"
	"wanderlist_backend/internal/service"
	"wanderlist_backend/pkg/database"
	"wanderlist_backend/pkg/logger"
	"wanderlist_backend/pkg/monitoring"
	"wanderlist_backend/pkg/security"
	"wanderlist_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user    *repository.UserRepository
	catalog *repository.CatalogRepository
	visit   *repository.VisitRepository
	badge   *repository.BadgeRepository
}

type services struct {
	catalog     *service.CatalogService
	achievement *service.AchievementService
	leaderboard *service.LeaderboardService
	dashboard   *service.DashboardService
	visit       *service.VisitService
}

type controllers struct {
	health      *controller.HealthController
	catalog     *controller.CatalogController
	visit       *controller.VisitController
	progress    *controller.ProgressController
	achievement *controller.AchievementController
	leaderboard *controller.LeaderboardController
	dashboard   *controller.DashboardController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		catalog: repository.NewCatalogRepository(db),
		visit:   repository.NewVisitRepository(db),
		badge:   repository.NewBadgeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.catalog = service.NewCatalogService(repos.catalog)
	if err := s.catalog.Reload(); err != nil {
		logger.Log.Fatal("Failed to build catalog index", zap.Error(err))
	}

	s.achievement = service.NewAchievementService(repos.badge)
	s.leaderboard = service.NewLeaderboardService(
		repos.visit,
		rdb,
		time.Duration(cfg.Leaderboard.CacheTTLSeconds)*time.Second,
	)
	s.dashboard = service.NewDashboardService(repos.visit, repos.user, s.catalog, s.achievement, s.leaderboard)
	s.visit = service.NewVisitService(repos.visit, s.catalog, s.dashboard)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:      controller.NewHealthController(db),
		catalog:     controller.NewCatalogController(s.catalog),
		visit:       controller.NewVisitController(s.visit),
		progress:    controller.NewProgressController(s.dashboard),
		achievement: controller.NewAchievementController(s.achievement, s.dashboard),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, a.Config.Leaderboard.DefaultLimit),
		dashboard:   controller.NewDashboardController(s.dashboard),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	// 目录由外部数据源刷新，定时重建内存索引
	interval := time.Duration(a.Config.Catalog.ReloadMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		for range ticker.C {
			if err := s.catalog.Reload(); err != nil {
				logger.Log.Error("scheduled catalog reload error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("wanderlist-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	app.startBackgroundTasks(services)

	return app
}

// ApplyConfig 配置热更新回调，目前只接管可在线调整的项
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.leaderboard.CacheTTL = time.Duration(cfg.Leaderboard.CacheTTLSeconds) * time.Second
	logger.Log.Info("runtime config applied",
		zap.Int("leaderboard_cache_ttl_seconds", cfg.Leaderboard.CacheTTLSeconds))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
