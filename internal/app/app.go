package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/internal/controller"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/pkg/database"
	"ielts_prep_backend/pkg/logger"
	"ielts_prep_backend/pkg/monitoring"
	"ielts_prep_backend/pkg/security"
	"ielts_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user      *repository.UserRepository
	listening *repository.ListeningRepository
	reading   *repository.ReadingRepository
	writing   *repository.WritingRepository
	speaking  *repository.SpeakingRepository
	attempt   *repository.AttemptRepository
	analytics *repository.AnalyticsRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	storage   *service.StorageService
	feedback  *service.FeedbackService
	progress  *service.ProgressService
	analytics *service.AnalyticsService
	listening *service.ListeningService
	reading   *service.ReadingService
	writing   *service.WritingService
	speaking  *service.SpeakingService
	dashboard *service.DashboardService
	content   *service.ContentService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	listening *controller.ListeningController
	reading   *controller.ReadingController
	writing   *controller.WritingController
	speaking  *controller.SpeakingController
	dashboard *controller.DashboardController
	analytics *controller.AnalyticsController
	content   *controller.ContentController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		listening: repository.NewListeningRepository(db),
		reading:   repository.NewReadingRepository(db),
		writing:   repository.NewWritingRepository(db),
		speaking:  repository.NewSpeakingRepository(db),
		attempt:   repository.NewAttemptRepository(db),
		analytics: repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	cache := service.NewDashboardCache(rdb)

	s.storage = service.NewStorageService(cfg)
	s.feedback = service.NewFeedbackService(cfg.AI)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.progress = service.NewProgressService(repos.user)
	s.analytics = service.NewAnalyticsService(repos.analytics, repos.attempt)
	s.listening = service.NewListeningService(repos.listening, repos.attempt, s.progress, s.analytics, cache)
	s.reading = service.NewReadingService(repos.reading, repos.attempt, s.progress, s.analytics, cache)
	s.writing = service.NewWritingService(repos.writing, repos.attempt, s.feedback, s.progress, s.analytics, cache)
	s.speaking = service.NewSpeakingService(repos.speaking, repos.attempt, s.feedback, s.storage, s.progress, s.analytics, cache)
	s.dashboard = service.NewDashboardService(repos.user, repos.attempt, s.progress, cache)
	s.content = service.NewContentService(repos.listening, repos.reading, repos.writing, repos.speaking)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user),
		listening: controller.NewListeningController(s.listening),
		reading:   controller.NewReadingController(s.reading),
		writing:   controller.NewWritingController(s.writing),
		speaking:  controller.NewSpeakingController(s.speaking),
		dashboard: controller.NewDashboardController(s.dashboard),
		analytics: controller.NewAnalyticsController(s.analytics),
		content:   controller.NewContentController(s.content),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	ctrls := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ielts-prep", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
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
