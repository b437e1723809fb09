package app

import (
	"ailearn_backend/internal/config"
	"ailearn_backend/internal/controller"
	"ailearn_backend/internal/repository"
	"ailearn_backend/internal/service"
	"ailearn_backend/pkg/database"
	"ailearn_backend/pkg/kvstore"
	"ailearn_backend/pkg/logger"
	"ailearn_backend/pkg/monitoring"
	"ailearn_backend/pkg/security"
	"ailearn_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	user    *repository.UserRepository
	course  *repository.CourseRepository
	module  *repository.ModuleRepository
	lesson  *repository.LessonRepository
	project *repository.ProjectRepository
	quiz    *repository.QuizRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	content     *service.ContentService
	progress    *service.ProgressService
	activity    *service.ActivityService
	dashboard   *service.DashboardService
	project     *service.ProjectService
	leaderboard *service.LeaderboardService
}

type controllers struct {
	auth        *controller.AuthController
	progress    *controller.ProgressController
	activity    *controller.ActivityController
	dashboard   *controller.DashboardController
	content     *controller.ContentController
	project     *controller.ProjectController
	leaderboard *controller.LeaderboardController
	admin       *controller.AdminController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		course:  repository.NewCourseRepository(db),
		module:  repository.NewModuleRepository(db),
		lesson:  repository.NewLessonRepository(db),
		project: repository.NewProjectRepository(db),
		quiz:    repository.NewQuizRepository(db),
	}
}

// newProgressStore selects the key-value backend for completion flags and
// activity logs.
func newProgressStore(cfg *config.Config, db *gorm.DB, rdb *redis.Client) kvstore.Store {
	switch cfg.Progress.Store {
	case "memory":
		return kvstore.NewMemoryStore()
	case "redis":
		return kvstore.NewRedisStore(rdb)
	default:
		return kvstore.NewGormStore(db)
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg.Storage)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	store := newProgressStore(cfg, db, rdb)
	logger.Log.Info("progress store initialized", zap.String("backend", cfg.Progress.Store))

	s.auth = service.NewAuthService(repos.user, cfg)
	s.content = service.NewContentService(repos.course, repos.module, repos.lesson, repos.quiz, s.storage)
	s.progress = service.NewProgressService(store, s.content)
	s.activity = service.NewActivityService(store)
	s.dashboard = service.NewDashboardService(s.progress, s.activity)
	s.user = service.NewUserService(repos.user, repos.course, repos.module, repos.project, s.activity)
	s.project = service.NewProjectService(repos.project, s.user)
	s.leaderboard = service.NewLeaderboardService(repos.user)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, s.user),
		progress:    controller.NewProgressController(s.progress, s.user),
		activity:    controller.NewActivityController(s.activity),
		dashboard:   controller.NewDashboardController(s.dashboard),
		content:     controller.NewContentController(s.content),
		project:     controller.NewProjectController(s.project, s.storage),
		leaderboard: controller.NewLeaderboardController(s.leaderboard, s.user),
		admin:       controller.NewAdminController(s.user),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			if err := s.leaderboard.Refresh(); err != nil {
				logger.Log.Error("leaderboard refresh error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		if cfg.Progress.Store == "redis" {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
			log.Fatalf("Failed to initialize redis: %v", err)
		}
		logger.Log.Warn("Redis unavailable, continuing without it", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ailearn-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

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
