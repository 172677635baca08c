package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wisely_backend/internal/config"
	"wisely_backend/internal/controller"
	"wisely_backend/internal/identity"
	"wisely_backend/internal/repository"
	"wisely_backend/internal/service"
	"wisely_backend/pkg/database"
	"wisely_backend/pkg/logger"
	"wisely_backend/pkg/monitoring"
	"wisely_backend/pkg/security"
	"wisely_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	test    *repository.TestRepository
	college *repository.CollegeRepository
	teacher *repository.TeacherRepository
	booking *repository.BookingRepository
}

type services struct {
	ai        *service.AIService
	session   *service.SessionService
	auth      *service.AuthService
	storage   *service.StorageService
	user      *service.UserService
	test      *service.TestService
	recommend *service.RecommendService
	college   *service.CollegeService
	teacher   *service.TeacherService
	booking   *service.BookingService
}

type controllers struct {
	auth    *controller.AuthController
	test    *controller.TestController
	college *controller.CollegeController
	teacher *controller.TeacherController
	booking *controller.BookingController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to registered callbacks.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		test:    repository.NewTestRepository(db),
		college: repository.NewCollegeRepository(db),
		teacher: repository.NewTeacherRepository(db),
		booking: repository.NewBookingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client, provider identity.Provider) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.ai = service.NewAIService(cfg.AI)
	s.session = service.NewSessionService(rdb, cfg.Session)
	s.auth = service.NewAuthService(repos.user, s.session, provider)
	s.user = service.NewUserService(repos.user, s.storage)
	s.test = service.NewTestService(s.ai, repos.test)
	s.recommend = service.NewRecommendService(s.ai)
	s.college = service.NewCollegeService(repos.college, s.recommend)
	s.teacher = service.NewTeacherService(repos.teacher)
	s.booking = service.NewBookingService(repos.booking, repos.teacher)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth, s.user, a.Config),
		test:    controller.NewTestController(s.test),
		college: controller.NewCollegeController(s.college),
		teacher: controller.NewTeacherController(s.teacher),
		booking: controller.NewBookingController(s.booking),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	app.Redis = rdb

	provider := identity.NewGoogleProvider(cfg.Identity)

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb, provider)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("wisely-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, provider, cfg)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, os.ModePerm)
		}
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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
