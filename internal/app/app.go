package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"renta_backend/database"
	"renta_backend/internal/auth"
	"renta_backend/internal/config"
	"renta_backend/internal/email"
	"renta_backend/internal/handlers"
	"renta_backend/internal/logger"
	"renta_backend/internal/middleware"
	"renta_backend/internal/models"
	"renta_backend/internal/queue"
	"renta_backend/internal/repositories"
	"renta_backend/internal/routes"
	"renta_backend/internal/services"
	"renta_backend/internal/validator"
	"renta_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.JWT.Secret == "" {
		logger.Fatal("jwt.secret is required")
	}
	if cfg.JWT.RefreshSecret == "" {
		logger.Warn("jwt.refresh_secret is empty, falling back to jwt.secret")
	}
	auth.Init(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTLHours, cfg.JWT.RefreshTTLDays)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstSuperAdmin(cfg); err != nil {
		// Без суперадмина управлять платформой некому - не запускаемся
		logger.Fatal("Failed to seed first super_admin user", "error", err)
	}

	serviceContainer := initializeServices(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orderWorker := workers.NewOrderWorker(
		serviceContainer.OrderService,
		time.Duration(cfg.Worker.SweepIntervalMinutes)*time.Minute,
	)
	orderWorker.Start(ctx)
	logger.Info("Order worker started", "interval_minutes", cfg.Worker.SweepIntervalMinutes)

	ginRouter := SetupRouter(cfg, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, serviceContainer *services.ServiceContainer) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)
	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}

	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewGomailProvider(&email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
		})
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured, emails are disabled")
		emailProvider = email.NoopProvider{}
	}

	var publisher queue.Publisher
	if cfg.Queue.URL != "" {
		amqpPublisher, err := queue.NewAMQPPublisher(cfg.Queue.URL)
		if err != nil {
			// Брокер недоступен при старте - работаем без событий
			logger.WithError(err).Warn("RabbitMQ unavailable, events are disabled")
			publisher = queue.NoopPublisher{}
		} else {
			logger.Info("RabbitMQ publisher initialized")
			publisher = amqpPublisher
		}
	} else {
		publisher = queue.NoopPublisher{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	productRepo := repositories.NewProductRepository(gormDB)
	orderRepo := repositories.NewOrderRepository(gormDB)
	postRepo := repositories.NewPostRepository(gormDB)

	return services.NewServiceContainer(userRepo, productRepo, orderRepo, postRepo, emailProvider, publisher)
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:    handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		ProductHandler: handlers.NewProductHandler(baseHandler, serviceContainer.ProductService),
		OrderHandler:   handlers.NewOrderHandler(baseHandler, serviceContainer.OrderService),
		PostHandler:    handlers.NewPostHandler(baseHandler, serviceContainer.PostService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	if cfg.RateLimit.Enabled {
		rdb := newRedisClient(cfg)
		router.Use(middleware.RateLimitMiddleware(rdb, middleware.RateLimitConfig{
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: time.Duration(cfg.RateLimit.RefillInterval) * time.Second,
			KeyPrefix:      "renta:ratelimit",
		}))
	}

	return router
}

// newRedisClient подключает Redis для rate limiter-а. nil при
// недоступном Redis: лимитер в этом случае пропускает все запросы
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Warn("Redis is not configured, rate limiting is disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("Redis unavailable, rate limiting is disabled")
		return nil
	}

	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return rdb
}

// seedFirstSuperAdmin создает первого суперадмина при пустой базе.
// super_admin не создается через API, это единственный путь
func seedFirstSuperAdmin(cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("admin.email or admin.password is not set. Skipping super_admin seeding.")
		return nil
	}

	gormDB, err := database.ConnectGorm()
	if err != nil {
		return err
	}

	var existing models.User
	result := gormDB.Where("role = ?", models.UserRoleSuperAdmin).First(&existing)
	if result.Error == nil {
		logger.Info("super_admin already exists. Skipping creation.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for super_admin user: %w", result.Error)
	}

	logger.Warn("No super_admin found. Creating first super_admin...", "email", cfg.Admin.Email)

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash super_admin password: %w", err)
	}

	superAdmin := &models.User{
		Name:         "Platform Administrator",
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.UserRoleSuperAdmin,
		IsActive:     true,
	}

	if err := gormDB.Create(superAdmin).Error; err != nil {
		return fmt.Errorf("failed to create super_admin user: %w", err)
	}

	logger.Info("✅ Successfully created first super_admin user", "email", cfg.Admin.Email)
	return nil
}
