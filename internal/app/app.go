package app

import (
	"errors"
	"fmt"

	"jobmarket_backend/database"
	"jobmarket_backend/internal/auth"
	"jobmarket_backend/internal/config"
	"jobmarket_backend/internal/handlers"
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "jobmarket_backend/docs"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := SeedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tm := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	serviceContainer := services.NewServiceContainer(gormDB, tm)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	ginRouter.Use(middleware.Authenticate(tm, repositories.NewUserRepository(gormDB)))
	ginRouter.Use(middleware.Authorize())

	api := ginRouter.Group("/api")
	appHandlers.RegisterRoutes(api)

	ginRouter.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return ginRouter
}

// SeedFirstAdmin creates the bootstrap admin account when the env names one
// and no user with that username exists yet.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	username := cfg.FirstAdminUsername
	password := cfg.FirstAdminPassword

	if username == "" || password == "" {
		logger.Warn("FIRST_ADMIN_USERNAME or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var admin models.User
	result := tx.Where("username = ?", username).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "username", username)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found. Creating first admin...", "username", username)

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         models.UserRoleAdmin,
	}
	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return tx.Commit().Error
}
