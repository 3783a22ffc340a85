package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/souqline/souq-admin-service/config"
	"github.com/souqline/souq-admin-service/internal/httpapi"
	"github.com/souqline/souq-admin-service/pkg/cache"
	"github.com/souqline/souq-admin-service/pkg/database"
	"github.com/souqline/souq-admin-service/pkg/logger"

	attrH "github.com/souqline/souq-admin-service/internal/attribute/handler"
	attrRepoPkg "github.com/souqline/souq-admin-service/internal/attribute/repository"
	attrUCPkg "github.com/souqline/souq-admin-service/internal/attribute/usecase"

	catH "github.com/souqline/souq-admin-service/internal/category/handler"
	catRepoPkg "github.com/souqline/souq-admin-service/internal/category/repository"
	catUCPkg "github.com/souqline/souq-admin-service/internal/category/usecase"

	regionH "github.com/souqline/souq-admin-service/internal/region/handler"
	regionRepoPkg "github.com/souqline/souq-admin-service/internal/region/repository"
	regionUCPkg "github.com/souqline/souq-admin-service/internal/region/usecase"

	sliderH "github.com/souqline/souq-admin-service/internal/slider/handler"
	sliderRepoPkg "github.com/souqline/souq-admin-service/internal/slider/repository"
	sliderUCPkg "github.com/souqline/souq-admin-service/internal/slider/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if err := database.Migrate(db); err != nil {
		appLogger.Fatal("Could not run migrations", zap.Error(err))
	}
	appLogger.Info("Database migrations applied")

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (slider caching disabled)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	attrRepo := attrRepoPkg.NewPGRepository(db)
	regionRepo := regionRepoPkg.NewPGRepository(db)
	sliderRepo := sliderRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, attrRepo, appLogger)
	attrUC := attrUCPkg.NewAttributeUseCase(attrRepo, appLogger)
	regionUC := regionUCPkg.NewRegionUseCase(regionRepo, appLogger)
	sliderUC := sliderUCPkg.NewSliderUseCase(sliderRepo, redisClient, appLogger)

	// 7. Initialize Handlers
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	attrHandler := attrH.NewAttributeHandler(attrUC, appLogger)
	regionHandler := regionH.NewRegionHandler(regionUC, appLogger)
	sliderHandler := sliderH.NewSliderHandler(sliderUC, appLogger)

	// 8. Start HTTP Server
	app := fiber.New(fiber.Config{
		AppName: "souq-admin-service",
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(httpapi.LanguageMiddleware())

	api := app.Group("/api")
	catHandler.Register(api)
	attrHandler.Register(api)
	regionHandler.Register(api)
	sliderHandler.Register(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := app.Listen(port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
