package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/maracujarp/rulebook-api/internal/config"
	"github.com/maracujarp/rulebook-api/internal/database"
	"github.com/maracujarp/rulebook-api/internal/handler"
	"github.com/maracujarp/rulebook-api/internal/middleware"
	"github.com/maracujarp/rulebook-api/internal/models"
	"github.com/maracujarp/rulebook-api/internal/repository"
	"github.com/maracujarp/rulebook-api/internal/router"
	"github.com/maracujarp/rulebook-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Demo mode runs without a store: reads serve the placeholder dataset
	// and mutations are rejected.
	var db *gorm.DB
	if !cfg.DemoMode() {
		db, err = database.ConnectPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Section{}, &models.Rule{}, &models.ActivityLog{}); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	} else {
		logger.Warn().Msg("no database configured, serving placeholder dataset")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	var sectionRepo repository.SectionRepository
	var ruleRepo repository.RuleRepository
	var activityRepo repository.ActivityLogRepository
	if db != nil {
		sectionRepo = repository.NewSectionRepository(db)
		ruleRepo = repository.NewRuleRepository(db)
		activityRepo = repository.NewActivityLogRepository(db)
	}

	rulebookService := service.NewRulebookService(sectionRepo, redisClient, cfg.CacheTTL, logger)
	activityService := service.NewActivityService(activityRepo, logger)
	sectionService := service.NewSectionService(sectionRepo, rulebookService, activityService, validate, logger)
	ruleService := service.NewRuleService(ruleRepo, sectionRepo, rulebookService, activityService, validate, logger)
	authService := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, validate, logger)
	statsService := service.NewStatsService(rulebookService, logger)
	backupService := service.NewBackupService(sectionRepo, rulebookService, activityService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		RulebookHandler: handler.NewRulebookHandler(rulebookService, logger),
		AuthHandler:     handler.NewAuthHandler(authService, logger),
		SectionHandler:  handler.NewAdminSectionHandler(sectionService, ruleService, logger),
		RuleHandler:     handler.NewAdminRuleHandler(ruleService, logger),
		ActivityHandler: handler.NewAdminActivityHandler(activityService, logger),
		StatsHandler:    handler.NewAdminStatsHandler(statsService, logger),
		BackupHandler:   handler.NewAdminBackupHandler(backupService, logger),
		JWTMiddleware:   middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
