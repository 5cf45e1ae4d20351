package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ievolvetecnologia/maturidadeqa/internal/api"
	"github.com/ievolvetecnologia/maturidadeqa/internal/core/service"
	"github.com/ievolvetecnologia/maturidadeqa/internal/infrastructure/mail"
	"github.com/ievolvetecnologia/maturidadeqa/internal/infrastructure/store"
	"github.com/ievolvetecnologia/maturidadeqa/internal/pkg/config"
	"github.com/ievolvetecnologia/maturidadeqa/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "sqm-api",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	// --- Store backend ---
	var kv store.Store
	switch cfg.Store.Backend {
	case "redis":
		client, err := store.Connect(ctx, store.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		kv = store.NewRedisStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis store")
	case "memory":
		kv = store.NewMemoryStore()
		log.Warn().Msg("using in-memory store, data is lost on restart")
	default:
		log.Fatal().Str("backend", cfg.Store.Backend).Msg("unknown store backend")
	}

	// --- Repositories ---
	userRepo := store.NewUserRepository(kv)
	assessmentRepo := store.NewAssessmentRepository(kv)
	planRepo := store.NewActionPlanRepository(kv)
	customRepo := store.NewCustomPracticeRepository(kv)
	draftRepo := store.NewDraftRepository(kv)
	sessions := store.NewSessionStore(kv)

	// --- Services ---
	userService := service.NewUserService(userRepo, service.SeedAdmin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, log)
	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, cfg.SessionTTL, log)
	catalogService := service.NewCatalogService(customRepo, log)
	assessmentService := service.NewAssessmentService(assessmentRepo, draftRepo, catalogService, log)
	planService := service.NewActionPlanService(planRepo, assessmentRepo, log)
	comparisonService := service.NewComparisonService(assessmentRepo, planRepo, catalogService, log)

	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		SSLPort:  cfg.SMTP.SSLPort,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
	}, log)
	notificationService := service.NewNotificationService(mailer, cfg.SMTP.To, log)

	if err := userService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	// --- Router ---
	e := api.NewRouter(api.Dependencies{
		AuthService:         authService,
		UserService:         userService,
		CatalogService:      catalogService,
		AssessmentService:   assessmentService,
		ActionPlanService:   planService,
		ComparisonService:   comparisonService,
		NotificationService: notificationService,
		Sessions:            sessions,
		Store:               kv,
		JWTSecret:           cfg.JWTSecret,
		Logger:              log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
