package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"

	"github.com/passa-a-bola/platform/config"
	"github.com/passa-a-bola/platform/handlers"
	"github.com/passa-a-bola/platform/live"
	"github.com/passa-a-bola/platform/repositories"
	api "github.com/passa-a-bola/platform/routes"
	"github.com/passa-a-bola/platform/services"
	"github.com/passa-a-bola/platform/store"
)

// reconcileSchedule rewrites the statistics document from the registration
// records, repairing any drift left by a failed capacity write.
const reconcileSchedule = "@every 5m"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("store_driver", cfg.StoreDriver),
		slog.String("roster_mode", cfg.RosterMode))

	rosterMode, err := services.ParseRosterMode(cfg.RosterMode)
	if err != nil {
		logger.Error("invalid roster mode", slog.Any("error", err))
		os.Exit(1)
	}

	documentStore, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open document store", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := documentStore.Close(); err != nil {
			logger.Error("failed to close document store", slog.Any("error", err))
		}
	}()
	logger.Info("document store ready")

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("live capacity hub started")

	registrationRepo := repositories.NewDocumentRegistrationRepository(documentStore)
	jogadoraRepo := repositories.NewDocumentJogadoraRepository(documentStore)
	userRepo := repositories.NewDocumentUserRepository(documentStore)
	copaRepo := repositories.NewSiteDocumentRepository(documentStore, store.CollectionCopa, []byte(`{}`))
	encontroRepo := repositories.NewSiteDocumentRepository(documentStore, store.CollectionEncontro, []byte(`{}`))
	peneirasRepo := repositories.NewSiteDocumentRepository(documentStore, store.CollectionPeneiras, []byte(`[]`))

	registrationService := services.NewRegistrationService(registrationRepo, rosterMode, cfg.TeamLimit, hub, logger)
	jogadoraService := services.NewJogadoraService(jogadoraRepo)
	copaService := services.NewCopaService(copaRepo)
	encontroService := services.NewEncontroService(encontroRepo)
	peneirasService := services.NewPeneirasService(peneirasRepo)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, jogadoraRepo)
	logger.Info("services initialized")

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(reconcileSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := registrationService.Reconcile(ctx); err != nil {
			logger.Error("scheduled reconciliation failed", slog.Any("error", err))
		}
	}); err != nil {
		logger.Error("failed to schedule reconciliation job", slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.Start()
	logger.Info("reconciliation scheduler started", slog.String("schedule", reconcileSchedule))

	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	userHandler := handlers.NewUserHandler(userService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	jogadoraHandler := handlers.NewJogadoraHandler(jogadoraService)
	copaHandler := handlers.NewCopaHandler(copaService)
	encontroHandler := handlers.NewEncontroHandler(encontroService)
	peneirasHandler := handlers.NewPeneirasHandler(peneirasService)
	liveHandler := handlers.NewLiveHandler(hub, registrationService, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		[]byte(cfg.JWTSecretKey),
		authHandler,
		userHandler,
		registrationHandler,
		jogadoraHandler,
		copaHandler,
		encontroHandler,
		peneirasHandler,
		liveHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		cronCtx := scheduler.Stop()
		<-cronCtx.Done()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

func openStore(cfg *config.Config) (store.DocumentStore, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		return store.NewPostgresStore(cfg.DatabaseURL, 5*time.Second)
	case config.StoreDriverMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewBoltStore(cfg.DataPath)
	}
}
