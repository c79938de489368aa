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

	"github.com/Adfay-Inc/Puntus/config"
	"github.com/Adfay-Inc/Puntus/db"
	"github.com/Adfay-Inc/Puntus/handlers"
	"github.com/Adfay-Inc/Puntus/live"
	appmw "github.com/Adfay-Inc/Puntus/middleware"
	"github.com/Adfay-Inc/Puntus/repositories"
	api "github.com/Adfay-Inc/Puntus/routes"
	"github.com/Adfay-Inc/Puntus/services"
	"github.com/Adfay-Inc/Puntus/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 storage not configured, logo uploads disabled")
	}

	wsHub := live.NewHub(logger)
	go wsHub.Run()
	logger.Info("live hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	scrimRepo := repositories.NewPostgresScrimRepository(dbConn)
	scrimTeamRepo := repositories.NewPostgresScrimTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	resultRepo := repositories.NewPostgresResultRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecretKey))
	teamService := services.NewTeamService(teamRepo, uploader)
	scrimService := services.NewScrimService(dbConn, scrimRepo, scrimTeamRepo, teamRepo, matchRepo, resultRepo, logger)
	matchService := services.NewMatchService(dbConn, matchRepo, scrimRepo, resultRepo)
	standingsService := services.NewStandingsService(scrimRepo, scrimTeamRepo, matchRepo, resultRepo, logger)

	tracker := live.NewTracker(wsHub, standingsService, logger)
	trackerCtx, stopTracker := context.WithCancel(context.Background())
	defer stopTracker()
	go tracker.Run(trackerCtx)

	resultService := services.NewResultService(resultRepo, matchRepo, scrimRepo, scrimTeamRepo, tracker, logger)
	logger.Info("services initialized")

	authenticator := appmw.NewAuthenticator([]byte(cfg.JWTSecretKey))
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	scrimHandler := handlers.NewScrimHandler(scrimService)
	matchHandler := handlers.NewMatchHandler(matchService)
	resultHandler := handlers.NewResultHandler(resultService)
	standingsHandler := handlers.NewStandingsHandler(standingsService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, scrimService, logger)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authenticator,
		authHandler,
		teamHandler,
		scrimHandler,
		matchHandler,
		resultHandler,
		standingsHandler,
		webSocketHandler,
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
