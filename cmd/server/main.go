package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logger"
	"github.com/yukikurage/todo-api/internal/repository"
	"github.com/yukikurage/todo-api/internal/router"
	"github.com/yukikurage/todo-api/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", true)
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.GinMode != gin.ReleaseMode)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run migrations
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := repository.New(db, cfg.DBName)

	issuer, err := newTokenIssuer(cfg)
	if err != nil {
		return err
	}

	authService := services.NewAuthService(
		repo.Users,
		repo.Sessions,
		auth.NewPasswordHasher(cfg.BcryptCost),
		issuer,
	)
	todoService := services.NewTodoService(repo.Todos)

	engine := router.New(router.Config{
		AuthService:    authService,
		TodoService:    todoService,
		Stats:          repo.Stats,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}

func newTokenIssuer(cfg *config.Config) (auth.TokenIssuer, error) {
	if cfg.TokenFormat == config.TokenFormatJWT {
		issuer, err := auth.NewJWTIssuer(cfg.TokenSecret)
		if err != nil {
			return nil, err
		}
		return issuer, nil
	}
	return auth.NewOpaqueIssuer(), nil
}
