package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/budget/internal/advisor"
	"github.com/JonMunkholm/budget/internal/auth"
	"github.com/JonMunkholm/budget/internal/config"
	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/JonMunkholm/budget/internal/events"
	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/JonMunkholm/budget/internal/store"
	"github.com/JonMunkholm/budget/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_max_conns", cfg.Database.MaxConns,
		"import_max_concurrent", cfg.Import.MaxConcurrent,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"ai_enabled", cfg.AI.Enabled(),
		"events_enabled", cfg.Events.Enabled(),
	)

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		slog.Error("failed to parse database URL", "error", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}

	if cfg.Database.MigrateOnStart {
		if err := database.RunMigrations(pool); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database migrations applied")
	}

	passwords, err := auth.NewBcrypt(cfg.Auth.BcryptCost)
	if err != nil {
		slog.Error("failed to configure password hashing", "error", err)
		os.Exit(1)
	}
	tokens, err := auth.NewTokens(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)
	if err != nil {
		slog.Error("failed to configure access tokens", "error", err)
		os.Exit(1)
	}

	deps := core.Deps{
		Store:     store.New(pool),
		Passwords: passwords,
		Tokens:    tokens,
	}

	if cfg.AI.Enabled() {
		gemini, err := advisor.NewGemini(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model)
		if err != nil {
			slog.Error("failed to create AI advisor", "error", err)
			os.Exit(1)
		}
		deps.Advisor = gemini
	}

	if cfg.Events.Enabled() {
		publisher, err := events.NewPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange, cfg.Events.Queue)
		if err != nil {
			slog.Error("failed to connect to message broker", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		deps.Events = publisher
		slog.Info("publishing import events", "exchange", cfg.Events.Exchange, "queue", cfg.Events.Queue)
	}

	service, err := core.NewService(deps, cfg)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(service, tokens, cfg)

	// Graceful shutdown
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for running imports to commit (with timeout)
		if status := service.ImportLimiterStatus(); status.Active > 0 {
			slog.Info("waiting for imports to complete", "active", status.Active)
			if err := service.WaitForImports(shutdownCtx); err != nil {
				slog.Warn("imports did not complete in time", "error", err)
			} else {
				slog.Info("all imports completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	<-stopped
	slog.Info("server stopped")
}
