package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fairental/fleet/internal/config"
	"github.com/fairental/fleet/internal/logging"
	"github.com/fairental/fleet/internal/settings"
	"github.com/fairental/fleet/internal/store"
	"github.com/fairental/fleet/internal/summary"
	"github.com/fairental/fleet/internal/web"
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
		"summaries_enabled", cfg.Summarizer.APIKey != "",
	)

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.Database.URL,
		int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := store.Migrate(cfg.Database.URL); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	vehicles := store.NewVehicleRepo(pool)
	kv := store.NewSettingsRepo(pool)

	// Reminder windows are loaded once; a store failure here falls back to
	// the defaults rather than blocking startup.
	reminders, err := settings.Load(ctx, kv)
	if err != nil {
		slog.Warn("failed to load reminder settings, using defaults", "error", err)
	}
	slog.Info("reminder settings",
		"insurance_days", reminders.InsuranceReminderDays,
		"maintenance_days", reminders.MaintenanceReminderDays,
	)

	summarizer := summary.New(cfg.Summarizer.BaseURL, cfg.Summarizer.APIKey, cfg.Summarizer.Model)

	server := web.NewServer(cfg, vehicles, kv, summarizer, reminders)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
