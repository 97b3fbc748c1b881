package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/northfold/AuroraBot/internal/config"
	"github.com/northfold/AuroraBot/internal/database"
	"github.com/northfold/AuroraBot/internal/database/postgres"
	"github.com/northfold/AuroraBot/internal/discord"
	"github.com/northfold/AuroraBot/internal/logger"
	"github.com/northfold/AuroraBot/internal/scheduler"
	"github.com/northfold/AuroraBot/internal/server"
	"github.com/northfold/AuroraBot/internal/survival"
	"github.com/northfold/AuroraBot/internal/worker"
	"github.com/northfold/AuroraBot/internal/xp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	connStr := cfg.GetDBConnString()
	if err := database.RunMigrations(connStr); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(connStr)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	bonusLoc, err := time.LoadLocation(xp.BonusTimeZone)
	if err != nil {
		slog.Error("Failed to load bonus timezone", "zone", xp.BonusTimeZone, "error", err)
		os.Exit(1)
	}

	xpService := xp.NewService(postgres.NewLedgerRepository(pool), bonusLoc)
	survivalService := survival.NewService(postgres.NewSurvivalRepository(pool))
	boardRepo := postgres.NewBoardRepository(pool)

	bot, err := discord.New(
		discord.Config{Token: cfg.DiscordToken, AppID: cfg.DiscordAppID},
		discord.Dependencies{XP: xpService, Survival: survivalService, BoardRepo: boardRepo},
	)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(forceUpdate); err != nil {
		// The bot can still run if a previous deploy registered them.
		slog.Error("Failed to register commands", "error", err)
	}

	// Board refreshes run on the worker pool so a slow Discord API call
	// never blocks the scheduler.
	jobs := worker.NewPool(1, 16)
	jobs.Start()

	sched := scheduler.New(jobs)
	sched.Schedule(cfg.BoardRefreshInterval, worker.JobFunc(bot.Boards.RefreshAll))

	srv := server.NewServer(cfg.Port, pool)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Ops server failed", "error", err)
		}
	}()

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
	}

	sched.Stop()
	jobs.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Ops server shutdown failed", "error", err)
	}
}

// initLogger initializes structured logging from app configuration.
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Environment: cfg.Environment,
		AddSource:   addSource,
	})
}
