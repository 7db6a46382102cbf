package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/VineyardSim_Go/docs"
	"github.com/osse101/VineyardSim_Go/internal/bootstrap"
	"github.com/osse101/VineyardSim_Go/internal/config"
	"github.com/osse101/VineyardSim_Go/internal/eventlog"
	"github.com/osse101/VineyardSim_Go/internal/game"
	"github.com/osse101/VineyardSim_Go/internal/handler"
	"github.com/osse101/VineyardSim_Go/internal/preferences"
	"github.com/osse101/VineyardSim_Go/internal/quiz"
	"github.com/osse101/VineyardSim_Go/internal/scheduler"
	"github.com/osse101/VineyardSim_Go/internal/server"
	"github.com/osse101/VineyardSim_Go/internal/sse"
	"github.com/osse101/VineyardSim_Go/internal/wineapi"
	"github.com/osse101/VineyardSim_Go/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment check failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Service exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	balance, err := bootstrap.LoadBalance(cfg.BalancePath, cfg.BalanceSchemaPath)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos, store, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize, cfg.WorkerJobTimeout)
	pool.Start()
	sched := scheduler.New(pool)

	journal := eventlog.NewService(repos.Journal)
	wines := wineapi.NewClient(wineapi.Config{
		BaseURL:   cfg.WineAPIURL,
		APIKey:    cfg.WineAPIKey,
		Timeout:   cfg.WineAPITimeout,
		CacheSize: cfg.WineCacheSize,
		CacheTTL:  cfg.WineCacheTTL,
	})
	games := game.NewService(repos.Game, balance, publisher, sched)

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       bus,
		JournalService: journal,
		Hub:            hub,
	}); err != nil {
		return err
	}

	sched.Schedule(cfg.JournalCleanupInterval, eventlog.NewCleanupJob(journal, cfg.JournalRetentionDays))

	docs.SwaggerInfo.Version = cfg.Version

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Dependencies{
		Games:       games,
		Journal:     journal,
		Preferences: preferences.NewService(repos.SessionState),
		Quiz:        quiz.NewService(wines, cfg.QuizMaxSessions, cfg.QuizSessionTTL),
		Wines:       wines,
		Balance:     balance,
		Hub:         hub,
		Timers:      sched,
		Checks:      map[string]handler.HealthChecker{"store": handler.PoolChecker{Pool: store}},
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		slog.Info("Received signal, shutting down", "signal", sig)
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		Hub:                hub,
		ResilientPublisher: publisher,
		Store:              store,
	})
	return runErr
}
