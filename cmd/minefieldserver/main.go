package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/minefield/internal/config"
	"github.com/udisondev/minefield/internal/db"
	"github.com/udisondev/minefield/internal/event"
	"github.com/udisondev/minefield/internal/gameserver"
	"github.com/udisondev/minefield/internal/minefield"
	"github.com/udisondev/minefield/internal/stats"
)

const ConfigPath = "config/minefieldserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("MINEFIELD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("minefield server starting",
		"log_level", cfg.LogLevel,
		"port", cfg.Port,
		"maps", cfg.Maps)

	if len(cfg.Maps) == 0 {
		return errors.New("no maps configured")
	}

	loop := event.NewLoop(0)
	srv := gameserver.NewServer(cfg, loop)

	mines := minefield.New(srv, cfg.Minefield)
	mines.Install(srv.Hooks())

	g, gctx := errgroup.WithContext(ctx)

	if cfg.Stats.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		repo := db.NewMineKillRepository(database.Pool())
		recorder := stats.NewRecorder(repo, cfg.Stats.QueueSize)
		mines.SetRecorder(recorder)
		srv.EnableMineKillStats(repo)

		g.Go(func() error {
			if err := recorder.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("stats recorder: %w", err)
			}
			return nil
		})
	}

	// The loop is not running yet, so the first map loads synchronously.
	if err := srv.ChangeMap(cfg.Maps[0]); err != nil {
		return fmt.Errorf("loading initial map: %w", err)
	}

	g.Go(func() error {
		if err := loop.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("event loop: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("starting game server", "port", cfg.Port)
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("game server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
