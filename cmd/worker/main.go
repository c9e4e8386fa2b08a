package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luizfilipeschaeffer/omni/internal/config"
	"github.com/luizfilipeschaeffer/omni/internal/infrastructure/database"
	queueAdapter "github.com/luizfilipeschaeffer/omni/internal/infrastructure/queue/adapter"
	"github.com/luizfilipeschaeffer/omni/internal/pkg/notification/application/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	client, err := queueAdapter.NewAsynqClient(cfg.Redis.URL)
	if err != nil {
		slog.Error("failed to create queue client", "err", err)
		os.Exit(1)
	}
	defer client.Close()

	srv, err := queueAdapter.NewAsynqServer(cfg.Redis.URL, cfg.Queue.Concurrency, map[string]int{
		"maintenance": 1,
		"default":     3,
	})
	if err != nil {
		slog.Error("failed to create queue server", "err", err)
		os.Exit(1)
	}

	task.RegisterSweepTask(srv, client, pool)

	// Seed the sweep cycle; UniqueTTL makes this a no-op when one is already
	// scheduled, so restarts never stack sweeps.
	if _, err := task.EnqueueSweep(ctx, client, cfg.Notification.Retention, time.Minute); err != nil {
		slog.Error("failed to seed sweep task", "err", err)
	}

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("worker running", "concurrency", cfg.Queue.Concurrency)
	if err := srv.Run(runCtx); err != nil {
		slog.Error("worker stopped", "err", err)
		os.Exit(1)
	}
}
