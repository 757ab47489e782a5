package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/paddockgames/loadout-api/internal/config"
	"github.com/paddockgames/loadout-api/internal/handlers/ws"
	"github.com/paddockgames/loadout-api/internal/orchestrators/action"
	"github.com/paddockgames/loadout-api/internal/orchestrators/loadouts"
	"github.com/paddockgames/loadout-api/internal/orchestrators/respawn"
	"github.com/paddockgames/loadout-api/internal/pkg/clock"
	"github.com/paddockgames/loadout-api/internal/redis"
	loadoutrepo "github.com/paddockgames/loadout-api/internal/repositories/loadouts"
)

var portOverride int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the loadout websocket server",
	Long:  `Start the loadout server with the configured storage backend and an in-memory world simulation behind the engine interfaces.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&portOverride, "port", 0, "listen port (overrides LOADOUT_API_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if portOverride != 0 {
		cfg.Port = portOverride
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}

	world := newSimEngine(cfg.SuppliesEnabled, cfg.BuyMultiplier)
	characters := simCharacters{world}

	store, err := loadouts.New(&loadouts.Config{
		Repository: repo,
		Players:    world,
		Characters: characters,
		Clock:      clock.New(),
	})
	if err != nil {
		return err
	}

	respawner, err := respawn.New(&respawn.Config{
		Records:    store,
		Players:    world,
		Characters: characters,
		Factions:   world,
		Scheduler:  clock.NewScheduler(),
	})
	if err != nil {
		return err
	}

	hub := ws.NewHub()

	actions, err := action.New(&action.Config{
		Store:      store,
		Applier:    respawner,
		Publisher:  hub,
		Inventory:  world,
		Resources:  world,
		Catalog:    world,
		Players:    world,
		Characters: characters,
		Factions:   world,
	})
	if err != nil {
		return err
	}

	handler, err := ws.NewHandler(&ws.Config{
		Hub:       hub,
		Actions:   actions,
		Snapshots: store,
		OnDisconnect: func(playerID int) {
			store.EvictPlayer(playerID)
			respawner.CancelPending(playerID)
		},
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("loadout server starting",
			"port", cfg.Port,
			"storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err.Error())
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func newRepository(cfg *config.Config) (loadoutrepo.Repository, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddress, &redis.Options{
			Password: cfg.RedisPassword,
		})
		if err != nil {
			return nil, err
		}
		return loadoutrepo.NewRedisRepository(&loadoutrepo.RedisConfig{Client: client})
	default:
		return loadoutrepo.NewFileRepository(&loadoutrepo.FileConfig{Root: cfg.StorageRoot})
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
