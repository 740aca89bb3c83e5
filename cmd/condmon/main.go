package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/speedwagon-io/condmon/internal/api"
	"github.com/speedwagon-io/condmon/internal/config"
	"github.com/speedwagon-io/condmon/internal/diagnose"
	"github.com/speedwagon-io/condmon/internal/lib/logger/sl"
	"github.com/speedwagon-io/condmon/internal/metrics"
	"github.com/speedwagon-io/condmon/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	log := sl.SetupLogger(cfg.Log.Level, cfg.Log.Format)

	log.Info("starting condition monitor",
		slog.String("env", cfg.Env),
		slog.String("address", cfg.HTTP.Address),
	)

	assets := config.MustLoadAssets(cfg.Assets.ConfigPath)

	log.Info("loaded asset registry",
		slog.String("path", cfg.Assets.ConfigPath),
		slog.Int("assets", len(assets.Assets)),
	)

	st, err := store.NewSQLiteStore(log, cfg.Store.Path)
	if err != nil {
		log.Error("failed to open report store", sl.Err(err))
		os.Exit(1)
	}

	metrics.Register(st)

	engine := diagnose.NewEngine(log)

	server := api.NewServer(log, &cfg.HTTP, engine, st, assets)
	server.AddChecker(api.NewStoreHealthChecker(st.Count))

	if err := server.Start(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info("received signal, shutting down", slog.String("signal", sig.String()))
		cancel()
	}()

	runRetention(ctx, log, st, &cfg.Store)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
	}

	if err := st.Close(); err != nil {
		log.Error("failed to close report store", sl.Err(err))
	}

	log.Info("condition monitor stopped")
}

// runRetention purges expired reports on a ticker until ctx is cancelled.
func runRetention(ctx context.Context, log *slog.Logger, st store.Store, cfg *config.StoreConfig) {
	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := st.Cleanup(ctx, cfg.Retention); err != nil {
				log.Error("failed to cleanup expired reports", sl.Err(err))
			}
		}
	}
}
