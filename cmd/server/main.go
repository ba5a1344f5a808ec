// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/commonground/internal/config"
	"github.com/tomtom215/commonground/internal/database"
	"github.com/tomtom215/commonground/internal/logging"
	"github.com/tomtom215/commonground/internal/metrics"
	"github.com/tomtom215/commonground/internal/supervisor"
	"github.com/tomtom215/commonground/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	started := time.Now()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stdout,
	})

	logging.Info().
		Str("version", version).
		Str("db_path", cfg.Database.Path).
		Int("clusters", cfg.Recommend.Engine.KMeans.Clusters).
		Dur("refresh_interval", cfg.Recommend.RefreshInterval).
		Bool("breaker", cfg.Breaker.Enabled).
		Msg("Starting Commonground")

	metrics.SetAppInfo(version, runtime.Version())

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	eng, err := initEngine(cfg, db, logging.WithComponent("engine"))
	if err != nil {
		// Close explicitly: Fatal exits without running defers.
		if closeErr := db.Close(); closeErr != nil {
			logging.Error().Err(closeErr).Msg("Error closing database")
		}
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Recommend.RefreshInterval > 0 {
		tree.AddComputeService(services.NewClusterService(eng, services.ClusterServiceConfig{
			RefreshOnStartup: true,
			RefreshInterval:  cfg.Recommend.RefreshInterval,
		}, logging.WithComponent("supervisor")))
	} else {
		logging.Info().Msg("Cluster refresh disabled (RECOMMEND_REFRESH_INTERVAL=0)")
	}

	if cfg.Server.Enabled {
		server := &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           services.NewRouter(db),
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      cfg.Server.WriteTimeout,
		}
		tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("supervisor")))
	} else {
		logging.Info().Msg("Observability listener disabled (METRICS_ENABLED=false)")
	}

	go trackUptime(ctx, started)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Supervisor tree starting")
	if err := <-tree.ServeBackground(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor shutdown error")
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}

	logging.Info().Msg("Commonground stopped")
}

// trackUptime refreshes the uptime gauge until ctx is canceled.
func trackUptime(ctx context.Context, started time.Time) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		metrics.TrackUptime(started)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
