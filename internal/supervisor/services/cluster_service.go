// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package services

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/commonground/internal/metrics"
	"github.com/tomtom215/commonground/internal/recommend/engine"
)

// EventClusterer is the slice of the engine the refresh loop needs.
type EventClusterer interface {
	ClusterEvents(ctx context.Context, k int) (*engine.EventClusters, error)
}

// ClusterServiceConfig holds configuration for the cluster refresh service.
type ClusterServiceConfig struct {
	// RefreshOnStartup clusters once as soon as the service starts.
	RefreshOnStartup bool

	// RefreshInterval is how often to recluster. Zero or negative disables
	// periodic refresh; the service then idles until shutdown.
	RefreshInterval time.Duration

	// Clusters overrides the configured cluster count when positive.
	Clusters int

	// Timeout bounds a single refresh.
	// Default: 5m
	Timeout time.Duration
}

// ClusterService periodically clusters the event catalog so the cluster
// gauges and logs track the community as it changes. Results are kept in
// memory only; recommendations always cluster fresh data.
type ClusterService struct {
	engine EventClusterer
	config ClusterServiceConfig
	logger zerolog.Logger
	name   string
	latest atomic.Pointer[engine.EventClusters]
}

// NewClusterService creates a new cluster refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewClusterService(eng EventClusterer, cfg ClusterServiceConfig, logger zerolog.Logger) *ClusterService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &ClusterService{
		engine: eng,
		config: cfg,
		logger: logger.With().Str("service", "cluster-refresh").Logger(),
		name:   "cluster-refresh-service",
	}
}

// Serve implements the suture.Service interface.
func (s *ClusterService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("refresh_on_startup", s.config.RefreshOnStartup).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("cluster refresh service starting")

	if s.config.RefreshOnStartup {
		if err := s.refresh(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial clustering failed (will retry on schedule)")
		}
	}

	if s.config.RefreshInterval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cluster refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.refresh(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled clustering failed")
			}
		}
	}
}

// refresh runs one clustering pass and publishes its gauges.
func (s *ClusterService) refresh(ctx context.Context) error {
	refreshCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	res, err := s.engine.ClusterEvents(refreshCtx, s.config.Clusters)
	if err != nil {
		return err
	}

	events := len(res.Clusters.Members())
	metrics.UpdateClusterGauges(len(res.Clusters), events)
	s.latest.Store(res)

	ev := s.logger.Info().
		Int("clusters", len(res.Clusters)).
		Int("events", events).
		Int("iterations", res.Iterations).
		Bool("converged", res.Converged).
		Dur("duration", time.Since(start))
	for _, idx := range res.Clusters.Indices() {
		ev = ev.Int("cluster_"+strconv.Itoa(idx), len(res.Clusters[idx]))
	}
	ev.Msg("event clusters refreshed")
	return nil
}

// Latest returns the most recent successful clustering, or nil before the
// first refresh.
func (s *ClusterService) Latest() *engine.EventClusters {
	return s.latest.Load()
}

// String returns the service name for logging.
func (s *ClusterService) String() string {
	return s.name
}
