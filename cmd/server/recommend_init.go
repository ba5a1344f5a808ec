// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/commonground/internal/config"
	"github.com/tomtom215/commonground/internal/database"
	"github.com/tomtom215/commonground/internal/recommend/engine"
)

// initEngine builds the recommendation engine over the store, wrapping the
// store in a circuit breaker when enabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(cfg *config.Config, store engine.DataProvider, logger zerolog.Logger) (*engine.Engine, error) {
	provider := store
	if cfg.Breaker.Enabled {
		provider = database.NewCircuitBreakerStore(store, &cfg.Breaker)
		logger.Info().
			Uint32("min_requests", cfg.Breaker.MinRequests).
			Float64("failure_ratio", cfg.Breaker.FailureRatio).
			Dur("timeout", cfg.Breaker.Timeout).
			Msg("Store circuit breaker enabled")
	}

	eng, err := engine.New(provider, &cfg.Recommend.Engine, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("clusters", cfg.Recommend.Engine.KMeans.Clusters).
		Int("default_top_n", cfg.Recommend.Engine.Limits.DefaultTopN).
		Msg("Recommendation engine ready")
	return eng, nil
}
