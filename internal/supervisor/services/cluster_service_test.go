// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/commonground/internal/metrics"
	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/engine"
)

// mockClusterer is a mock EventClusterer for testing.
type mockClusterer struct {
	mu    sync.Mutex
	calls int
	ks    []int
	err   error
	delay time.Duration
	res   *engine.EventClusters
}

func (m *mockClusterer) ClusterEvents(ctx context.Context, k int) (*engine.EventClusters, error) {
	m.mu.Lock()
	m.calls++
	m.ks = append(m.ks, k)
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.delay):
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.res != nil {
		return m.res, nil
	}
	return &engine.EventClusters{
		Clusters:   recommend.Clusters{0: {"1", "3"}, 1: {"2"}},
		Iterations: 2,
		Converged:  true,
	}, nil
}

func (m *mockClusterer) getCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestClusterService_String(t *testing.T) {
	svc := NewClusterService(&mockClusterer{}, ClusterServiceConfig{RefreshInterval: time.Hour}, zerolog.Nop())
	if got := svc.String(); got != "cluster-refresh-service" {
		t.Errorf("String() = %q, want %q", got, "cluster-refresh-service")
	}
}

func TestClusterService_DefaultTimeout(t *testing.T) {
	svc := NewClusterService(&mockClusterer{}, ClusterServiceConfig{}, zerolog.Nop())
	if svc.config.Timeout != 5*time.Minute {
		t.Errorf("Timeout = %v, want 5m", svc.config.Timeout)
	}
}

func TestClusterService_RefreshOnStartup(t *testing.T) {
	clusterer := &mockClusterer{}
	svc := NewClusterService(clusterer, ClusterServiceConfig{
		RefreshOnStartup: true,
		RefreshInterval:  time.Hour,
		Clusters:         4,
	}, zerolog.Nop())

	if svc.Latest() != nil {
		t.Error("Latest() before first refresh should be nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if got := clusterer.getCalls(); got != 1 {
		t.Errorf("ClusterEvents() called %d times, want 1", got)
	}
	if clusterer.ks[0] != 4 {
		t.Errorf("ClusterEvents() k = %d, want 4", clusterer.ks[0])
	}

	latest := svc.Latest()
	if latest == nil || len(latest.Clusters) != 2 {
		t.Fatalf("Latest() = %+v, want two clusters", latest)
	}
	if got := testutil.ToFloat64(metrics.ClusterCount); got != 2 {
		t.Errorf("ClusterCount = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.ClusteredEvents); got != 3 {
		t.Errorf("ClusteredEvents = %v, want 3", got)
	}
}

func TestClusterService_NoRefreshOnStartup(t *testing.T) {
	clusterer := &mockClusterer{}
	svc := NewClusterService(clusterer, ClusterServiceConfig{RefreshInterval: time.Hour}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if got := clusterer.getCalls(); got != 0 {
		t.Errorf("ClusterEvents() called %d times, want 0", got)
	}
}

func TestClusterService_ScheduledRefresh(t *testing.T) {
	clusterer := &mockClusterer{}
	svc := NewClusterService(clusterer, ClusterServiceConfig{RefreshInterval: 30 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if got := clusterer.getCalls(); got < 2 {
		t.Errorf("ClusterEvents() called %d times, want >= 2", got)
	}
}

func TestClusterService_DisabledInterval(t *testing.T) {
	clusterer := &mockClusterer{}
	svc := NewClusterService(clusterer, ClusterServiceConfig{RefreshOnStartup: true}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := clusterer.getCalls(); got != 1 {
		t.Errorf("ClusterEvents() called %d times, want only the startup refresh", got)
	}
}

func TestClusterService_ErrorKeepsRunning(t *testing.T) {
	clusterer := &mockClusterer{err: errors.New("get events: database is closed")}
	svc := NewClusterService(clusterer, ClusterServiceConfig{
		RefreshOnStartup: true,
		RefreshInterval:  30 * time.Millisecond,
	}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := clusterer.getCalls(); got < 2 {
		t.Errorf("ClusterEvents() called %d times, want retries after failure", got)
	}
	if svc.Latest() != nil {
		t.Error("Latest() should stay nil when every refresh fails")
	}
}

func TestClusterService_GracefulShutdown(t *testing.T) {
	clusterer := &mockClusterer{delay: time.Second}
	svc := NewClusterService(clusterer, ClusterServiceConfig{
		RefreshOnStartup: true,
		RefreshInterval:  time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- svc.Serve(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve() did not complete in time")
	}
}
