// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package algorithms

import (
	"math"
	"testing"

	"github.com/tomtom215/commonground/internal/recommend"
)

func TestAdjacency_Normalize(t *testing.T) {
	adj := Adjacency{
		{{To: 1, Weight: 3}, {To: 2, Weight: 1}},
		{{To: 0, Weight: 0}},
		nil,
	}
	adj.Normalize()

	if math.Abs(adj[0][0].Weight-0.75) > 1e-12 || math.Abs(adj[0][1].Weight-0.25) > 1e-12 {
		t.Errorf("row 0 = %v, want weights 0.75, 0.25", adj[0])
	}
	if adj[1] != nil {
		t.Errorf("row 1 = %v, want cleared", adj[1])
	}
	for i := range adj {
		if sum := adj.OutWeight(i); sum > 1+1e-12 {
			t.Errorf("OutWeight(%d) = %f, want <= 1", i, sum)
		}
	}
}

func TestPersonalizedPageRank_TwoNodeCycle(t *testing.T) {
	adj := Adjacency{
		{{To: 1, Weight: 1}},
		{{To: 0, Weight: 1}},
	}

	res := PersonalizedPageRank(adj, 0, DefaultPageRankOptions())

	// Fixed point: r0 = 0.15 + 0.85*r1, r1 = 0.85*r0.
	wantR0 := 0.15 / (1 - 0.85*0.85)
	wantR1 := 0.85 * wantR0
	if math.Abs(res.Ranks[0]-wantR0) > 1e-4 {
		t.Errorf("Ranks[0] = %f, want %f", res.Ranks[0], wantR0)
	}
	if math.Abs(res.Ranks[1]-wantR1) > 1e-4 {
		t.Errorf("Ranks[1] = %f, want %f", res.Ranks[1], wantR1)
	}
	if res.Ranks[0] < res.Ranks[1] {
		t.Error("start node ranked below its neighbor")
	}
	if !res.Converged {
		t.Error("Converged = false, want true")
	}
}

func TestPersonalizedPageRank_DanglingMassIsLost(t *testing.T) {
	adj := Adjacency{
		{{To: 1, Weight: 1}},
		nil,
	}

	res := PersonalizedPageRank(adj, 0, DefaultPageRankOptions())

	if math.Abs(res.Ranks[0]-0.15) > 1e-9 {
		t.Errorf("Ranks[0] = %f, want 0.15", res.Ranks[0])
	}
	if math.Abs(res.Ranks[1]-0.1275) > 1e-9 {
		t.Errorf("Ranks[1] = %f, want 0.1275", res.Ranks[1])
	}
	if sum := res.Ranks[0] + res.Ranks[1]; sum >= 1 {
		t.Errorf("rank sum = %f, want < 1", sum)
	}
}

func TestPersonalizedPageRank_StartDominates(t *testing.T) {
	// Start connects to everyone; others connect back and to each other.
	adj := Adjacency{
		{{To: 1, Weight: 0.5}, {To: 2, Weight: 0.5}},
		{{To: 0, Weight: 0.5}, {To: 2, Weight: 0.5}},
		{{To: 0, Weight: 0.5}, {To: 1, Weight: 0.5}},
		{{To: 0, Weight: 1}},
	}

	res := PersonalizedPageRank(adj, 0, DefaultPageRankOptions())
	for i := 1; i < len(res.Ranks); i++ {
		if res.Ranks[0] < res.Ranks[i] {
			t.Errorf("Ranks[0] = %f < Ranks[%d] = %f", res.Ranks[0], i, res.Ranks[i])
		}
	}
	// Node 3 is unreachable from the start node.
	if res.Ranks[3] != 0 {
		t.Errorf("Ranks[3] = %f, want 0", res.Ranks[3])
	}
}

func TestPersonalizedPageRank_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		adj   Adjacency
		start int
	}{
		{"empty graph", nil, 0},
		{"start out of range", Adjacency{nil, nil}, 5},
		{"negative start", Adjacency{nil}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := PersonalizedPageRank(tt.adj, tt.start, DefaultPageRankOptions())
			if len(res.Ranks) != len(tt.adj) {
				t.Fatalf("len(Ranks) = %d, want %d", len(res.Ranks), len(tt.adj))
			}
			for i, r := range res.Ranks {
				if r != 0 {
					t.Errorf("Ranks[%d] = %f, want 0", i, r)
				}
			}
		})
	}
}

func TestPersonalizedPageRank_IsolatedStart(t *testing.T) {
	res := PersonalizedPageRank(Adjacency{nil, nil}, 0, DefaultPageRankOptions())
	if math.Abs(res.Ranks[0]-0.15) > 1e-12 {
		t.Errorf("Ranks[0] = %f, want teleport share 0.15", res.Ranks[0])
	}
	if res.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", res.Iterations)
	}
}

func TestPageRankOptionsFromConfig(t *testing.T) {
	opts := PageRankOptionsFromConfig(recommend.DefaultConfig().PageRank)
	if opts != DefaultPageRankOptions() {
		t.Errorf("PageRankOptionsFromConfig() = %+v, want %+v", opts, DefaultPageRankOptions())
	}
}
