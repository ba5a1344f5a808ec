// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package algorithms

import (
	"math"

	"github.com/tomtom215/commonground/internal/recommend"
)

// Edge is a weighted directed edge to node To.
type Edge struct {
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// Adjacency stores each node's outgoing edges, indexed by node.
type Adjacency [][]Edge

// Normalize rescales every row so its weights sum to 1. Rows whose total is
// not positive are cleared.
func (a Adjacency) Normalize() {
	for i, row := range a {
		var total float64
		for _, e := range row {
			total += e.Weight
		}
		if total <= 0 {
			a[i] = nil
			continue
		}
		for j := range row {
			row[j].Weight /= total
		}
	}
}

// OutWeight returns the total outgoing weight of node i.
func (a Adjacency) OutWeight(i int) float64 {
	if i < 0 || i >= len(a) {
		return 0
	}
	var total float64
	for _, e := range a[i] {
		total += e.Weight
	}
	return total
}

// PageRankOptions controls the personalized PageRank power iteration.
type PageRankOptions struct {
	// Damping is the probability of following an outgoing edge instead of
	// teleporting back to the start node.
	// Default: 0.85.
	Damping float64

	// MaxIterations bounds the power iteration.
	// Default: 100.
	MaxIterations int

	// Tolerance is the L1 change between iterations below which the ranks
	// are considered converged.
	// Default: 1e-6.
	Tolerance float64
}

// DefaultPageRankOptions returns the default PageRank parameters.
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		Damping:       0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// PageRankOptionsFromConfig converts the configuration section to options.
func PageRankOptionsFromConfig(cfg recommend.PageRankConfig) PageRankOptions {
	return PageRankOptions{
		Damping:       cfg.Damping,
		MaxIterations: cfg.MaxIterations,
		Tolerance:     cfg.Tolerance,
	}
}

// PageRankResult holds the ranks of a PersonalizedPageRank run.
type PageRankResult struct {
	// Ranks is indexed by node.
	Ranks []float64

	// Iterations is the number of propagation rounds performed.
	Iterations int

	// Converged is false when MaxIterations was reached first.
	Converged bool
}

// PersonalizedPageRank ranks the nodes of adj by a random walk that restarts
// at start with probability 1-Damping on every step.
//
// Rank starts concentrated on start. Each round pushes Damping times a node's
// rank along its outgoing edges and adds the teleport share to start. Rank
// held by nodes without outgoing edges is not redistributed, so the ranks may
// sum to less than 1. An out-of-range start yields all-zero ranks.
func PersonalizedPageRank(adj Adjacency, start int, opts PageRankOptions) PageRankResult {
	n := len(adj)
	res := PageRankResult{Ranks: make([]float64, n)}
	if n == 0 || start < 0 || start >= n {
		res.Converged = true
		return res
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultPageRankOptions().MaxIterations
	}

	rank := res.Ranks
	rank[start] = 1
	next := make([]float64, n)

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		res.Iterations = iter

		for i := range next {
			next[i] = 0
		}
		next[start] = 1 - opts.Damping

		for i, row := range adj {
			if rank[i] == 0 {
				continue
			}
			push := opts.Damping * rank[i]
			for _, e := range row {
				if e.To < 0 || e.To >= n {
					continue
				}
				next[e.To] += push * e.Weight
			}
		}

		var delta float64
		for i := range rank {
			delta += math.Abs(next[i] - rank[i])
		}
		rank, next = next, rank

		if delta < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	res.Ranks = rank
	return res
}
