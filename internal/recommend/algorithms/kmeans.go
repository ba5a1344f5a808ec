// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package algorithms

import (
	"math"

	"github.com/tomtom215/commonground/internal/recommend"
)

// KMeansOptions bounds the k-means assign/update loop.
type KMeansOptions struct {
	// Tolerance is the largest centroid movement (Euclidean) still treated
	// as converged.
	// Default: 1e-3.
	Tolerance float64

	// MaxIterations caps the loop for inputs that oscillate.
	// Default: 100.
	MaxIterations int
}

// DefaultKMeansOptions returns the default clustering bounds.
func DefaultKMeansOptions() KMeansOptions {
	return KMeansOptions{
		Tolerance:     1e-3,
		MaxIterations: 100,
	}
}

// KMeansOptionsFromConfig converts the configuration section to options.
func KMeansOptionsFromConfig(cfg recommend.KMeansConfig) KMeansOptions {
	return KMeansOptions{
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	}
}

// KMeansResult is the outcome of a clustering run.
type KMeansResult struct {
	// Clusters maps cluster index to member ids. Clusters that end with no
	// members are omitted.
	Clusters recommend.Clusters

	// Centroids are the final centroids, indexed by cluster, over Space.
	Centroids [][]float64

	// Space is the feature ordering used to densify the input.
	Space *FeatureSpace

	// Iterations is the number of assign/update rounds performed.
	Iterations int

	// Converged is false when MaxIterations was reached first.
	Converged bool
}

// KMeans partitions vectors into at most k clusters.
//
// Ids are visited in recommend.SortIDs order. The first min(k, n) vectors
// seed the centroids, each vector joins its nearest centroid (ties go to the
// lowest cluster index) and each centroid moves to the mean of its members.
// A centroid without members stays where it is. Empty input or k < 1 yields
// an empty result.
func KMeans(vectors map[string]recommend.FeatureVector, k int, opts KMeansOptions) KMeansResult {
	res := KMeansResult{Clusters: make(recommend.Clusters), Space: NewFeatureSpace()}
	if len(vectors) == 0 || k < 1 {
		res.Converged = true
		return res
	}
	if opts.MaxIterations < 1 {
		opts.MaxIterations = DefaultKMeansOptions().MaxIterations
	}

	ids := make([]string, 0, len(vectors))
	for id := range vectors {
		ids = append(ids, id)
	}
	recommend.SortIDs(ids)

	ordered := make([]recommend.FeatureVector, len(ids))
	for i, id := range ids {
		ordered[i] = vectors[id]
	}
	space := NewFeatureSpace(ordered...)
	res.Space = space

	points := make([][]float64, len(ids))
	for i, v := range ordered {
		points[i] = space.Dense(v)
	}

	effectiveK := k
	if effectiveK > len(points) {
		effectiveK = len(points)
	}
	centroids := make([][]float64, effectiveK)
	for c := range centroids {
		centroids[c] = append([]float64(nil), points[c]...)
	}

	assign := make([]int, len(points))
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		res.Iterations = iter
		for i, p := range points {
			assign[i] = nearestCentroid(p, centroids)
		}

		moved := updateCentroids(points, assign, centroids)
		if moved <= opts.Tolerance {
			res.Converged = true
			break
		}
	}

	for i, c := range assign {
		res.Clusters[c] = append(res.Clusters[c], ids[i])
	}
	res.Centroids = centroids
	return res
}

// nearestCentroid returns the index of the closest centroid. The strict
// comparison keeps the first index on ties.
func nearestCentroid(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.Inf(1)
	for c, centroid := range centroids {
		if d := Euclidean(p, centroid); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// updateCentroids moves every centroid with members to their mean and
// returns the largest distance any centroid moved.
func updateCentroids(points [][]float64, assign []int, centroids [][]float64) float64 {
	dim := 0
	if len(points) > 0 {
		dim = len(points[0])
	}

	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, p := range points {
		c := assign[i]
		counts[c]++
		for d, x := range p {
			sums[c][d] += x
		}
	}

	var maxMove float64
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		mean := Scale(sums[c], 1/float64(counts[c]))
		if move := Euclidean(centroids[c], mean); move > maxMove {
			maxMove = move
		}
		centroids[c] = mean
	}
	return maxMove
}
