// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package algorithms implements the numeric building blocks shared by the
// event and mentor pipelines.
//
// # Contents
//
// Vector primitives:
//   - Euclidean: L2 distance between dense vectors
//   - CosineSimilarity: normalized dot product, 0 for zero-magnitude inputs
//   - SparseDot: dot product of sparse feature vectors restricted to one side's keys
//   - FeatureSpace: an ordered set of feature names that densifies sparse vectors
//
// Clustering:
//   - KMeans: deterministic k-means over sparse feature vectors. Centroids are
//     seeded with the first k vectors in id order; there are no random restarts.
//
// Graph ranking:
//   - Adjacency: weighted directed graph as per-node outgoing edge lists
//   - PersonalizedPageRank: power iteration with teleportation to a start node
//
// # Determinism
//
// Every function in this package is pure. Iteration over maps is always
// preceded by an explicit ordering step so identical inputs produce
// identical outputs, including tie-breaks.
//
// # Usage Example
//
//	res := algorithms.KMeans(vectors, 3, algorithms.DefaultKMeansOptions())
//	for _, idx := range res.Clusters.Indices() {
//	    fmt.Println(idx, res.Clusters[idx])
//	}
//
//	ppr := algorithms.PersonalizedPageRank(adj, 0, algorithms.DefaultPageRankOptions())
package algorithms
