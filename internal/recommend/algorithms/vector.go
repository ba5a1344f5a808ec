// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package algorithms

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/commonground/internal/recommend"
)

// Euclidean returns the L2 distance between a and b.
// It panics if the vectors differ in length.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// CosineSimilarity computes cosine similarity between two vectors.
// It returns 0 rather than NaN when either magnitude is zero, and 0 for
// empty or mismatched inputs.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}

	return floats.Dot(a, b) / (normA * normB)
}

// SparseDot returns the dot product of weights and vec over the keys present
// in weights. Keys only present in vec contribute nothing.
func SparseDot(weights, vec recommend.FeatureVector) float64 {
	var score float64
	for _, key := range weights.Keys() {
		if v, ok := vec[key]; ok {
			score += weights[key] * v
		}
	}
	return score
}

// NormalizeSum scales v in place so its values sum to 1.
// Vectors with a zero sum are left untouched.
func NormalizeSum(v recommend.FeatureVector) {
	sum := v.Sum()
	if sum == 0 {
		return
	}
	for k := range v {
		v[k] /= sum
	}
}

// Scale returns a new slice with every element of v multiplied by w.
func Scale(v []float64, w float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	floats.Scale(w, out)
	return out
}
