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

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"3-4-5 triangle", []float64{0, 0}, []float64{3, 4}, 5},
		{"single dimension", []float64{-1}, []float64{1}, 2},
		{"empty vectors", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Euclidean(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Euclidean() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"scaled vectors", []float64{1, 2}, []float64{2, 4}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero on the left", []float64{0, 0}, []float64{1, 1}, 0},
		{"zero on the right", []float64{1, 1}, []float64{0, 0}, 0},
		{"length mismatch", []float64{1, 1}, []float64{1}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.IsNaN(got) {
				t.Fatal("CosineSimilarity() returned NaN")
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestSparseDot(t *testing.T) {
	weights := recommend.FeatureVector{"fun": 0.5, "food": 0.25, "loc:virtual": 0.25}
	vec := recommend.FeatureVector{"fun": 2, "loc:virtual": 1, "boring": 10}

	// boring only exists on the event side and must not contribute.
	want := 0.5*2 + 0.25*1
	if got := SparseDot(weights, vec); math.Abs(got-want) > 1e-12 {
		t.Errorf("SparseDot() = %f, want %f", got, want)
	}
	if got := SparseDot(nil, vec); got != 0 {
		t.Errorf("SparseDot(nil) = %f, want 0", got)
	}
}

func TestNormalizeSum(t *testing.T) {
	v := recommend.FeatureVector{"fun": 2, "food": 1}
	NormalizeSum(v)
	if math.Abs(v["fun"]-2.0/3) > 1e-12 || math.Abs(v["food"]-1.0/3) > 1e-12 {
		t.Errorf("NormalizeSum() = %v, want fun=2/3 food=1/3", v)
	}

	zero := recommend.FeatureVector{"fun": 0}
	NormalizeSum(zero)
	if zero["fun"] != 0 {
		t.Errorf("NormalizeSum(zero) changed the vector: %v", zero)
	}
}

func TestScale(t *testing.T) {
	in := []float64{1, 2}
	got := Scale(in, 0.5)
	if got[0] != 0.5 || got[1] != 1 {
		t.Errorf("Scale() = %v, want [0.5 1]", got)
	}
	if in[0] != 1 {
		t.Error("Scale() modified its input")
	}
}
