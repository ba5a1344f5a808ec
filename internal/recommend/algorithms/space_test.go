// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package algorithms

import (
	"reflect"
	"testing"

	"github.com/tomtom215/commonground/internal/recommend"
)

func TestNewFeatureSpace(t *testing.T) {
	fs := NewFeatureSpace(
		recommend.FeatureVector{"loc:other": 1, "fun": 2},
		recommend.FeatureVector{"duration": 0.5, "fun": 1},
	)

	want := []string{"fun", "loc:other", "duration"}
	if got := fs.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if fs.Len() != 3 {
		t.Errorf("Len() = %d, want 3", fs.Len())
	}
	if fs.Index("duration") != 2 {
		t.Errorf("Index(duration) = %d, want 2", fs.Index("duration"))
	}
	if fs.Index("missing") != -1 {
		t.Errorf("Index(missing) = %d, want -1", fs.Index("missing"))
	}
	if !fs.Has("fun") || fs.Has("boring") {
		t.Error("Has() reported the wrong membership")
	}
}

func TestFeatureSpace_DenseSparse(t *testing.T) {
	fs := NewFeatureSpace(recommend.FeatureVector{"a": 1, "b": 1, "c": 1})

	dense := fs.Dense(recommend.FeatureVector{"b": 2, "z": 9})
	if !reflect.DeepEqual(dense, []float64{0, 2, 0}) {
		t.Errorf("Dense() = %v, want [0 2 0]", dense)
	}

	sparse := fs.Sparse([]float64{1, 0, 3})
	want := recommend.FeatureVector{"a": 1, "c": 3}
	if !reflect.DeepEqual(sparse, want) {
		t.Errorf("Sparse() = %v, want %v", sparse, want)
	}
}

func TestFeatureSpace_Empty(t *testing.T) {
	fs := NewFeatureSpace()
	if fs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", fs.Len())
	}
	if got := fs.Dense(recommend.FeatureVector{"a": 1}); len(got) != 0 {
		t.Errorf("Dense() = %v, want empty", got)
	}
}
