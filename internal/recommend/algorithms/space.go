// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package algorithms

import (
	"github.com/tomtom215/commonground/internal/recommend"
)

// FeatureSpace is an ordered set of feature names used to densify sparse
// feature vectors. The zero value is an empty space.
type FeatureSpace struct {
	names []string
	index map[string]int
}

// NewFeatureSpace builds the union of keys across vectors. Names appear in
// first-seen order, visiting the vectors in argument order and each vector's
// keys in lexical order.
func NewFeatureSpace(vectors ...recommend.FeatureVector) *FeatureSpace {
	fs := &FeatureSpace{index: make(map[string]int)}
	for _, v := range vectors {
		for _, key := range v.Keys() {
			fs.add(key)
		}
	}
	return fs
}

func (fs *FeatureSpace) add(name string) {
	if _, ok := fs.index[name]; ok {
		return
	}
	fs.index[name] = len(fs.names)
	fs.names = append(fs.names, name)
}

// Names returns a copy of the feature names in dimension order.
func (fs *FeatureSpace) Names() []string {
	out := make([]string, len(fs.names))
	copy(out, fs.names)
	return out
}

// Len returns the number of dimensions.
func (fs *FeatureSpace) Len() int {
	return len(fs.names)
}

// Index returns the dimension of name, or -1 when the name is not in the space.
func (fs *FeatureSpace) Index(name string) int {
	if i, ok := fs.index[name]; ok {
		return i
	}
	return -1
}

// Has reports whether name is a dimension of the space.
func (fs *FeatureSpace) Has(name string) bool {
	_, ok := fs.index[name]
	return ok
}

// Dense converts v to a slice over the space. Missing features are 0 and
// features outside the space are dropped.
func (fs *FeatureSpace) Dense(v recommend.FeatureVector) []float64 {
	out := make([]float64, len(fs.names))
	for key, w := range v {
		if i, ok := fs.index[key]; ok {
			out[i] = w
		}
	}
	return out
}

// Sparse converts a dense slice back into a feature vector, omitting zeros.
func (fs *FeatureSpace) Sparse(dense []float64) recommend.FeatureVector {
	out := make(recommend.FeatureVector)
	for i, w := range dense {
		if i >= len(fs.names) {
			break
		}
		if w != 0 {
			out[fs.names[i]] = w
		}
	}
	return out
}
