// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package features

import (
	"math"
	"reflect"
	"testing"

	"github.com/tomtom215/commonground/internal/recommend"
)

func TestUserPreferenceVector_ReasonsOnly(t *testing.T) {
	fb := recommend.NewFeedbackMap([]recommend.FeedbackRecord{
		{UserID: "u1", EventID: "1", Liked: true, Reasons: []string{"fun", "food"}},
		{UserID: "u1", EventID: "2", Liked: true, Reasons: []string{"fun"}},
		{UserID: "u1", EventID: "3", Liked: false, Reasons: []string{"boring"}},
	})

	got := UserPreferenceVector("u1", fb, nil)

	if len(got) != 2 {
		t.Fatalf("UserPreferenceVector() = %v, want fun and food only", got)
	}
	if math.Abs(got["fun"]-2.0/3) > 1e-12 {
		t.Errorf("fun = %f, want 2/3", got["fun"])
	}
	if math.Abs(got["food"]-1.0/3) > 1e-12 {
		t.Errorf("food = %f, want 1/3", got["food"])
	}
}

func TestUserPreferenceVector_AddsEventFeatures(t *testing.T) {
	fb := recommend.NewFeedbackMap([]recommend.FeedbackRecord{
		{UserID: "u1", EventID: "1", Liked: true, Reasons: []string{"fun"}},
	})
	vectors := map[string]recommend.FeatureVector{
		"1": {"fun": 1, recommend.FeatureLocVirtual: 1, recommend.FeatureDuration: 1},
	}

	got := UserPreferenceVector("u1", fb, vectors)

	// fun: 1 (reason) + 1 (vector), loc:virtual 1, duration 1 -> total 4.
	want := recommend.FeatureVector{"fun": 0.5, recommend.FeatureLocVirtual: 0.25, recommend.FeatureDuration: 0.25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UserPreferenceVector() = %v, want %v", got, want)
	}
	if math.Abs(got.Sum()-1) > 1e-12 {
		t.Errorf("Sum() = %f, want 1", got.Sum())
	}
}

func TestUserPreferenceVector_NoLikes(t *testing.T) {
	fb := recommend.NewFeedbackMap([]recommend.FeedbackRecord{
		{UserID: "u1", EventID: "1", Liked: false, Reasons: []string{"boring"}},
	})

	for _, user := range []string{"u1", "nobody"} {
		if got := UserPreferenceVector(user, fb, nil); len(got) != 0 {
			t.Errorf("UserPreferenceVector(%s) = %v, want empty", user, got)
		}
	}
}

func TestLikedReasonCounts(t *testing.T) {
	fb := recommend.NewFeedbackMap([]recommend.FeedbackRecord{
		{UserID: "u1", EventID: "1", Liked: true, Reasons: []string{"fun", "food"}},
		{UserID: "u1", EventID: "2", Liked: true, Reasons: []string{"fun", ""}},
		{UserID: "u1", EventID: "3", Liked: false, Reasons: []string{"boring"}},
	})

	got := LikedReasonCounts("u1", fb)
	want := map[string]int{"fun": 2, "food": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LikedReasonCounts() = %v, want %v", got, want)
	}
}
