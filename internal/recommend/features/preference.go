// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package features

import (
	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/algorithms"
)

// UserPreferenceVector derives what a user tends to like.
//
// Each liked event adds 1 per stated reason plus the event's full feature
// vector when one is known. The result is normalized so its weights sum to 1.
// Disliked events are ignored; a user with nothing liked gets an empty vector.
func UserPreferenceVector(userID string, feedback recommend.FeedbackMap, eventVectors map[string]recommend.FeatureVector) recommend.FeatureVector {
	pref := make(recommend.FeatureVector)

	events := feedback.ForUser(userID)
	ids := make([]string, 0, len(events))
	for id, fb := range events {
		if fb.Liked {
			ids = append(ids, id)
		}
	}
	recommend.SortIDs(ids)

	for _, id := range ids {
		for _, r := range events[id].Reasons {
			if r != "" {
				pref[r]++
			}
		}
		vec, ok := eventVectors[id]
		if !ok {
			continue
		}
		for _, key := range vec.Keys() {
			pref[key] += vec[key]
		}
	}

	algorithms.NormalizeSum(pref)
	return pref
}

// LikedReasonCounts tallies the reasons a user cited on liked events.
func LikedReasonCounts(userID string, feedback recommend.FeedbackMap) map[string]int {
	counts := make(map[string]int)
	for _, fb := range feedback.ForUser(userID) {
		if !fb.Liked {
			continue
		}
		for _, r := range fb.Reasons {
			if r != "" {
				counts[r]++
			}
		}
	}
	return counts
}
