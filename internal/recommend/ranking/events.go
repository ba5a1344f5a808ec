// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package ranking

import (
	"sort"

	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/algorithms"
)

// ScoredEvent is a candidate event with its preference score.
type ScoredEvent struct {
	EventID string  `json:"event_id"`
	Score   float64 `json:"score"`
}

// EventRequest carries everything RecommendEvents needs.
type EventRequest struct {
	// Preference is the user's normalized preference vector.
	Preference recommend.FeatureVector

	// Vectors holds the feature vector of every clustered event.
	Vectors map[string]recommend.FeatureVector

	// Clusters defines the candidate pool and visiting order.
	Clusters recommend.Clusters

	// Exclude lists events the user must not be shown again.
	Exclude map[string]struct{}

	// TopN caps the result; values below 1 return every positive score.
	TopN int
}

// ExclusionSet returns the events a user gave feedback on or registered for.
func ExclusionSet(userID string, feedback recommend.FeedbackMap, registrations []recommend.Registration) map[string]struct{} {
	out := make(map[string]struct{})
	for eventID := range feedback.ForUser(userID) {
		out[eventID] = struct{}{}
	}
	for _, r := range registrations {
		if r.UserID == userID {
			out[r.EventID] = struct{}{}
		}
	}
	return out
}

// ScoreEvents scores every clustered event not in req.Exclude and returns the
// positive scores in descending order. Clusters are visited by ascending index
// and members in cluster order; ties keep that order.
func ScoreEvents(req EventRequest) []ScoredEvent {
	var scored []ScoredEvent
	if len(req.Preference) == 0 {
		return scored
	}

	seen := make(map[string]struct{})
	for _, idx := range req.Clusters.Indices() {
		for _, id := range req.Clusters[idx] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if _, skip := req.Exclude[id]; skip {
				continue
			}
			score := algorithms.SparseDot(req.Preference, req.Vectors[id])
			if score > 0 {
				scored = append(scored, ScoredEvent{EventID: id, Score: score})
			}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if req.TopN > 0 && len(scored) > req.TopN {
		scored = scored[:req.TopN]
	}
	return scored
}

// RecommendEvents returns the ids of the best unseen events for a user.
func RecommendEvents(req EventRequest) []string {
	scored := ScoreEvents(req)
	ids := make([]string, len(scored))
	for i, s := range scored {
		ids[i] = s.EventID
	}
	return ids
}
