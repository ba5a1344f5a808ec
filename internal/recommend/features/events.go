// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package features

import (
	"github.com/tomtom215/commonground/internal/recommend"
)

// EventInput is the snapshot BuildEventVectors works from.
type EventInput struct {
	// Feedback holds every user's feedback, liked and disliked.
	Feedback recommend.FeedbackMap

	// Events is the full event catalog. Normalization bounds are computed
	// over all of it, not only over the requested ids.
	Events []recommend.Event

	// Registrations supply the attendee counts.
	Registrations []recommend.Registration
}

// BuildEventVectors returns a feature vector for each id in targetIDs.
//
// Every vector carries exactly one location key set to 1. Reason keys hold
// the number of feedback entries that cite the reason. Events found in the
// catalog also get duration and attendees, min-max normalized over the whole
// catalog.
func BuildEventVectors(in EventInput, targetIDs []string, classifier *LocationClassifier) map[string]recommend.FeatureVector {
	out := make(map[string]recommend.FeatureVector, len(targetIDs))
	if len(targetIDs) == 0 {
		return out
	}

	targets := make(map[string]struct{}, len(targetIDs))
	for _, id := range targetIDs {
		targets[id] = struct{}{}
		out[id] = make(recommend.FeatureVector)
	}

	tallyReasons(in.Feedback, targets, out)

	attendees := AttendeeCounts(in.Registrations)
	durations := newMinMax()
	counts := newMinMax()
	byID := make(map[string]recommend.Event, len(in.Events))
	for _, e := range in.Events {
		byID[e.ID] = e
		durations.observe(e.Duration)
		counts.observe(float64(attendees[e.ID]))
	}

	for _, id := range targetIDs {
		vec := out[id]
		e, ok := byID[id]
		if !ok {
			vec[classifier.Classify("")] = 1
			continue
		}
		vec[classifier.Classify(e.Location)] = 1
		vec[recommend.FeatureDuration] = durations.scale(e.Duration)
		vec[recommend.FeatureAttendees] = counts.scale(float64(attendees[id]))
	}

	return out
}

// tallyReasons counts, per target event, how many feedback entries cite each
// reason. A reason repeated within one entry counts once.
func tallyReasons(feedback recommend.FeedbackMap, targets map[string]struct{}, out map[string]recommend.FeatureVector) {
	for _, events := range feedback {
		for eventID, fb := range events {
			if _, ok := targets[eventID]; !ok {
				continue
			}
			seen := make(map[string]struct{}, len(fb.Reasons))
			for _, r := range fb.Reasons {
				if r == "" {
					continue
				}
				if _, dup := seen[r]; dup {
					continue
				}
				seen[r] = struct{}{}
				out[eventID][r]++
			}
		}
	}
}

// AttendeeCounts returns the number of registrations per event id.
func AttendeeCounts(registrations []recommend.Registration) map[string]int {
	counts := make(map[string]int)
	for _, r := range registrations {
		counts[r.EventID]++
	}
	return counts
}

// minMax tracks observed bounds for linear normalization.
type minMax struct {
	min, max float64
	seen     bool
}

func newMinMax() *minMax {
	return &minMax{}
}

func (m *minMax) observe(x float64) {
	if !m.seen {
		m.min, m.max, m.seen = x, x, true
		return
	}
	if x < m.min {
		m.min = x
	}
	if x > m.max {
		m.max = x
	}
}

// scale maps x into [0, 1]. The lower bound is floored at 0 and the upper
// bound kept at least one unit above it so the divisor is never zero.
func (m *minMax) scale(x float64) float64 {
	lo := m.min
	if lo < 0 {
		lo = 0
	}
	hi := m.max
	if hi < lo+1 {
		hi = lo + 1
	}
	v := (x - lo) / (hi - lo)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
