// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package recommend

import (
	"sort"
	"strconv"
)

// Location feature keys. Exactly one of these is set to 1 on every event vector.
const (
	FeatureLocVirtual  = "loc:virtual"
	FeatureLocAcademic = "loc:academic"
	FeatureLocOther    = "loc:other"

	// FeatureDuration is the min-max normalized event duration.
	FeatureDuration = "duration"

	// FeatureAttendees is the min-max normalized registration count.
	FeatureAttendees = "attendees"
)

// FeatureVector is a sparse mapping from feature name to a non-negative weight.
// Reason tags hold raw tallies; duration and attendees are normalized to [0, 1].
type FeatureVector map[string]float64

// Clone returns a copy of the vector.
func (v FeatureVector) Clone() FeatureVector {
	out := make(FeatureVector, len(v))
	for k, w := range v {
		out[k] = w
	}
	return out
}

// Keys returns the feature names in lexical order.
func (v FeatureVector) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sum returns the total weight of the vector, accumulated in key order so
// the result is reproducible.
func (v FeatureVector) Sum() float64 {
	var sum float64
	for _, k := range v.Keys() {
		sum += v[k]
	}
	return sum
}

// Feedback is a single user's verdict on one event.
type Feedback struct {
	// Liked is true when the user liked the event.
	Liked bool `json:"liked"`

	// Reasons are the reason tags the user selected (e.g. "fun", "boring").
	Reasons []string `json:"reasons"`
}

// FeedbackRecord is one persisted feedback row.
// There is at most one record per (user, event) pair.
type FeedbackRecord struct {
	UserID  string   `json:"user_id" validate:"required"`
	EventID string   `json:"event_id" validate:"required"`
	Liked   bool     `json:"liked"`
	Reasons []string `json:"reasons" validate:"max=32,dive,reason"`
}

// FeedbackMap indexes feedback as user -> event -> feedback.
type FeedbackMap map[string]map[string]Feedback

// NewFeedbackMap builds a FeedbackMap from rows. Later rows for the same
// (user, event) pair replace earlier ones.
func NewFeedbackMap(records []FeedbackRecord) FeedbackMap {
	m := make(FeedbackMap)
	for _, rec := range records {
		m.Upsert(rec)
	}
	return m
}

// Upsert stores rec, replacing any prior feedback for the same pair.
func (m FeedbackMap) Upsert(rec FeedbackRecord) {
	events, ok := m[rec.UserID]
	if !ok {
		events = make(map[string]Feedback)
		m[rec.UserID] = events
	}
	reasons := make([]string, len(rec.Reasons))
	copy(reasons, rec.Reasons)
	events[rec.EventID] = Feedback{Liked: rec.Liked, Reasons: reasons}
}

// ForUser returns the user's feedback keyed by event id (nil if none).
func (m FeedbackMap) ForUser(userID string) map[string]Feedback {
	return m[userID]
}

// HasFeedback reports whether the user has given any feedback.
func (m FeedbackMap) HasFeedback(userID string) bool {
	return len(m[userID]) > 0
}

// Records flattens the map back into rows ordered by user then event id.
func (m FeedbackMap) Records() []FeedbackRecord {
	users := make([]string, 0, len(m))
	for u := range m {
		users = append(users, u)
	}
	SortIDs(users)

	var out []FeedbackRecord
	for _, u := range users {
		events := make([]string, 0, len(m[u]))
		for e := range m[u] {
			events = append(events, e)
		}
		SortIDs(events)
		for _, e := range events {
			fb := m[u][e]
			out = append(out, FeedbackRecord{UserID: u, EventID: e, Liked: fb.Liked, Reasons: fb.Reasons})
		}
	}
	return out
}

// Event holds the event metadata the core reads.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`

	// Duration is the event length in hours.
	Duration float64 `json:"duration"`

	// Points is the reward a member earns for attending.
	Points int `json:"points"`

	Date string `json:"date,omitempty"`
}

// Registration records that a user signed up for an event.
type Registration struct {
	EventID string `json:"event_id"`
	UserID  string `json:"user_id"`
}

// Profile is a member or mentor profile.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
	Year string `json:"year,omitempty"`

	// Skills maps skill name to proficiency ("Beginner", "Intermediate", "Advanced").
	Skills map[string]string `json:"skills"`

	Interests  []string `json:"interests"`
	AIInterest bool     `json:"ai_interest"`

	// ExperienceYears is stored as free text; only a leading number is used.
	ExperienceYears string `json:"experience_years"`

	// PreferredMeeting is one of the configured meeting options, or free text.
	PreferredMeeting string `json:"preferred_meeting"`

	Points         int    `json:"points"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	LinkedInURL    string `json:"linked_in_url,omitempty"`
}

// Like is a "like" interaction from one user to another.
type Like struct {
	FromUser string  `json:"from_user"`
	ToUser   string  `json:"to_user"`
	Weight   float64 `json:"weight"`
}

// LikeCounts accumulates like weights sent by fromUser, keyed by recipient.
// A zero weight counts as a single like.
func LikeCounts(likes []Like, fromUser string) map[string]float64 {
	counts := make(map[string]float64)
	for _, l := range likes {
		if l.FromUser != fromUser {
			continue
		}
		w := l.Weight
		if w == 0 {
			w = 1
		}
		counts[l.ToUser] += w
	}
	return counts
}

// Clusters maps cluster index to the ids of its member events.
type Clusters map[int][]string

// Indices returns the cluster indices in ascending order.
func (c Clusters) Indices() []int {
	idx := make([]int, 0, len(c))
	for i := range c {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Members returns every clustered id, cluster by cluster.
func (c Clusters) Members() []string {
	var out []string
	for _, i := range c.Indices() {
		out = append(out, c[i]...)
	}
	return out
}

// MentorMatch is a ranked mentor with its score breakdown.
type MentorMatch struct {
	Mentor Profile `json:"mentor"`

	// Score is the blended match score.
	Score float64 `json:"score"`

	// PPR is the personalized PageRank score normalized to [0, 1].
	PPR float64 `json:"ppr"`

	// Cosine is the raw profile-vector cosine similarity.
	Cosine float64 `json:"cosine"`
}

// SortIDs orders ids the way object keys enumerate in the web client:
// integer-like ids first in ascending numeric order, then the rest lexically.
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		ni, iok := parseIndex(ids[i])
		nj, jok := parseIndex(ids[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return ids[i] < ids[j]
		}
	})
}

// parseIndex reports whether s is a canonical non-negative integer.
func parseIndex(s string) (uint64, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return n, true
}
