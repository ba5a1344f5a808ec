// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package explain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/features"
)

// EventExplanation explains why an event was recommended.
type EventExplanation struct {
	EventID string   `json:"event_id"`
	Clauses []Clause `json:"clauses"`
}

// keywordRule fires a category when its pattern matches the event text.
type keywordRule struct {
	category Category
	pattern  *regexp.Regexp
	detail   string
}

func wordPattern(words ...string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)s?\b`)
}

var (
	hubPattern = wordPattern("hub", "center", "centre", "commons")

	keywordRules = []keywordRule{
		{CategoryWorkshop, wordPattern("workshop", "hands-on", "bootcamp", "tutorial", "lab"),
			"It's a hands-on workshop where you can build something."},
		{CategoryNetworking, wordPattern("networking", "network", "meetup", "meet-up", "mixer"),
			"It's a chance to meet and network with other members."},
		{CategoryCareer, wordPattern("career", "resume", "interview", "internship", "job", "recruiting"),
			"It can help you move your career forward."},
		{CategorySocial, wordPattern("social", "party", "hangout", "games", "game night", "pizza", "snacks"),
			"It's a relaxed social event."},
		{CategoryTech, wordPattern("tech", "coding", "code", "hackathon", "programming", "software", "ai", "data"),
			"It's focused on technology and building things."},
	}

	// relatedReasons links categories to the feedback tags members use for
	// the same qualities.
	relatedReasons = map[Category][]string{
		CategoryVirtual:       {"online", "virtual", "remote", "convenient"},
		CategoryAcademic:      {"campus", "location", "convenient"},
		CategoryHub:           {"location", "community", "convenient"},
		CategoryShortDuration: {"short", "quick", "convenient"},
		CategoryLongDuration:  {"in-depth", "detailed", "long"},
		CategoryWorkshop:      {"hands-on", "learning", "educational", "informative"},
		CategoryNetworking:    {"networking", "people", "connections"},
		CategoryCareer:        {"career", "professional", "useful"},
		CategorySocial:        {"fun", "social", "food", "friends"},
		CategoryTech:          {"tech", "coding", "learning", "informative"},
		CategoryQuality:       {"points", "rewards", "worth it"},
	}
)

// EventOptions carries the thresholds and collaborators Event needs.
type EventOptions struct {
	Classifier *features.LocationClassifier
	Thresholds recommend.ExplainConfig
}

// Event explains a recommended event from its metadata and the user's liked
// feedback reasons. likedReasons maps reason tag to how often the user cited
// it on liked events.
//
// Categories are checked in a fixed order: location, duration, keyword
// categories, then points. When none fires the explanation falls back to the
// user's favorite reasons, or a generic clause if the user has none.
//
//nolint:gocritic // event is a value snapshot
func Event(event recommend.Event, likedReasons map[string]int, opts EventOptions) EventExplanation {
	var clauses []Clause
	add := func(cat Category, detail string) {
		c := Clause{Category: cat, Detail: detail}
		if reason := echoReason(cat, likedReasons); reason != "" {
			c.Reason = reason
			c.Detail = fmt.Sprintf("%s You've said you like events that are %s.", detail, reason)
		}
		clauses = append(clauses, c)
	}

	location := strings.TrimSpace(event.Location)
	text := strings.ToLower(event.Title + " " + event.Description)

	switch {
	case opts.Classifier != nil && opts.Classifier.IsVirtual(location):
		add(CategoryVirtual, "It's online, so you can join from anywhere.")
	case opts.Classifier != nil && opts.Classifier.IsAcademic(location):
		add(CategoryAcademic, fmt.Sprintf("It's on campus at %s.", location))
	}
	if hubPattern.MatchString(strings.ToLower(location)) || hubPattern.MatchString(text) {
		add(CategoryHub, "It's hosted at a community hub.")
	}

	t := opts.Thresholds
	switch {
	case event.Duration > 0 && event.Duration <= t.ShortDurationHours:
		add(CategoryShortDuration, "It's short and easy to fit into your day.")
	case event.Duration >= t.LongDurationHours && t.LongDurationHours > 0:
		add(CategoryLongDuration, fmt.Sprintf("It runs %s, so there's time to go in depth.", formatHours(event.Duration)))
	}

	for _, rule := range keywordRules {
		if rule.pattern.MatchString(text) {
			add(rule.category, rule.detail)
		}
	}

	if t.QualityPoints > 0 && event.Points >= t.QualityPoints {
		add(CategoryQuality, fmt.Sprintf("It's worth %d points.", event.Points))
	}

	if len(clauses) == 0 {
		clauses = append(clauses, fallbackClause(likedReasons, t.FavoriteReasons))
	}

	return EventExplanation{EventID: event.ID, Clauses: clauses}
}

// echoReason returns the user's most cited liked reason related to cat.
func echoReason(cat Category, likedReasons map[string]int) string {
	best, bestCount := "", 0
	for _, r := range relatedReasons[cat] {
		n := likedReasons[r]
		if n > bestCount || (n == bestCount && n > 0 && r < best) {
			best, bestCount = r, n
		}
	}
	return best
}

// fallbackClause lists the user's favorite reasons, or a generic line.
func fallbackClause(likedReasons map[string]int, limit int) Clause {
	top := TopReasons(likedReasons, limit)
	if len(top) == 0 {
		return Clause{
			Category: CategoryGeneric,
			Detail:   "It's popular with members who share your interests.",
		}
	}
	return Clause{
		Category: CategoryFavoriteReasons,
		Detail:   fmt.Sprintf("You often enjoy events that are %s.", joinList(top)),
		Items:    top,
	}
}

// TopReasons returns up to limit reasons ordered by count, highest first,
// then by name.
func TopReasons(counts map[string]int, limit int) []string {
	reasons := make([]string, 0, len(counts))
	for r, n := range counts {
		if n > 0 {
			reasons = append(reasons, r)
		}
	}
	sort.Slice(reasons, func(i, j int) bool {
		if counts[reasons[i]] != counts[reasons[j]] {
			return counts[reasons[i]] > counts[reasons[j]]
		}
		return reasons[i] < reasons[j]
	})
	if limit > 0 && len(reasons) > limit {
		reasons = reasons[:limit]
	}
	return reasons
}

func formatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%d hours", int(h))
	}
	return fmt.Sprintf("%.1f hours", h)
}
