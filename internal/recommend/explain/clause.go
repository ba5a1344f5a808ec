// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package explain

// Category identifies why a clause applies.
type Category string

// Event categories.
const (
	CategoryVirtual         Category = "virtual"
	CategoryAcademic        Category = "academic"
	CategoryHub             Category = "hub"
	CategoryShortDuration   Category = "short_duration"
	CategoryLongDuration    Category = "long_duration"
	CategoryWorkshop        Category = "workshop"
	CategoryNetworking      Category = "networking"
	CategoryCareer          Category = "career"
	CategorySocial          Category = "social"
	CategoryTech            Category = "tech"
	CategoryQuality         Category = "quality"
	CategoryFavoriteReasons Category = "favorite_reasons"
	CategoryGeneric         Category = "generic"
)

// Mentor match categories.
const (
	CategorySharedSkills    Category = "shared_skills"
	CategorySharedInterests Category = "shared_interests"
	CategoryMeeting         Category = "meeting"
	CategoryAIInterest      Category = "ai_interest"
	CategoryCompatibility   Category = "compatibility"
)

// Clause is one reason in an explanation.
type Clause struct {
	Category Category `json:"category"`

	// Detail is the rendered reason, without trailing punctuation for
	// mentor clauses and as a full sentence for event clauses.
	Detail string `json:"detail"`

	// Reason is the user's liked-feedback tag this clause echoes, if any.
	Reason string `json:"reason,omitempty"`

	// Items are the shared values behind the clause (skills, interests,
	// reasons) in display order.
	Items []string `json:"items,omitempty"`
}

// Categories returns the category of each clause in order.
func Categories(clauses []Clause) []Category {
	out := make([]Category, len(clauses))
	for i, c := range clauses {
		out[i] = c.Category
	}
	return out
}
