// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package explain

import (
	"fmt"
	"sort"

	"github.com/tomtom215/commonground/internal/recommend"
)

// maxSharedItems limits how many shared skills or interests one clause names.
const maxSharedItems = 2

// MentorExplanation explains why a mentor was matched.
type MentorExplanation struct {
	MentorID string   `json:"mentor_id"`
	Clauses  []Clause `json:"clauses"`
}

// Mentor explains a match between user and mentor. Shared skills follow
// skillOrder (then name), shared interests follow the user's own order.
// With nothing in common the explanation holds a single compatibility clause.
func Mentor(user, mentor *recommend.Profile, skillOrder []string) MentorExplanation {
	var clauses []Clause

	if skills := sharedSkills(user, mentor, skillOrder); len(skills) > 0 {
		clauses = append(clauses, Clause{
			Category: CategorySharedSkills,
			Detail:   fmt.Sprintf("you both know %s", joinList(skills)),
			Items:    skills,
		})
	}

	if interests := sharedInterests(user, mentor); len(interests) > 0 {
		clauses = append(clauses, Clause{
			Category: CategorySharedInterests,
			Detail:   fmt.Sprintf("you're both interested in %s", joinList(interests)),
			Items:    interests,
		})
	}

	if user.PreferredMeeting != "" && user.PreferredMeeting == mentor.PreferredMeeting {
		clauses = append(clauses, Clause{
			Category: CategoryMeeting,
			Detail:   fmt.Sprintf("you both prefer to meet via %s", user.PreferredMeeting),
			Items:    []string{user.PreferredMeeting},
		})
	}

	if user.AIInterest && mentor.AIInterest {
		clauses = append(clauses, Clause{
			Category: CategoryAIInterest,
			Detail:   "you share an interest in AI",
		})
	}

	if len(clauses) == 0 {
		clauses = append(clauses, Clause{
			Category: CategoryCompatibility,
			Detail:   "overall compatibility",
		})
	}

	return MentorExplanation{MentorID: mentor.ID, Clauses: clauses}
}

func sharedSkills(user, mentor *recommend.Profile, order []string) []string {
	rank := make(map[string]int, len(order))
	for i, s := range order {
		rank[s] = i
	}

	var shared []string
	for s := range user.Skills {
		if _, ok := mentor.Skills[s]; ok {
			shared = append(shared, s)
		}
	}
	sort.Slice(shared, func(i, j int) bool {
		ri, iok := rank[shared[i]]
		rj, jok := rank[shared[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return shared[i] < shared[j]
		}
	})
	if len(shared) > maxSharedItems {
		shared = shared[:maxSharedItems]
	}
	return shared
}

func sharedInterests(user, mentor *recommend.Profile) []string {
	theirs := make(map[string]struct{}, len(mentor.Interests))
	for _, i := range mentor.Interests {
		theirs[i] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{})
	for _, i := range user.Interests {
		if _, ok := theirs[i]; !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		shared = append(shared, i)
		if len(shared) == maxSharedItems {
			break
		}
	}
	return shared
}
