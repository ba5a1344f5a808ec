// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/commonground/internal/logging"
	"github.com/tomtom215/commonground/internal/recommend"
)

// sampleEvents is a small campus calendar covering every location class.
var sampleEvents = []recommend.Event{
	{ID: "1", Title: "Intro to Python Workshop", Description: "Hands-on coding basics", Location: "Engineering Building Room 101", Duration: 2, Points: 20, Date: "2026-09-04"},
	{ID: "2", Title: "Virtual Coffee Chat", Description: "Meet other members online", Location: "Zoom", Duration: 1, Points: 5, Date: "2026-09-06"},
	{ID: "3", Title: "Career Fair", Description: "Recruiters from local companies", Location: "Student Union Ballroom", Duration: 3, Points: 60, Date: "2026-09-10"},
	{ID: "4", Title: "Board Game Night", Description: "Casual games and snacks", Location: "Downtown Cafe", Duration: 2.5, Points: 10, Date: "2026-09-12"},
	{ID: "5", Title: "Machine Learning Study Group", Description: "Paper reading session", Location: "Science Library", Duration: 1.5, Points: 15, Date: "2026-09-15"},
	{ID: "6", Title: "Resume Review Webinar", Description: "Live feedback on resumes", Location: "Online via Teams", Duration: 1, Points: 25, Date: "2026-09-18"},
}

var sampleProfiles = []recommend.Profile{
	{
		ID:               "alice",
		Name:             "Alice Chen",
		Year:             "Sophomore",
		Skills:           map[string]string{"Python": "Intermediate", "Data Analysis": "Beginner"},
		Interests:        []string{"Machine Learning", "Data Science"},
		AIInterest:       true,
		ExperienceYears:  "1",
		PreferredMeeting: "Virtual",
		Points:           120,
	},
	{
		ID:               "bob",
		Name:             "Bob Martinez",
		Year:             "Senior",
		Skills:           map[string]string{"Python": "Advanced", "Machine Learning": "Advanced", "Data Analysis": "Intermediate"},
		Interests:        []string{"Machine Learning", "Research"},
		AIInterest:       true,
		ExperienceYears:  "4 years",
		PreferredMeeting: "Virtual",
		Points:           340,
	},
	{
		ID:               "carol",
		Name:             "Carol Okafor",
		Year:             "Graduate",
		Skills:           map[string]string{"Web Development": "Advanced", "JavaScript": "Advanced"},
		Interests:        []string{"Web Development", "Entrepreneurship"},
		ExperienceYears:  "6",
		PreferredMeeting: "In-Person",
		Points:           410,
	},
	{
		ID:               "dan",
		Name:             "Dan Novak",
		Year:             "Junior",
		Skills:           map[string]string{"Python": "Intermediate", "Public Speaking": "Advanced"},
		Interests:        []string{"Data Science", "Entrepreneurship"},
		ExperienceYears:  "2",
		PreferredMeeting: "Hybrid",
		Points:           95,
	},
}

var sampleFeedback = []recommend.FeedbackRecord{
	{UserID: "alice", EventID: "1", Liked: true, Reasons: []string{"educational", "well_organized"}},
	{UserID: "alice", EventID: "2", Liked: false, Reasons: []string{"boring"}},
	{UserID: "bob", EventID: "1", Liked: true, Reasons: []string{"educational"}},
	{UserID: "bob", EventID: "5", Liked: true, Reasons: []string{"educational", "networking"}},
	{UserID: "dan", EventID: "3", Liked: true, Reasons: []string{"career", "networking"}},
	{UserID: "dan", EventID: "4", Liked: true, Reasons: []string{"fun", "social"}},
}

var sampleRegistrations = []recommend.Registration{
	{EventID: "1", UserID: "alice"},
	{EventID: "1", UserID: "bob"},
	{EventID: "3", UserID: "dan"},
	{EventID: "3", UserID: "carol"},
	{EventID: "5", UserID: "bob"},
}

var sampleLikes = []recommend.Like{
	{FromUser: "alice", ToUser: "bob", Weight: 1},
	{FromUser: "bob", ToUser: "carol", Weight: 1},
	{FromUser: "dan", ToUser: "carol", Weight: 2},
	{FromUser: "carol", ToUser: "bob", Weight: 1},
}

// SeedSampleData loads a small sample community for demos and local
// development. Tables that already hold data are left alone: seeding only
// happens when the whole database is empty.
func (db *DB) SeedSampleData(ctx context.Context) error {
	counts, err := db.GetRecordCounts(ctx)
	if err != nil {
		return err
	}
	if !counts.Empty() {
		logging.Debug().Msg("Database already holds community data, skipping sample seed")
		return nil
	}

	logging.Info().Msg("Seeding database with sample community data...")

	for i := range sampleEvents {
		if err := db.UpsertEvent(ctx, &sampleEvents[i]); err != nil {
			return fmt.Errorf("seed events: %w", err)
		}
	}
	for i := range sampleProfiles {
		if err := db.UpsertProfile(ctx, &sampleProfiles[i]); err != nil {
			return fmt.Errorf("seed profiles: %w", err)
		}
	}
	for i := range sampleFeedback {
		if err := db.UpsertFeedback(ctx, &sampleFeedback[i]); err != nil {
			return fmt.Errorf("seed feedback: %w", err)
		}
	}
	for _, reg := range sampleRegistrations {
		if err := db.AddRegistration(ctx, reg); err != nil {
			return fmt.Errorf("seed registrations: %w", err)
		}
	}
	for _, like := range sampleLikes {
		if err := db.AddLike(ctx, like); err != nil {
			return fmt.Errorf("seed likes: %w", err)
		}
	}

	logging.Info().
		Int("events", len(sampleEvents)).
		Int("profiles", len(sampleProfiles)).
		Int("feedback", len(sampleFeedback)).
		Msg("Sample data seeded")
	return nil
}
