// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomtom215/commonground/internal/recommend"
)

// GetProfiles returns every profile ordered by id.
func (db *DB) GetProfiles(ctx context.Context) ([]recommend.Profile, error) {
	profiles := []recommend.Profile{}
	err := db.queryAll(ctx, "get_profiles", tableProfiles, `
		SELECT id, name, bio, year, skills, interests, ai_interest,
			experience_years, preferred_meeting, points, profile_picture, linked_in_url
		FROM profiles ORDER BY id`,
		func(rows *sql.Rows) error {
			var p recommend.Profile
			var skills, interests string
			if err := rows.Scan(&p.ID, &p.Name, &p.Bio, &p.Year, &skills, &interests, &p.AIInterest,
				&p.ExperienceYears, &p.PreferredMeeting, &p.Points, &p.ProfilePicture, &p.LinkedInURL); err != nil {
				return err
			}
			if err := decodeJSON(skills, &p.Skills); err != nil {
				return fmt.Errorf("profile %s skills: %w", p.ID, err)
			}
			if err := decodeJSON(interests, &p.Interests); err != nil {
				return fmt.Errorf("profile %s interests: %w", p.ID, err)
			}
			profiles = append(profiles, p)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	return profiles, nil
}

// UpsertProfile inserts or replaces a profile.
func (db *DB) UpsertProfile(ctx context.Context, p *recommend.Profile) error {
	if p.ID == "" {
		return errors.New("upsert profile: id is required")
	}
	skills, err := encodeJSON(p.Skills, "{}")
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.ID, err)
	}
	interests, err := encodeJSON(p.Interests, "[]")
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.ID, err)
	}

	err = db.exec(ctx, "upsert_profile", tableProfiles, `
		INSERT INTO profiles (id, name, bio, year, skills, interests, ai_interest,
			experience_years, preferred_meeting, points, profile_picture, linked_in_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			bio = excluded.bio,
			year = excluded.year,
			skills = excluded.skills,
			interests = excluded.interests,
			ai_interest = excluded.ai_interest,
			experience_years = excluded.experience_years,
			preferred_meeting = excluded.preferred_meeting,
			points = excluded.points,
			profile_picture = excluded.profile_picture,
			linked_in_url = excluded.linked_in_url`,
		p.ID, p.Name, p.Bio, p.Year, skills, interests, p.AIInterest,
		p.ExperienceYears, p.PreferredMeeting, p.Points, p.ProfilePicture, p.LinkedInURL)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", p.ID, err)
	}
	return nil
}

// GetLikes returns every like interaction in insertion order.
func (db *DB) GetLikes(ctx context.Context) ([]recommend.Like, error) {
	likes := []recommend.Like{}
	err := db.queryAll(ctx, "get_likes", tableLikes,
		`SELECT from_user, to_user, weight FROM likes ORDER BY created_at, from_user, to_user`,
		func(rows *sql.Rows) error {
			var l recommend.Like
			if err := rows.Scan(&l.FromUser, &l.ToUser, &l.Weight); err != nil {
				return err
			}
			likes = append(likes, l)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("get likes: %w", err)
	}
	return likes, nil
}

// AddLike records a like from one user to another. A zero weight is stored
// as a single like.
func (db *DB) AddLike(ctx context.Context, like recommend.Like) error {
	if like.FromUser == "" || like.ToUser == "" {
		return errors.New("add like: from_user and to_user are required")
	}
	if like.Weight < 0 {
		return errors.New("add like: weight must not be negative")
	}
	if like.Weight == 0 {
		like.Weight = 1
	}
	err := db.exec(ctx, "add_like", tableLikes,
		`INSERT INTO likes (from_user, to_user, weight) VALUES (?, ?, ?)`,
		like.FromUser, like.ToUser, like.Weight)
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	return nil
}
