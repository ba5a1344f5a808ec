// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package database

import (
	"context"
	"fmt"
	"time"
)

// Table names, also used as metric labels.
const (
	tableEvents        = "events"
	tableFeedback      = "feedback"
	tableRegistrations = "registrations"
	tableProfiles      = "profiles"
	tableLikes         = "likes"
)

// schemaContext bounds DDL executed during initialization.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// List-valued columns (reasons, skills, interests) are stored as JSON text so
// the rows stay readable from the DuckDB CLI.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		duration DOUBLE NOT NULL DEFAULT 0,
		points INTEGER NOT NULL DEFAULT 0,
		date TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
	`CREATE TABLE IF NOT EXISTS feedback (
		user_id TEXT NOT NULL,
		event_id TEXT NOT NULL,
		liked BOOLEAN NOT NULL,
		reasons TEXT NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (user_id, event_id)
	);`,
	`CREATE TABLE IF NOT EXISTS registrations (
		event_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (event_id, user_id)
	);`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		year TEXT NOT NULL DEFAULT '',
		skills TEXT NOT NULL DEFAULT '{}',
		interests TEXT NOT NULL DEFAULT '[]',
		ai_interest BOOLEAN NOT NULL DEFAULT false,
		experience_years TEXT NOT NULL DEFAULT '',
		preferred_meeting TEXT NOT NULL DEFAULT '',
		points INTEGER NOT NULL DEFAULT 0,
		profile_picture TEXT NOT NULL DEFAULT '',
		linked_in_url TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS likes (
		from_user TEXT NOT NULL,
		to_user TEXT NOT NULL,
		weight DOUBLE NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
}

// createTables creates the base tables.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
