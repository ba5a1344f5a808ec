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

// RecordCounts holds the row count of every community table.
type RecordCounts struct {
	Events        int64 `json:"events"`
	Feedback      int64 `json:"feedback"`
	Registrations int64 `json:"registrations"`
	Profiles      int64 `json:"profiles"`
	Likes         int64 `json:"likes"`
}

// Empty reports whether no community data has been stored yet.
func (c RecordCounts) Empty() bool {
	return c.Events == 0 && c.Feedback == 0 && c.Registrations == 0 && c.Profiles == 0 && c.Likes == 0
}

// ensureContext creates a context with 30-second timeout if none provided
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}

	return ctx, func() {}
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, "CHECKPOINT")
	if err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// GetDatabasePath returns the path to the database file
func (db *DB) GetDatabasePath() string {
	return db.cfg.Path
}

// GetRecordCounts returns the count of records in every community table
func (db *DB) GetRecordCounts(ctx context.Context) (RecordCounts, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var counts RecordCounts
	targets := []struct {
		table string
		dest  *int64
	}{
		{tableEvents, &counts.Events},
		{tableFeedback, &counts.Feedback},
		{tableRegistrations, &counts.Registrations},
		{tableProfiles, &counts.Profiles},
		{tableLikes, &counts.Likes},
	}
	for _, t := range targets {
		// Table names come from the constants above, never from input.
		if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dest); err != nil { //nolint:gosec
			return counts, fmt.Errorf("failed to count %s: %w", t.table, err)
		}
	}
	return counts, nil
}
