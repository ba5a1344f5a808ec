// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/validation"
)

// GetFeedback returns every feedback record ordered by user then event.
func (db *DB) GetFeedback(ctx context.Context) ([]recommend.FeedbackRecord, error) {
	records := []recommend.FeedbackRecord{}
	err := db.queryAll(ctx, "get_feedback", tableFeedback,
		`SELECT user_id, event_id, liked, reasons FROM feedback ORDER BY user_id, event_id`,
		func(rows *sql.Rows) error {
			var rec recommend.FeedbackRecord
			var reasons string
			if err := rows.Scan(&rec.UserID, &rec.EventID, &rec.Liked, &reasons); err != nil {
				return err
			}
			if err := decodeJSON(reasons, &rec.Reasons); err != nil {
				return fmt.Errorf("feedback %s/%s: %w", rec.UserID, rec.EventID, err)
			}
			records = append(records, rec)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return records, nil
}

// UpsertFeedback stores a user's verdict on an event, replacing any earlier
// verdict for the same pair.
func (db *DB) UpsertFeedback(ctx context.Context, rec *recommend.FeedbackRecord) error {
	if err := validation.ValidateStruct(rec); err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	reasons, err := encodeJSON(rec.Reasons, "[]")
	if err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}

	err = db.exec(ctx, "upsert_feedback", tableFeedback, `
		INSERT INTO feedback (user_id, event_id, liked, reasons, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, event_id) DO UPDATE SET
			liked = excluded.liked,
			reasons = excluded.reasons,
			updated_at = excluded.updated_at`,
		rec.UserID, rec.EventID, rec.Liked, reasons)
	if err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}
	return nil
}

// DeleteFeedback removes a user's verdict on an event. Deleting a missing
// pair is not an error.
func (db *DB) DeleteFeedback(ctx context.Context, userID, eventID string) error {
	err := db.exec(ctx, "delete_feedback", tableFeedback,
		`DELETE FROM feedback WHERE user_id = ? AND event_id = ?`, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}
