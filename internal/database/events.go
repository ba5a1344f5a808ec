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

// GetEvents returns the event catalog ordered by id.
func (db *DB) GetEvents(ctx context.Context) ([]recommend.Event, error) {
	events := []recommend.Event{}
	err := db.queryAll(ctx, "get_events", tableEvents,
		`SELECT id, title, description, location, duration, points, date FROM events ORDER BY id`,
		func(rows *sql.Rows) error {
			var ev recommend.Event
			if err := rows.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.Location, &ev.Duration, &ev.Points, &ev.Date); err != nil {
				return err
			}
			events = append(events, ev)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	return events, nil
}

// UpsertEvent inserts or replaces an event.
func (db *DB) UpsertEvent(ctx context.Context, ev *recommend.Event) error {
	if ev.ID == "" {
		return errors.New("upsert event: id is required")
	}
	if ev.Duration < 0 {
		return fmt.Errorf("upsert event %s: duration must not be negative", ev.ID)
	}

	err := db.exec(ctx, "upsert_event", tableEvents, `
		INSERT INTO events (id, title, description, location, duration, points, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			location = excluded.location,
			duration = excluded.duration,
			points = excluded.points,
			date = excluded.date`,
		ev.ID, ev.Title, ev.Description, ev.Location, ev.Duration, ev.Points, ev.Date)
	if err != nil {
		return fmt.Errorf("upsert event %s: %w", ev.ID, err)
	}
	return nil
}

// GetRegistrations returns every registration ordered by event then user.
func (db *DB) GetRegistrations(ctx context.Context) ([]recommend.Registration, error) {
	regs := []recommend.Registration{}
	err := db.queryAll(ctx, "get_registrations", tableRegistrations,
		`SELECT event_id, user_id FROM registrations ORDER BY event_id, user_id`,
		func(rows *sql.Rows) error {
			var r recommend.Registration
			if err := rows.Scan(&r.EventID, &r.UserID); err != nil {
				return err
			}
			regs = append(regs, r)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("get registrations: %w", err)
	}
	return regs, nil
}

// AddRegistration signs a user up for an event. Registering twice is a no-op.
func (db *DB) AddRegistration(ctx context.Context, reg recommend.Registration) error {
	if reg.EventID == "" || reg.UserID == "" {
		return errors.New("add registration: event id and user id are required")
	}
	err := db.exec(ctx, "add_registration", tableRegistrations,
		`INSERT INTO registrations (event_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		reg.EventID, reg.UserID)
	if err != nil {
		return fmt.Errorf("add registration: %w", err)
	}
	return nil
}
