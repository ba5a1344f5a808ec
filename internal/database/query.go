// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/commonground/internal/logging"
	"github.com/tomtom215/commonground/internal/metrics"
)

// queryAll runs query and hands every row to scan, recording latency and
// row-count metrics under operation and table.
func (db *DB) queryAll(ctx context.Context, operation, table, query string, scan func(*sql.Rows) error, args ...any) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	n, err := db.scanRows(ctx, query, scan, args...)
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	if err != nil {
		if isConnectionError(err) {
			logging.Error().Err(err).Str("table", table).Msg("Database connection lost")
		}
		return err
	}
	metrics.RecordDBRows(table, n)
	return nil
}

func (db *DB) scanRows(ctx context.Context, query string, scan func(*sql.Rows) error, args ...any) (int, error) {
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer closeWithLog(rows, nil, "rows")

	n := 0
	for rows.Next() {
		if err := scan(rows); err != nil {
			return n, err
		}
		n++
	}
	return n, rows.Err()
}

// exec runs a write statement with metrics, retrying once on a DuckDB
// transaction conflict.
func (db *DB) exec(ctx context.Context, operation, table, stmt string, args ...any) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, stmt, args...)
	if isTransactionConflict(err) {
		_, err = db.conn.ExecContext(ctx, stmt, args...)
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	return err
}

// encodeJSON marshals a list-valued column. Nil slices and maps are stored
// as their empty JSON form.
func encodeJSON(v any, empty string) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode column: %w", err)
	}
	if string(b) == "null" {
		return empty, nil
	}
	return string(b), nil
}

// decodeJSON unmarshals a list-valued column into dest. Blank text leaves
// dest untouched.
func decodeJSON(raw string, dest any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("decode column: %w", err)
	}
	return nil
}
