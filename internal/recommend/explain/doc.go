// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package explain produces human-readable reasons for recommendations.
//
// Explanations are built as ordered lists of Clause values, each tagged with
// a Category. Rendering is separate: FormatText, FormatMarkup and
// FormatSentence turn clauses into plain text, escaped HTML or a single
// sentence. Callers and tests can reason about the categories without
// parsing prose.
package explain
