// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the process; it caches struct
// metadata and is safe for concurrent use. Field paths in error messages use
// koanf or json tag names so they match the configuration keys and row
// fields users actually see.
//
// Custom tags:
//   - reason: a feedback reason tag with no leading or trailing whitespace
//     and at most 64 characters
//
// Example:
//
//	type FeedbackInput struct {
//	    UserID  string   `json:"user_id" validate:"required"`
//	    Reasons []string `json:"reasons" validate:"max=20,dive,reason"`
//	}
//
//	if err := validation.ValidateStruct(&in); err != nil {
//	    return fmt.Errorf("invalid feedback: %w", err)
//	}
package validation
