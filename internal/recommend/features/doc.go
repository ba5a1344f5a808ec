// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package features turns raw rows into the feature vectors used by the
// ranking pipelines.
//
// Events are described by sparse vectors: reason tallies from every user's
// feedback, a single location bucket, and min-max normalized duration and
// attendance. Users are described by a preference vector built from the
// events they liked. Mentor profiles are encoded as fixed-length dense
// vectors whose blocks are scaled by caller-supplied weights.
package features
