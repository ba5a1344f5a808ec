// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

// Package ranking orders candidates for a user.
//
// Events are scored by the dot product of the user's preference vector with
// each unseen clustered event. Mentors are ranked by a blend of personalized
// PageRank over a similarity-and-likes graph and raw profile cosine
// similarity. Both rankings are stable: equal scores keep encounter order.
package ranking
