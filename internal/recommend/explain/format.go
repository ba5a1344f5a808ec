// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package explain

import (
	"html"
	"strings"
)

// FormatText joins clause details into one paragraph.
func FormatText(clauses []Clause) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if d := strings.TrimSpace(c.Detail); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}

// FormatMarkup renders clauses as an HTML list. All text is escaped.
func FormatMarkup(clauses []Clause) string {
	var b strings.Builder
	b.WriteString(`<ul class="explanation">`)
	for _, c := range clauses {
		b.WriteString(`<li data-category="`)
		b.WriteString(html.EscapeString(string(c.Category)))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(c.Detail))
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
	return b.String()
}

// FormatSentence renders mentor clauses as "We matched you because A, B,
// and C." A lone compatibility clause becomes
// "We matched you based on overall compatibility."
func FormatSentence(clauses []Clause) string {
	var parts []string
	for _, c := range clauses {
		if c.Category == CategoryCompatibility {
			continue
		}
		if d := strings.TrimSpace(c.Detail); d != "" {
			parts = append(parts, d)
		}
	}
	if len(parts) == 0 {
		return "We matched you based on overall compatibility."
	}
	return "We matched you because " + joinList(parts) + "."
}

// joinList renders "a", "a and b" or "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
