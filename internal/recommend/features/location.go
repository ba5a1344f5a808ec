// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package features

import (
	"regexp"
	"strings"

	"github.com/tomtom215/commonground/internal/recommend"
)

// roomSuffix matches a trailing room designation such as "Room 204",
// "rm. 12B" or ", Room #3".
var roomSuffix = regexp.MustCompile(`[\s,\-]*\b(?:room|rm)\.?\s*#?\s*\d+[a-z]?\s*$`)

// LocationClassifier buckets free-text event locations.
type LocationClassifier struct {
	virtual  []string
	academic []string
}

// NewLocationClassifier builds a classifier from keyword lists. Keywords are
// matched case-insensitively; empty entries are ignored.
func NewLocationClassifier(cfg recommend.EventConfig) *LocationClassifier {
	return &LocationClassifier{
		virtual:  lowerAll(cfg.VirtualKeywords),
		academic: lowerAll(cfg.AcademicBuildings),
	}
}

// Classify returns recommend.FeatureLocVirtual when the location mentions a
// virtual keyword, recommend.FeatureLocAcademic when it names a known campus
// building once any trailing room number is removed, and
// recommend.FeatureLocOther otherwise.
func (c *LocationClassifier) Classify(location string) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return recommend.FeatureLocOther
	}

	for _, kw := range c.virtual {
		if strings.Contains(loc, kw) {
			return recommend.FeatureLocVirtual
		}
	}

	building := strings.TrimSpace(roomSuffix.ReplaceAllString(loc, ""))
	for _, name := range c.academic {
		if strings.Contains(building, name) {
			return recommend.FeatureLocAcademic
		}
	}

	return recommend.FeatureLocOther
}

// IsVirtual reports whether location classifies as virtual.
func (c *LocationClassifier) IsVirtual(location string) bool {
	return c.Classify(location) == recommend.FeatureLocVirtual
}

// IsAcademic reports whether location classifies as academic.
func (c *LocationClassifier) IsAcademic(location string) bool {
	return c.Classify(location) == recommend.FeatureLocAcademic
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
