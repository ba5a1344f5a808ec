// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package features

import (
	"testing"

	"github.com/tomtom215/commonground/internal/recommend"
)

func TestLocationClassifier_Classify(t *testing.T) {
	c := NewLocationClassifier(recommend.DefaultConfig().Events)

	tests := []struct {
		location string
		want     string
	}{
		{"Zoom link", recommend.FeatureLocVirtual},
		{"  ONLINE  ", recommend.FeatureLocVirtual},
		{"Remote (Discord)", recommend.FeatureLocVirtual},
		{"Engineering Building Room 204", recommend.FeatureLocAcademic},
		{"Science Center rm 12", recommend.FeatureLocAcademic},
		{"Library, Room #3B", recommend.FeatureLocAcademic},
		{"Student Union", recommend.FeatureLocAcademic},
		{"Joe's Coffee Shop", recommend.FeatureLocOther},
		{"Room 101", recommend.FeatureLocOther},
		{"", recommend.FeatureLocOther},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := c.Classify(tt.location); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.location, got, tt.want)
			}
		})
	}
}

func TestLocationClassifier_VirtualWins(t *testing.T) {
	c := NewLocationClassifier(recommend.DefaultConfig().Events)
	loc := "Library Room 2 and on Zoom"
	if !c.IsVirtual(loc) {
		t.Errorf("IsVirtual(%q) = false, want true", loc)
	}
	if c.IsAcademic(loc) {
		t.Errorf("IsAcademic(%q) = true, want false", loc)
	}
}

func TestLocationClassifier_CustomKeywords(t *testing.T) {
	c := NewLocationClassifier(recommend.EventConfig{
		VirtualKeywords:   []string{"Teams", " "},
		AcademicBuildings: []string{"Hall of Records"},
	})

	if got := c.Classify("MS Teams call"); got != recommend.FeatureLocVirtual {
		t.Errorf("Classify(MS Teams call) = %q, want virtual", got)
	}
	if got := c.Classify("hall of records rm. 4"); got != recommend.FeatureLocAcademic {
		t.Errorf("Classify(hall of records rm. 4) = %q, want academic", got)
	}
	// A blank keyword must not match everything.
	if got := c.Classify("Park"); got != recommend.FeatureLocOther {
		t.Errorf("Classify(Park) = %q, want other", got)
	}
}
