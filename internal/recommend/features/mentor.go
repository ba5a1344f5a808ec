// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package features

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tomtom215/commonground/internal/recommend"
)

// Skill proficiency scores.
const (
	LevelBeginner     = 0.33
	LevelIntermediate = 0.66
	LevelAdvanced     = 1.0
)

var skillLevels = map[string]float64{
	"Beginner":     LevelBeginner,
	"Intermediate": LevelIntermediate,
	"Advanced":     LevelAdvanced,
}

// leadingNumber captures the numeric prefix of values like "3", "2.5 years"
// or "10+".
var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// MentorVectorizer encodes profiles into fixed-length vectors over global
// skill, interest and meeting vocabularies. The layout is
// [skills | interests | ai | experience | meeting].
type MentorVectorizer struct {
	skills        []string
	interests     []string
	meeting       []string
	experienceCap float64
}

// NewMentorVectorizer builds a vectorizer from the mentor configuration.
func NewMentorVectorizer(cfg recommend.MentorConfig) *MentorVectorizer {
	capYears := cfg.ExperienceCap
	if capYears <= 0 {
		capYears = recommend.DefaultConfig().Mentor.ExperienceCap
	}
	return &MentorVectorizer{
		skills:        append([]string(nil), cfg.Skills...),
		interests:     append([]string(nil), cfg.Interests...),
		meeting:       append([]string(nil), cfg.MeetingOptions...),
		experienceCap: capYears,
	}
}

// Dim returns the length of every vector this vectorizer produces.
func (v *MentorVectorizer) Dim() int {
	return len(v.skills) + len(v.interests) + 1 + 1 + len(v.meeting)
}

// EncodeSkills scores each global skill by the profile's stated proficiency.
// Absent or unrecognized levels score 0.
func (v *MentorVectorizer) EncodeSkills(p *recommend.Profile) []float64 {
	return EncodeSkills(p, v.skills)
}

// EncodeSkills scores each skill in skills by the profile's stated proficiency.
func EncodeSkills(p *recommend.Profile, skills []string) []float64 {
	out := make([]float64, len(skills))
	for i, s := range skills {
		level, ok := p.Skills[s]
		if !ok {
			continue
		}
		out[i] = skillLevels[strings.TrimSpace(level)]
	}
	return out
}

// EncodeInterests marks each global interest the profile lists with 1.
func (v *MentorVectorizer) EncodeInterests(p *recommend.Profile) []float64 {
	have := make(map[string]struct{}, len(p.Interests))
	for _, i := range p.Interests {
		have[i] = struct{}{}
	}
	out := make([]float64, len(v.interests))
	for i, interest := range v.interests {
		if _, ok := have[interest]; ok {
			out[i] = 1
		}
	}
	return out
}

// EncodeAI returns 1 when the profile declares an interest in AI.
func (v *MentorVectorizer) EncodeAI(p *recommend.Profile) float64 {
	if p.AIInterest {
		return 1
	}
	return 0
}

// EncodeExperience converts the profile's years of experience to [0, 1]
// against the configured cap. Values without a leading number score 0.
func (v *MentorVectorizer) EncodeExperience(p *recommend.Profile) float64 {
	return EncodeExperience(p.ExperienceYears, v.experienceCap)
}

// EncodeExperience parses the leading number of years and divides it by
// capYears, clamping the result to [0, 1].
func EncodeExperience(years string, capYears float64) float64 {
	m := leadingNumber.FindStringSubmatch(years)
	if m == nil || capYears <= 0 {
		return 0
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	score := n / capYears
	if score > 1 {
		return 1
	}
	return score
}

// EncodeMeeting one-hot encodes the preferred meeting type. A preference that
// matches no option exactly yields all zeros.
func (v *MentorVectorizer) EncodeMeeting(p *recommend.Profile) []float64 {
	out := make([]float64, len(v.meeting))
	for i, opt := range v.meeting {
		if p.PreferredMeeting == opt {
			out[i] = 1
			break
		}
	}
	return out
}

// Vectorize concatenates all blocks, each scaled by its weight.
func (v *MentorVectorizer) Vectorize(p *recommend.Profile, w recommend.MentorWeights) []float64 {
	out := make([]float64, 0, v.Dim())
	for _, x := range v.EncodeSkills(p) {
		out = append(out, x*w.Skills)
	}
	for _, x := range v.EncodeInterests(p) {
		out = append(out, x*w.Interests)
	}
	out = append(out, v.EncodeAI(p)*w.AIInterest, v.EncodeExperience(p)*w.ExperienceYears)
	for _, x := range v.EncodeMeeting(p) {
		out = append(out, x*w.PreferredMeeting)
	}
	return out
}

// VectorizeAll encodes profiles in order.
func (v *MentorVectorizer) VectorizeAll(profiles []recommend.Profile, w recommend.MentorWeights) [][]float64 {
	out := make([][]float64, len(profiles))
	for i := range profiles {
		out[i] = v.Vectorize(&profiles[i], w)
	}
	return out
}
