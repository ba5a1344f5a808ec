// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package recommend

import (
	"fmt"
)

// Config contains all tunables of the recommendation and matching core.
// Nothing here is read from package-level state: callers thread a Config
// (or the relevant sub-struct) through every call.
type Config struct {
	// Events configures event vectorization.
	Events EventConfig `json:"events" koanf:"events"`

	// KMeans configures event clustering.
	KMeans KMeansConfig `json:"kmeans" koanf:"kmeans"`

	// Mentor configures mentor profile vectorization.
	Mentor MentorConfig `json:"mentor" koanf:"mentor"`

	// Graph configures the mentor adjacency graph and score blend.
	Graph GraphConfig `json:"graph" koanf:"graph"`

	// PageRank configures the personalized PageRank iteration.
	PageRank PageRankConfig `json:"pagerank" koanf:"pagerank"`

	// Explain configures explanation heuristics.
	Explain ExplainConfig `json:"explain" koanf:"explain"`

	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// EventConfig contains location classification keyword lists.
type EventConfig struct {
	// VirtualKeywords mark a location as virtual when any is a substring.
	// Default: zoom, online, virtual, remote.
	VirtualKeywords []string `json:"virtual_keywords" koanf:"virtual_keywords"`

	// AcademicBuildings mark a location as academic when any is a substring
	// of the location with its trailing room number removed.
	AcademicBuildings []string `json:"academic_buildings" koanf:"academic_buildings"`
}

// KMeansConfig contains clustering parameters.
type KMeansConfig struct {
	// Clusters is the requested cluster count k.
	// Default: 3.
	Clusters int `json:"clusters" koanf:"clusters"`

	// Tolerance is the centroid movement below which iteration stops.
	// Default: 1e-3.
	Tolerance float64 `json:"tolerance" koanf:"tolerance"`

	// MaxIterations bounds the assign/update loop.
	// Default: 100.
	MaxIterations int `json:"max_iterations" koanf:"max_iterations"`
}

// MentorWeights scales each block of a mentor profile vector.
// The weights are meant to sum to 1 but this is not enforced.
type MentorWeights struct {
	Skills           float64 `json:"skills" koanf:"skills"`
	Interests        float64 `json:"interests" koanf:"interests"`
	AIInterest       float64 `json:"ai_interest" koanf:"ai_interest"`
	ExperienceYears  float64 `json:"experience_years" koanf:"experience_years"`
	PreferredMeeting float64 `json:"preferred_meeting" koanf:"preferred_meeting"`
}

// Sum returns the total of all block weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w MentorWeights) Sum() float64 {
	return w.Skills + w.Interests + w.AIInterest + w.ExperienceYears + w.PreferredMeeting
}

// MentorConfig contains the global vocabularies used to encode profiles.
type MentorConfig struct {
	// Weights is the default block weighting used when a caller supplies none.
	Weights MentorWeights `json:"weights" koanf:"weights"`

	// Skills is the global skill list; vector order follows this slice.
	Skills []string `json:"skills" koanf:"skills"`

	// Interests is the global interest list; vector order follows this slice.
	Interests []string `json:"interests" koanf:"interests"`

	// MeetingOptions is the one-hot meeting vocabulary.
	// Default: Zoom, In Person, Hybrid.
	MeetingOptions []string `json:"meeting_options" koanf:"meeting_options"`

	// ExperienceCap is the number of years that maps to a full score.
	// Default: 5.
	ExperienceCap float64 `json:"experience_cap" koanf:"experience_cap"`
}

// GraphConfig contains mentor graph weights.
type GraphConfig struct {
	// AlphaSim scales cosine-similarity edges.
	// Default: 0.6.
	AlphaSim float64 `json:"alpha_sim" koanf:"alpha_sim"`

	// BetaLikes scales like edges from the current user.
	// Default: 0.4.
	BetaLikes float64 `json:"beta_likes" koanf:"beta_likes"`

	// LikeCap is the like count that saturates a like edge.
	// Default: 5.
	LikeCap float64 `json:"like_cap" koanf:"like_cap"`

	// AlphaBlend is the PageRank share of the final score; the rest is cosine.
	// Default: 0.6.
	AlphaBlend float64 `json:"alpha_blend" koanf:"alpha_blend"`
}

// PageRankConfig contains personalized PageRank parameters.
type PageRankConfig struct {
	// Damping is the probability of following an edge.
	// Default: 0.85.
	Damping float64 `json:"damping" koanf:"damping"`

	// MaxIterations bounds the power iteration.
	// Default: 100.
	MaxIterations int `json:"max_iterations" koanf:"max_iterations"`

	// Tolerance is the L1 change below which iteration stops.
	// Default: 1e-6.
	Tolerance float64 `json:"tolerance" koanf:"tolerance"`
}

// ExplainConfig contains explanation thresholds.
type ExplainConfig struct {
	// ShortDurationHours and below counts as a short event.
	// Default: 1.
	ShortDurationHours float64 `json:"short_duration_hours" koanf:"short_duration_hours"`

	// LongDurationHours and above counts as a long event.
	// Default: 3.
	LongDurationHours float64 `json:"long_duration_hours" koanf:"long_duration_hours"`

	// QualityPoints and above marks a high-value event.
	// Default: 50.
	QualityPoints int `json:"quality_points" koanf:"quality_points"`

	// FavoriteReasons is how many liked reasons the fallback lists.
	// Default: 3.
	FavoriteReasons int `json:"favorite_reasons" koanf:"favorite_reasons"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultTopN is used when a request asks for zero results.
	// Default: 5.
	DefaultTopN int `json:"default_top_n" koanf:"default_top_n"`

	// MaxTopN caps any request.
	// Default: 100.
	MaxTopN int `json:"max_top_n" koanf:"max_top_n"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Events: EventConfig{
			VirtualKeywords: []string{"zoom", "online", "virtual", "remote"},
			AcademicBuildings: []string{
				"engineering building",
				"science center",
				"student union",
				"library",
				"humanities hall",
				"business school",
				"computer science building",
				"lecture hall",
			},
		},
		KMeans: KMeansConfig{
			Clusters:      3,
			Tolerance:     1e-3,
			MaxIterations: 100,
		},
		Mentor: MentorConfig{
			Weights: MentorWeights{
				Skills:           0.4,
				Interests:        0.3,
				AIInterest:       0.1,
				ExperienceYears:  0.1,
				PreferredMeeting: 0.1,
			},
			Skills: []string{
				"Python", "JavaScript", "React", "Java", "C++", "SQL",
				"Machine Learning", "Data Analysis", "UI/UX Design", "Public Speaking",
			},
			Interests: []string{
				"Web Development", "Artificial Intelligence", "Data Science",
				"Entrepreneurship", "Research", "Cybersecurity",
				"Game Development", "Product Management",
			},
			MeetingOptions: []string{"Zoom", "In Person", "Hybrid"},
			ExperienceCap:  5,
		},
		Graph: GraphConfig{
			AlphaSim:   0.6,
			BetaLikes:  0.4,
			LikeCap:    5,
			AlphaBlend: 0.6,
		},
		PageRank: PageRankConfig{
			Damping:       0.85,
			MaxIterations: 100,
			Tolerance:     1e-6,
		},
		Explain: ExplainConfig{
			ShortDurationHours: 1,
			LongDurationHours:  3,
			QualityPoints:      50,
			FavoriteReasons:    3,
		},
		Limits: LimitsConfig{
			DefaultTopN: 5,
			MaxTopN:     100,
		},
	}
}

// Validate checks the configuration for errors.
// Mentor weights are only checked for sign; their sum is the caller's concern.
//
//nolint:gocyclo // validation needs to check many fields
func (c *Config) Validate() error {
	if c.KMeans.Clusters < 1 {
		return fmt.Errorf("kmeans.clusters must be positive, got %d", c.KMeans.Clusters)
	}
	if c.KMeans.Tolerance < 0 {
		return fmt.Errorf("kmeans.tolerance must be non-negative, got %f", c.KMeans.Tolerance)
	}
	if c.KMeans.MaxIterations < 1 {
		return fmt.Errorf("kmeans.max_iterations must be positive, got %d", c.KMeans.MaxIterations)
	}

	if err := c.Mentor.Weights.Validate(); err != nil {
		return err
	}
	if len(c.Mentor.MeetingOptions) == 0 {
		return fmt.Errorf("mentor.meeting_options must not be empty")
	}
	if c.Mentor.ExperienceCap <= 0 {
		return fmt.Errorf("mentor.experience_cap must be positive, got %f", c.Mentor.ExperienceCap)
	}

	if c.Graph.AlphaSim < 0 || c.Graph.BetaLikes < 0 {
		return fmt.Errorf("graph.alpha_sim and graph.beta_likes must be non-negative")
	}
	if c.Graph.LikeCap <= 0 {
		return fmt.Errorf("graph.like_cap must be positive, got %f", c.Graph.LikeCap)
	}
	if c.Graph.AlphaBlend < 0 || c.Graph.AlphaBlend > 1 {
		return fmt.Errorf("graph.alpha_blend must be in [0, 1], got %f", c.Graph.AlphaBlend)
	}

	if c.PageRank.Damping < 0 || c.PageRank.Damping >= 1 {
		return fmt.Errorf("pagerank.damping must be in [0, 1), got %f", c.PageRank.Damping)
	}
	if c.PageRank.MaxIterations < 1 {
		return fmt.Errorf("pagerank.max_iterations must be positive, got %d", c.PageRank.MaxIterations)
	}
	if c.PageRank.Tolerance < 0 {
		return fmt.Errorf("pagerank.tolerance must be non-negative, got %f", c.PageRank.Tolerance)
	}

	if c.Limits.DefaultTopN < 1 {
		return fmt.Errorf("limits.default_top_n must be positive, got %d", c.Limits.DefaultTopN)
	}
	if c.Limits.MaxTopN < c.Limits.DefaultTopN {
		return fmt.Errorf("limits.max_top_n must be >= limits.default_top_n, got %d < %d", c.Limits.MaxTopN, c.Limits.DefaultTopN)
	}

	return nil
}

// Validate checks that no block weight is negative.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w MentorWeights) Validate() error {
	blocks := map[string]float64{
		"skills":            w.Skills,
		"interests":         w.Interests,
		"ai_interest":       w.AIInterest,
		"experience_years":  w.ExperienceYears,
		"preferred_meeting": w.PreferredMeeting,
	}
	for name, v := range blocks {
		if v < 0 {
			return fmt.Errorf("mentor.weights.%s must be non-negative, got %f", name, v)
		}
	}
	return nil
}

// ClampTopN applies the default and maximum result limits to n.
func (c *Config) ClampTopN(n int) int {
	if n <= 0 {
		n = c.Limits.DefaultTopN
	}
	if n > c.Limits.MaxTopN {
		n = c.Limits.MaxTopN
	}
	return n
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.Events.VirtualKeywords = cloneStrings(c.Events.VirtualKeywords)
	out.Events.AcademicBuildings = cloneStrings(c.Events.AcademicBuildings)
	out.Mentor.Skills = cloneStrings(c.Mentor.Skills)
	out.Mentor.Interests = cloneStrings(c.Mentor.Interests)
	out.Mentor.MeetingOptions = cloneStrings(c.Mentor.MeetingOptions)
	return &out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
