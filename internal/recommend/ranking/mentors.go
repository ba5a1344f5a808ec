// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package ranking

import (
	"math"
	"sort"

	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/algorithms"
	"github.com/tomtom215/commonground/internal/recommend/features"
)

// BuildAdjacency builds the mentor graph. vectors[0] is the current user and
// vectors[i] for i >= 1 is the mentor mentorIDs[i-1].
//
// Every ordered pair of distinct nodes gets AlphaSim times their cosine
// similarity. Edges leaving the user toward a mentor also get BetaLikes times
// the user's like count for that mentor, saturated at LikeCap. Only positive
// weights become edges and each row is normalized to sum to 1.
//
//nolint:gocritic // GraphConfig is a small value type
func BuildAdjacency(vectors [][]float64, mentorIDs []string, likes map[string]float64, cfg recommend.GraphConfig) algorithms.Adjacency {
	n := len(vectors)
	adj := make(algorithms.Adjacency, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w := cfg.AlphaSim * algorithms.CosineSimilarity(vectors[i], vectors[j])
			if i == 0 && j-1 < len(mentorIDs) {
				w += cfg.BetaLikes * likeWeight(likes[mentorIDs[j-1]], cfg.LikeCap)
			}
			if w > 0 {
				adj[i] = append(adj[i], algorithms.Edge{To: j, Weight: w})
			}
		}
	}

	adj.Normalize()
	return adj
}

// likeWeight maps a like count into [0, 1].
func likeWeight(count, capCount float64) float64 {
	if count <= 0 || capCount <= 0 {
		return 0
	}
	return math.Min(count/capCount, 1)
}

// MentorRequest carries everything TopMentorMatches needs.
type MentorRequest struct {
	// User is the member looking for a mentor.
	User recommend.Profile

	// Mentors is the candidate pool. An entry with the user's id is skipped.
	Mentors []recommend.Profile

	// Likes maps mentor id to the user's accumulated like weight.
	Likes map[string]float64

	// Weights scales the profile vector blocks.
	Weights recommend.MentorWeights

	// TopN caps the result; values below 1 return every mentor.
	TopN int
}

// MentorRanker ranks mentors for a user.
type MentorRanker struct {
	vectorizer *features.MentorVectorizer
	graph      recommend.GraphConfig
	pagerank   algorithms.PageRankOptions
}

// NewMentorRanker builds a ranker from the configuration.
func NewMentorRanker(cfg *recommend.Config) *MentorRanker {
	return &MentorRanker{
		vectorizer: features.NewMentorVectorizer(cfg.Mentor),
		graph:      cfg.Graph,
		pagerank:   algorithms.PageRankOptionsFromConfig(cfg.PageRank),
	}
}

// Vectorizer returns the profile vectorizer used by the ranker.
func (r *MentorRanker) Vectorizer() *features.MentorVectorizer {
	return r.vectorizer
}

// MentorRanking is a full ranking run.
type MentorRanking struct {
	Matches []recommend.MentorMatch

	// Graph is the normalized adjacency the PageRank ran on.
	Graph algorithms.Adjacency

	// PageRank is the raw PageRank outcome, node 0 being the user.
	PageRank algorithms.PageRankResult
}

// Rank computes blended scores for every candidate mentor.
//
// Mentor PageRank values are divided by the largest mentor value (all zero
// when that is 0). The final score is AlphaBlend times that plus
// (1 - AlphaBlend) times raw cosine similarity. Matches are sorted by score,
// highest first, with ties in candidate order.
//
//nolint:gocritic // request is built per call
func (r *MentorRanker) Rank(req MentorRequest) MentorRanking {
	mentors := make([]recommend.Profile, 0, len(req.Mentors))
	for i := range req.Mentors {
		if req.Mentors[i].ID != req.User.ID {
			mentors = append(mentors, req.Mentors[i])
		}
	}
	if len(mentors) == 0 {
		return MentorRanking{Matches: []recommend.MentorMatch{}}
	}

	nodes := make([]recommend.Profile, 0, len(mentors)+1)
	nodes = append(nodes, req.User)
	nodes = append(nodes, mentors...)
	vectors := r.vectorizer.VectorizeAll(nodes, req.Weights)

	ids := make([]string, len(mentors))
	for i := range mentors {
		ids[i] = mentors[i].ID
	}

	adj := BuildAdjacency(vectors, ids, req.Likes, r.graph)
	pr := algorithms.PersonalizedPageRank(adj, 0, r.pagerank)

	var maxRank float64
	for _, v := range pr.Ranks[1:] {
		if v > maxRank {
			maxRank = v
		}
	}

	matches := make([]recommend.MentorMatch, len(mentors))
	for i := range mentors {
		var ppr float64
		if maxRank > 0 {
			ppr = pr.Ranks[i+1] / maxRank
		}
		cos := algorithms.CosineSimilarity(vectors[0], vectors[i+1])
		matches[i] = recommend.MentorMatch{
			Mentor: mentors[i],
			Score:  r.graph.AlphaBlend*ppr + (1-r.graph.AlphaBlend)*cos,
			PPR:    ppr,
			Cosine: cos,
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if req.TopN > 0 && len(matches) > req.TopN {
		matches = matches[:req.TopN]
	}

	return MentorRanking{Matches: matches, Graph: adj, PageRank: pr}
}

// TopMentorMatches ranks mentors with the given configuration.
//
//nolint:gocritic // request is built per call
func TopMentorMatches(req MentorRequest, cfg *recommend.Config) []recommend.MentorMatch {
	return NewMentorRanker(cfg).Rank(req).Matches
}
