// Commonground - Community Platform Recommendation and Matching Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/commonground

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/commonground/internal/logging"
	"github.com/tomtom215/commonground/internal/metrics"
	"github.com/tomtom215/commonground/internal/recommend"
	"github.com/tomtom215/commonground/internal/recommend/algorithms"
	"github.com/tomtom215/commonground/internal/recommend/explain"
	"github.com/tomtom215/commonground/internal/recommend/features"
	"github.com/tomtom215/commonground/internal/recommend/ranking"
)

// Sentinel errors returned by the engine.
var (
	// ErrUserNotFound is returned when a profile id is not in the snapshot.
	ErrUserNotFound = errors.New("user not found")

	// ErrEventNotFound is returned when an event id is not in the catalog.
	ErrEventNotFound = errors.New("event not found")
)

// Operation names used for logging and metrics labels.
const (
	OpEventVectors       = "event_vectors"
	OpClusterEvents      = "cluster_events"
	OpRecommendEvents    = "recommend_events"
	OpExplainEvent       = "explain_event"
	OpMentorMatches      = "mentor_matches"
	OpExplainMentorMatch = "explain_mentor_match"
)

// DataProvider supplies read-only snapshots of the rows the engine works on.
// This is typically implemented by the database layer. Each call returns a
// complete snapshot; there is no pagination.
type DataProvider interface {
	// GetFeedback returns every feedback record.
	GetFeedback(ctx context.Context) ([]recommend.FeedbackRecord, error)

	// GetEvents returns the event catalog.
	GetEvents(ctx context.Context) ([]recommend.Event, error)

	// GetRegistrations returns every event registration.
	GetRegistrations(ctx context.Context) ([]recommend.Registration, error)

	// GetProfiles returns every member and mentor profile.
	GetProfiles(ctx context.Context) ([]recommend.Profile, error)

	// GetLikes returns every like interaction.
	GetLikes(ctx context.Context) ([]recommend.Like, error)
}

// Engine runs the event and mentor pipelines over provider snapshots.
// It is safe for concurrent use.
type Engine struct {
	provider   DataProvider
	config     *recommend.Config
	classifier *features.LocationClassifier
	mentors    *ranking.MentorRanker
	logger     zerolog.Logger
}

// EventClusters is the result of ClusterEvents.
type EventClusters struct {
	// Clusters maps cluster index to event ids.
	Clusters recommend.Clusters `json:"clusters"`

	// Vectors holds the feature vector of every clustered event.
	Vectors map[string]recommend.FeatureVector `json:"vectors"`

	// Iterations is the number of k-means rounds performed.
	Iterations int `json:"iterations"`

	// Converged is false when the iteration cap was reached.
	Converged bool `json:"converged"`
}

// New creates an engine. A nil cfg uses recommend.DefaultConfig. The
// configuration is validated and copied.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(provider DataProvider, cfg *recommend.Config, logger zerolog.Logger) (*Engine, error) {
	if provider == nil {
		return nil, errors.New("data provider is required")
	}
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.Clone()

	return &Engine{
		provider:   provider,
		config:     cfg,
		classifier: features.NewLocationClassifier(cfg.Events),
		mentors:    ranking.NewMentorRanker(cfg),
		logger:     logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *recommend.Config {
	return e.config.Clone()
}

// begin tags ctx with a request id and the engine logger.
func (e *Engine) begin(ctx context.Context) (context.Context, time.Time) {
	ctx, _ = logging.EnsureRequestID(ctx)
	return logging.ContextWithLogger(ctx, e.logger), time.Now()
}

// finish logs and records the outcome of an operation.
func (e *Engine) finish(ctx context.Context, op string, start time.Time, results int, err error) {
	elapsed := time.Since(start)
	metrics.RecordOperation(op, elapsed, results, err)

	logger := logging.Ctx(ctx)
	if err != nil {
		logger.Debug().Err(err).Str("operation", op).Dur("latency", elapsed).Msg("operation failed")
		return
	}
	logger.Debug().
		Str("operation", op).
		Int("results", results).
		Dur("latency", elapsed).
		Msg("operation complete")
}

// loadEventInput fetches the rows the event pipeline needs.
func (e *Engine) loadEventInput(ctx context.Context) (features.EventInput, error) {
	records, err := e.provider.GetFeedback(ctx)
	if err != nil {
		return features.EventInput{}, fmt.Errorf("get feedback: %w", err)
	}
	events, err := e.provider.GetEvents(ctx)
	if err != nil {
		return features.EventInput{}, fmt.Errorf("get events: %w", err)
	}
	registrations, err := e.provider.GetRegistrations(ctx)
	if err != nil {
		return features.EventInput{}, fmt.Errorf("get registrations: %w", err)
	}
	return features.EventInput{
		Feedback:      recommend.NewFeedbackMap(records),
		Events:        events,
		Registrations: registrations,
	}, nil
}

// eventUniverse returns every catalog event id plus any event id that only
// appears in feedback, in recommend.SortIDs order.
func eventUniverse(in features.EventInput) []string {
	seen := make(map[string]struct{}, len(in.Events))
	ids := make([]string, 0, len(in.Events))
	add := func(id string) {
		if _, ok := seen[id]; ok || id == "" {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for i := range in.Events {
		add(in.Events[i].ID)
	}
	for _, events := range in.Feedback {
		for id := range events {
			add(id)
		}
	}
	recommend.SortIDs(ids)
	return ids
}

// EventVectors builds feature vectors for the given event ids. With no ids
// every known event is vectorized.
func (e *Engine) EventVectors(ctx context.Context, ids []string) (vectors map[string]recommend.FeatureVector, err error) {
	ctx, start := e.begin(ctx)
	defer func() { e.finish(ctx, OpEventVectors, start, len(vectors), err) }()

	in, err := e.loadEventInput(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		ids = eventUniverse(in)
	}
	return features.BuildEventVectors(in, ids, e.classifier), nil
}

// ClusterEvents vectorizes every known event and partitions the vectors into
// at most k clusters. k <= 0 uses the configured cluster count.
func (e *Engine) ClusterEvents(ctx context.Context, k int) (res *EventClusters, err error) {
	ctx, start := e.begin(ctx)
	defer func() {
		n := 0
		if res != nil {
			n = len(res.Clusters)
		}
		e.finish(ctx, OpClusterEvents, start, n, err)
	}()

	in, err := e.loadEventInput(ctx)
	if err != nil {
		return nil, err
	}
	return e.cluster(ctx, in, k), nil
}

func (e *Engine) cluster(ctx context.Context, in features.EventInput, k int) *EventClusters {
	if k <= 0 {
		k = e.config.KMeans.Clusters
	}
	vectors := features.BuildEventVectors(in, eventUniverse(in), e.classifier)
	km := algorithms.KMeans(vectors, k, algorithms.KMeansOptionsFromConfig(e.config.KMeans))
	metrics.RecordKMeans(km.Iterations, km.Converged)

	if !km.Converged {
		logging.Ctx(ctx).Warn().
			Int("iterations", km.Iterations).
			Int("events", len(vectors)).
			Msg("k-means stopped at iteration cap")
	}
	logging.Ctx(ctx).Debug().
		Int("k", k).
		Int("clusters", len(km.Clusters)).
		Int("events", len(vectors)).
		Int("iterations", km.Iterations).
		Msg("events clustered")

	return &EventClusters{
		Clusters:   km.Clusters,
		Vectors:    vectors,
		Iterations: km.Iterations,
		Converged:  km.Converged,
	}
}

// RecommendEvents returns up to topN event ids for userID, best first.
// topN <= 0 uses the configured default and values above the configured
// maximum are capped. A user without feedback gets an empty list. Events the
// user gave feedback on or registered for are never returned.
func (e *Engine) RecommendEvents(ctx context.Context, userID string, topN int) (ids []string, err error) {
	ctx, start := e.begin(ctx)
	defer func() { e.finish(ctx, OpRecommendEvents, start, len(ids), err) }()

	scored, err := e.scoreEvents(ctx, userID, topN)
	if err != nil {
		return nil, err
	}
	ids = make([]string, len(scored))
	for i := range scored {
		ids[i] = scored[i].EventID
	}
	return ids, nil
}

// ScoredRecommendations is RecommendEvents with the preference score of
// every returned event.
func (e *Engine) ScoredRecommendations(ctx context.Context, userID string, topN int) (scored []ranking.ScoredEvent, err error) {
	ctx, start := e.begin(ctx)
	defer func() { e.finish(ctx, OpRecommendEvents, start, len(scored), err) }()

	return e.scoreEvents(ctx, userID, topN)
}

func (e *Engine) scoreEvents(ctx context.Context, userID string, topN int) ([]ranking.ScoredEvent, error) {
	in, err := e.loadEventInput(ctx)
	if err != nil {
		return nil, err
	}
	if !in.Feedback.HasFeedback(userID) {
		logging.Ctx(ctx).Debug().Str("user_id", userID).Msg("no feedback, nothing to recommend")
		return []ranking.ScoredEvent{}, nil
	}

	clusters := e.cluster(ctx, in, 0)
	pref := features.UserPreferenceVector(userID, in.Feedback, clusters.Vectors)

	return ranking.ScoreEvents(ranking.EventRequest{
		Preference: pref,
		Vectors:    clusters.Vectors,
		Clusters:   clusters.Clusters,
		Exclude:    ranking.ExclusionSet(userID, in.Feedback, in.Registrations),
		TopN:       e.config.ClampTopN(topN),
	}), nil
}

// ExplainEvent explains why eventID suits userID, based on the event
// metadata and the reasons the user cited on liked events.
func (e *Engine) ExplainEvent(ctx context.Context, userID, eventID string) (exp *explain.EventExplanation, err error) {
	ctx, start := e.begin(ctx)
	defer func() {
		n := 0
		if exp != nil {
			n = len(exp.Clauses)
		}
		e.finish(ctx, OpExplainEvent, start, n, err)
	}()

	events, err := e.provider.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	idx := -1
	for i := range events {
		if events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	records, err := e.provider.GetFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	liked := features.LikedReasonCounts(userID, recommend.NewFeedbackMap(records))

	out := explain.Event(events[idx], liked, explain.EventOptions{
		Classifier: e.classifier,
		Thresholds: e.config.Explain,
	})
	return &out, nil
}

// MentorMatches ranks every other profile as a mentor for userID and returns
// the best topN. A nil weights uses the configured default weights.
func (e *Engine) MentorMatches(ctx context.Context, userID string, topN int, weights *recommend.MentorWeights) (matches []recommend.MentorMatch, err error) {
	ctx, start := e.begin(ctx)
	defer func() { e.finish(ctx, OpMentorMatches, start, len(matches), err) }()

	profiles, err := e.provider.GetProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	user, ok := findProfile(profiles, userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	likes, err := e.provider.GetLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get likes: %w", err)
	}

	w := e.config.Mentor.Weights
	if weights != nil {
		w = *weights
	}

	res := e.mentors.Rank(ranking.MentorRequest{
		User:    *user,
		Mentors: profiles,
		Likes:   recommend.LikeCounts(likes, userID),
		Weights: w,
		TopN:    e.config.ClampTopN(topN),
	})
	metrics.RecordPageRank(res.PageRank.Iterations)

	logging.Ctx(ctx).Debug().
		Str("user_id", userID).
		Int("candidates", len(res.Graph)-1).
		Int("pagerank_iterations", res.PageRank.Iterations).
		Bool("pagerank_converged", res.PageRank.Converged).
		Msg("mentors ranked")

	return res.Matches, nil
}

// ExplainMentorMatch explains why mentorID was matched with userID.
func (e *Engine) ExplainMentorMatch(ctx context.Context, userID, mentorID string) (exp *explain.MentorExplanation, err error) {
	ctx, start := e.begin(ctx)
	defer func() {
		n := 0
		if exp != nil {
			n = len(exp.Clauses)
		}
		e.finish(ctx, OpExplainMentorMatch, start, n, err)
	}()

	profiles, err := e.provider.GetProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}
	user, ok := findProfile(profiles, userID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	mentor, ok := findProfile(profiles, mentorID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, mentorID)
	}

	out := explain.Mentor(user, mentor, e.config.Mentor.Skills)
	return &out, nil
}

func findProfile(profiles []recommend.Profile, id string) (*recommend.Profile, bool) {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i], true
		}
	}
	return nil, false
}
