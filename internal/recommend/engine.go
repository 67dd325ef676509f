// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/wishrank/internal/logging"
	"github.com/tomtom215/wishrank/internal/metrics"
)

// Note: the engine holds no catalog or history state. Every call ranks
// against the snapshot it is handed, so one Engine serves any number of
// snapshots concurrently.

// Ranking outcomes reported to metrics.
const (
	outcomeRanked   = "ranked"
	outcomeFallback = "fallback"
	outcomeMisuse   = "misuse"
)

var (
	// ErrUnknownStrategy is returned for a strategy name the engine does
	// not implement.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrBatchTooLarge is returned when a batch exceeds
	// Limits.MaxBatchUsers.
	ErrBatchTooLarge = errors.New("batch too large")
)

// Engine ranks catalog items for users. It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	cache  *profileCache

	requestCount  atomic.Int64
	fallbackCount atomic.Int64
	misuseCount   atomic.Int64
	cacheHits     atomic.Int64
	cacheMisses   atomic.Int64
}

// Metrics is a point-in-time view of engine counters.
type Metrics struct {
	RequestCount  int64 `json:"request_count"`
	FallbackCount int64 `json:"fallback_count"`
	MisuseCount   int64 `json:"misuse_count"`
	CacheHits     int64 `json:"cache_hits"`
	CacheMisses   int64 `json:"cache_misses"`
}

// Explanation describes how a user's content ranking came about.
type Explanation struct {
	UserID    string             `json:"user_id"`
	Profile   *PreferenceProfile `json:"profile"`
	Scores    []ScoredItem       `json:"scores"`
	Neighbors []Neighbor         `json:"neighbors"`
}

// snapshot bundles one call's inputs with the lookups derived from them.
type snapshot struct {
	catalog     []Item
	idx         *catalogIndex
	history     SelectionHistory
	fingerprint uint64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cache, err := newProfileCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
		cache:  cache,
	}, nil
}

// Close releases the profile cache.
func (e *Engine) Close() {
	e.cache.close()
}

// BuildProfile returns the preference profile of userID. The returned
// profile is owned by the caller.
func (e *Engine) BuildProfile(ctx context.Context, catalog []Item, history SelectionHistory, userID string) *PreferenceProfile {
	if e.misuse(ctx, "profile", catalog, history) {
		return newProfile(userID)
	}
	return e.profile(e.newSnapshot(catalog, history), userID).Clone()
}

// Content ranks the catalog by similarity to the user's own selections,
// never returning an item the user already selected.
func (e *Engine) Content(ctx context.Context, catalog []Item, history SelectionHistory, userID string) []Item {
	return e.run(ctx, StrategyContent, catalog, history, userID)
}

// Collaborative ranks items selected by the users whose selections overlap
// most with userID's, backfilled from the content ranking.
func (e *Engine) Collaborative(ctx context.Context, catalog []Item, history SelectionHistory, userID string) []Item {
	return e.run(ctx, StrategyCollaborative, catalog, history, userID)
}

// Hybrid interleaves the content and collaborative rankings.
func (e *Engine) Hybrid(ctx context.Context, catalog []Item, history SelectionHistory, userID string) []Item {
	return e.run(ctx, StrategyHybrid, catalog, history, userID)
}

// Recommend dispatches to the ranking named by strategy.
func (e *Engine) Recommend(ctx context.Context, catalog []Item, history SelectionHistory, userID string, strategy Strategy) ([]Item, error) {
	if _, ok := ParseStrategy(string(strategy)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return e.run(ctx, strategy, catalog, history, userID), nil
}

// RecommendBatch ranks every user in userIDs against one snapshot, at most
// Limits.BatchConcurrency users at a time. Duplicate ids are ranked once.
func (e *Engine) RecommendBatch(ctx context.Context, catalog []Item, history SelectionHistory, userIDs []string, strategy Strategy) (map[string][]Item, error) {
	if _, ok := ParseStrategy(string(strategy)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if len(userIDs) > e.config.Limits.MaxBatchUsers {
		return nil, fmt.Errorf("%w: %d users, limit %d", ErrBatchTooLarge, len(userIDs), e.config.Limits.MaxBatchUsers)
	}

	out := make(map[string][]Item, len(userIDs))
	if e.misuse(ctx, "batch", catalog, history) {
		for _, id := range userIDs {
			out[id] = []Item{}
		}
		return out, nil
	}

	metrics.RecommendBatchSize.Observe(float64(len(userIDs)))
	s := e.newSnapshot(catalog, history)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Limits.BatchConcurrency)

	for _, userID := range dedupe(userIDs) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items := e.rankTimed(gctx, s, userID, strategy)

			mu.Lock()
			out[userID] = items
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", strategy, err)
	}

	return out, nil
}

// Explain returns the profile, the full content score breakdown and the
// nearest neighbours for userID.
func (e *Engine) Explain(ctx context.Context, catalog []Item, history SelectionHistory, userID string) *Explanation {
	if e.misuse(ctx, "explain", catalog, history) {
		return &Explanation{UserID: userID, Profile: newProfile(userID), Scores: []ScoredItem{}, Neighbors: []Neighbor{}}
	}

	s := e.newSnapshot(catalog, history)
	profile := e.profile(s, userID)
	scores := truncate(scoreContent(e.config, s.catalog, profile, idSet(history[userID])), e.config.Limits.MaxResults)

	nearest := []Neighbor{}
	if selections := history[userID]; len(selections) > 0 {
		nearest = truncate(neighbors(history, userID, idSet(selections), e.config.Limits.MaxUsers), e.config.Limits.SimilarUsers)
	}

	return &Explanation{
		UserID:    userID,
		Profile:   profile.Clone(),
		Scores:    scores,
		Neighbors: nearest,
	}
}

// GetMetrics returns the current engine counters.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount:  e.requestCount.Load(),
		FallbackCount: e.fallbackCount.Load(),
		MisuseCount:   e.misuseCount.Load(),
		CacheHits:     e.cacheHits.Load(),
		CacheMisses:   e.cacheMisses.Load(),
	}
}

// GetConfig returns a copy of the current configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// InvalidateCache drops every cached profile. Call after bulk catalog
// changes to reclaim memory early; stale entries are never served since
// keys embed the catalog fingerprint.
func (e *Engine) InvalidateCache() {
	e.cache.clear()
	e.logger.Debug().Msg("profile cache cleared")
}

// run is the single-user entry point shared by the strategy methods.
func (e *Engine) run(ctx context.Context, strategy Strategy, catalog []Item, history SelectionHistory, userID string) []Item {
	if e.misuse(ctx, string(strategy), catalog, history) {
		return []Item{}
	}
	return e.rankTimed(ctx, e.newSnapshot(catalog, history), userID, strategy)
}

// rankTimed ranks one user and records metrics.
func (e *Engine) rankTimed(ctx context.Context, s *snapshot, userID string, strategy Strategy) []Item {
	start := time.Now()
	e.requestCount.Add(1)

	items, fallback := e.rank(s, userID, strategy)
	if items == nil {
		items = []Item{}
	}

	outcome := outcomeRanked
	if fallback {
		outcome = outcomeFallback
		e.fallbackCount.Add(1)
	}
	metrics.RecordRecommendation(string(strategy), outcome, time.Since(start), len(items))

	logger := e.requestLogger(ctx, userID, strategy)
	logger.Debug().
		Str("outcome", outcome).
		Int("returned", len(items)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return items
}

// rank computes the ranking for strategy. The boolean reports whether a
// cold-start fallback list was returned.
func (e *Engine) rank(s *snapshot, userID string, strategy Strategy) ([]Item, bool) {
	switch strategy {
	case StrategyContent:
		return e.content(s, userID)
	case StrategyCollaborative:
		return e.collaborative(s, userID)
	default:
		return e.hybrid(s, userID)
	}
}

func (e *Engine) content(s *snapshot, userID string) ([]Item, bool) {
	return rankContent(e.config, s, e.profile(s, userID), userID)
}

func (e *Engine) collaborative(s *snapshot, userID string) ([]Item, bool) {
	return collaborative(e.config, s, userID, func() []Item {
		items, _ := e.content(s, userID)
		return items
	})
}

func (e *Engine) hybrid(s *snapshot, userID string) ([]Item, bool) {
	if userID == "" {
		return trendingOrBestsellers(s.catalog, e.config.Limits.MaxResults), true
	}

	content, _ := e.content(s, userID)
	collab, coldStart := collaborative(e.config, s, userID, func() []Item { return content })

	return merge(content, collab, s.catalog, idSet(s.history[userID]), e.config.Limits.MaxResults), coldStart
}

// profile returns the (possibly cached) profile of userID. The result is
// shared and must not be modified.
func (e *Engine) profile(s *snapshot, userID string) *PreferenceProfile {
	selections := s.history[userID]
	if e.cache == nil {
		return buildProfile(s.idx, selections, userID)
	}

	key := profileKey(s.fingerprint, userID, selections)
	if p, ok := e.cache.get(key); ok {
		e.cacheHits.Add(1)
		metrics.RecordCacheLookup("profile", true)
		return p
	}

	e.cacheMisses.Add(1)
	metrics.RecordCacheLookup("profile", false)

	p := buildProfile(s.idx, selections, userID)
	e.cache.set(key, p)
	return p
}

func (e *Engine) newSnapshot(catalog []Item, history SelectionHistory) *snapshot {
	s := &snapshot{
		catalog: catalog,
		idx:     indexCatalog(catalog),
		history: history,
	}
	if e.cache != nil {
		s.fingerprint = catalogFingerprint(catalog)
	}
	return s
}

// misuse reports whether catalog or history is nil. Empty inputs are
// valid; nil ones signal a caller bug and are logged.
func (e *Engine) misuse(ctx context.Context, op string, catalog []Item, history SelectionHistory) bool {
	if catalog != nil && history != nil {
		return false
	}

	e.misuseCount.Add(1)
	metrics.RecordRecommendation(op, outcomeMisuse, 0, 0)
	logger := e.requestLogger(ctx, "", Strategy(op))
	logger.Warn().
		Bool("catalog_nil", catalog == nil).
		Bool("history_nil", history == nil).
		Msg("ranking called without a catalog or history snapshot")
	return true
}

// requestLogger creates a logger with request context.
func (e *Engine) requestLogger(ctx context.Context, userID string, strategy Strategy) zerolog.Logger {
	lc := e.logger.With().Str("strategy", string(strategy))
	if userID != "" {
		lc = lc.Str("user_id", logging.SanitizeUserID(userID))
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	return lc.Logger()
}

// dedupe returns ids without repeats, keeping first occurrences.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, id := range list {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
