// Package shapelet - functional options of the SearchSpace.
//
// Contract:
//   - Options are functional (type Option func(*searchConfig)) and applied in
//     order; later options override earlier ones.
//   - Option constructors PANIC only on programmer errors (nil RNG, nil
//     logger). Value checks that the caller may get wrong at runtime (bounds,
//     empty metric lists, attempt budgets) surface as ErrConfiguration from
//     NewSearchSpace.
//   - Determinism is explicit: WithSeed or WithRand; the default is the
//     fixed defaultRNGSeed stream.
package shapelet

import (
	"log/slog"
	"math/rand"
)

// Attempt budget defaults of DrawCandidates.
const (
	defaultAttemptsPerCandidate = 1000
	defaultAttemptFloor         = 10000
)

// searchConfig aggregates all SearchSpace knobs.
type searchConfig struct {
	metricAggs    []MetricAgg
	metricAggsSet bool // WithMetricAggs was called (possibly with an empty list)
	minL, maxL    int  // exclusive length bounds; 0 = unset
	rng           *rand.Rand
	maxAttempts   int // 0 = derived from n
	logger        *slog.Logger
}

// Option customizes NewSearchSpace.
type Option func(*searchConfig)

// WithMetricAggs sets the metric+aggregator pairs drawn uniformly per candidate.
// An empty list is rejected by NewSearchSpace.
func WithMetricAggs(mas ...MetricAgg) Option {
	cp := append([]MetricAgg(nil), mas...)
	return func(c *searchConfig) {
		c.metricAggs = cp
		c.metricAggsSet = true
	}
}

// WithLengthBounds keeps only candidates with minL < length < maxL.
// A bound of 0 leaves that side open.
func WithLengthBounds(minL, maxL int) Option {
	return func(c *searchConfig) {
		c.minL, c.maxL = minL, maxL
	}
}

// WithSeed seeds the owned RNG (seed 0 maps to the package default seed).
func WithSeed(seed int64) Option {
	return func(c *searchConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand hands an explicit RNG to the SearchSpace. Panics on nil.
// The SearchSpace becomes the only user of r: do not share it across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("shapelet: WithRand(nil)")
	}
	return func(c *searchConfig) {
		c.rng = r
	}
}

// WithMaxAttempts caps the number of draws per DrawCandidates call.
// 0 restores the default budget max(10000, 1000·n).
func WithMaxAttempts(n int) Option {
	return func(c *searchConfig) {
		c.maxAttempts = n
	}
}

// WithLogger routes debug/warn events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("shapelet: WithLogger(nil)")
	}
	return func(c *searchConfig) {
		c.logger = l
	}
}

func newSearchConfig(opts ...Option) searchConfig {
	cfg := searchConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.metricAggsSet {
		cfg.metricAggs = []MetricAgg{DefaultMetricAgg}
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}

	return cfg
}

// discardLogger returns a logger that drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
