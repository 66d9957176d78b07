// Package shapelet implements EAST-style random shapelet search: candidate
// subsequences are drawn at random from a multi-variate time-series dataset
// and every candidate becomes a pair of features, the minimum distance between
// the candidate and any window of a series, and the offset of that window.
//
// Pipeline:
//
//   - NewSearchSpace models the candidate space of a dataset without
//     materializing it. DrawCandidates samples it uniformly over
//     (start, length) pairs through a four-stage categorical draw
//     (variable → instance → length → start, plus the metric+aggregator).
//
//   - Profile computes the sliding distance profile of one candidate against
//     every instance of its variable; Aggregate reduces it to columns such as
//     "<name>#Min" and "<name>#Argument".
//
//   - Transform fans a batch of candidates out to a bounded worker pool and
//     merges the per-candidate blocks into a FeatureTable in candidate order.
//
// Determinism: sampling is single-threaded and driven by an owned RNG
// (WithSeed / WithRand); Transform output does not depend on the worker count.
//
// Errors are sentinels (ErrConfiguration, ErrSamplingExhausted,
// ErrDimensionMismatch, ErrDegenerateSeries, ErrEmptySearchSpace,
// ErrUnknownMetric, ErrUnknownFeature); failures tied to one candidate come
// wrapped in *CandidateError.
//
// Usage:
//
//	space, err := shapelet.NewSearchSpace(ds, shapelet.WithSeed(42), shapelet.WithLengthBounds(2, 0))
//	cands, err := space.DrawCandidates(100)
//	table, err := shapelet.Transform(ctx, ds, cands, shapelet.TransformOptions{Workers: 4})
package shapelet
