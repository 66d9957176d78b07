// Package rshapelet is a random shapelet search toolkit for multi-variate
// time series: it samples candidate subsequences ("shapelets") uniformly
// over the true candidate space of a dataset and turns each one into
// per-instance features (the minimum sliding distance and where it occurs).
//
// What is inside:
//
//	matrix/        — row-major Dense tables for profiles and feature blocks
//	dataset/       — the (variable × time × instance) panel + synthetic data
//	distance/      — sliding-distance kernels (squared Euclidean) + registry
//	aggregate/     — profile reducers (Min, Max) + registry
//	shapelet/      — SearchSpace, Profile, parallel Transform, FeatureTable
//	config/        — YAML run configuration → shapelet options
//	store/duckdb/  — DuckDB persistence of feature tables and candidate batches
//
// Typical flow:
//
//	ds, _ := dataset.Generate(3, 50, 128, dataset.WithSeed(7))
//	space, _ := shapelet.NewSearchSpace(ds, shapelet.WithSeed(7), shapelet.WithLengthBounds(4, 32))
//	cands, _ := space.DrawCandidates(200)
//	table, _ := shapelet.Transform(ctx, ds, cands, shapelet.TransformOptions{Workers: 8})
//	col, _ := table.Column(cands[0].Name + "#Min")
//
// Sampling is deterministic under a seed and single-threaded; the transform
// is parallel and its output does not depend on the worker count.
//
// See examples/candle_shapelets for an end-to-end run over candlestick data.
package rshapelet
