// Package matrix provides the row-major float64 table shared by the
// shapelet pipeline.
//
// What & Why:
//
//	Distance profiles (instances × offsets), per-variable series tables
//	(instances × time) and feature tables (instances × features) are all
//	rectangular float64 blocks. Dense stores them in one flat slice with the
//	explicit index formula i*cols + j, so hot loops can walk a row as a
//	contiguous sub-slice (see Row / RowView) without per-element bounds
//	checks.
//
// Guarantees:
//
//   - Public accessors never panic on user input; they return sentinel
//     errors from errors.go wrapped with call-site context.
//   - Construction from caller data validates shape and the numeric policy
//     (NaN/±Inf rejected) from a single place (validators.go).
//   - Deterministic: fixed loop orders, no map iteration.
//
// Complexity:
//
//	NewDense: O(r*c) zero-init; At/Set/RowView: O(1); Row/Clone: O(c)/O(r*c);
//	HStack: O(r * Σc).
package matrix
