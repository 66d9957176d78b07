// Package distance defines the sliding-distance kernel contract used by
// shapelet distance profiles, together with the squared-Euclidean reference
// kernel and a name → kernel registry.
//
// A Kernel receives an equal-length query (the shapelet) and a full series
// and returns one distance per admissible window offset:
//
//	out[o] = dist(query, series[o : o+len(query)]),  o = 0..len(series)-len(query)
//
// Kernels must be pure and safe for concurrent use: the parallel transform
// calls the same kernel from every worker.
package distance

import (
	"errors"
	"fmt"
)

// Kernel computes the distance between query and every window of series.
type Kernel func(query, series []float64) ([]float64, error)

// SqEuclideanName is the registry name of SqEuclidean.
const SqEuclideanName = "sqeuclidean"

var (
	// ErrEmptyQuery indicates a zero-length query.
	ErrEmptyQuery = errors.New("distance: empty query")

	// ErrQueryTooLong indicates a query longer than the series it slides over.
	ErrQueryTooLong = errors.New("distance: query longer than series")
)

// SqEuclidean returns the squared Euclidean distance between query and every
// len(query)-window of series, in offset order. Values are ≥ 0.
//
// Errors:
//   - ErrEmptyQuery if len(query) == 0.
//   - ErrQueryTooLong if len(query) > len(series).
//
// Complexity: O((n−m+1)·m) time, O(n−m+1) space for n=len(series), m=len(query).
func SqEuclidean(query, series []float64) ([]float64, error) {
	m, n := len(query), len(series)
	if m == 0 {
		return nil, ErrEmptyQuery
	}
	if m > n {
		return nil, fmt.Errorf("SqEuclidean(m=%d, n=%d): %w", m, n, ErrQueryTooLong)
	}

	out := make([]float64, n-m+1)
	var (
		o, j int
		acc  float64
		d    float64
		w    []float64
	)
	for o = range out {
		w = series[o : o+m]
		acc = 0
		for j = 0; j < m; j++ {
			d = w[j] - query[j]
			acc += d * d
		}
		out[o] = acc
	}

	return out, nil
}
