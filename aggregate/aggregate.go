// Package aggregate reduces a distance profile (instances × offsets) to a
// small set of named per-instance features.
//
// An Aggregator is a strategy: the shapelet transform looks one up by name
// from the metric+aggregator pair of each candidate and appends its columns,
// named "<candidate>#<suffix>", to the feature table. Min (minimum distance
// and its offset) is the canonical EAST feature; Max is provided as the
// first extension. Further statistics plug in through Register.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rshapelet/matrix"
)

// ColumnSep separates the candidate name from the statistic suffix.
const ColumnSep = "#"

var (
	// ErrNilProfile indicates a nil distance profile.
	ErrNilProfile = errors.New("aggregate: nil profile")

	// ErrUnknownAggregator indicates a name with no registered aggregator.
	ErrUnknownAggregator = errors.New("aggregate: unknown aggregator")

	// ErrDuplicateAggregator indicates an attempt to register a taken name.
	ErrDuplicateAggregator = errors.New("aggregate: aggregator already registered")

	// ErrNilAggregator indicates an attempt to register a nil aggregator or an empty name.
	ErrNilAggregator = errors.New("aggregate: nil aggregator or empty name")
)

// Aggregator collapses every row of a distance profile into len(Columns())
// values. Implementations must be stateless and safe for concurrent use.
type Aggregator interface {
	// Name is the registry name (the part after '+' in "sqeuclidean+min").
	Name() string

	// Columns lists the statistic suffixes, in output column order.
	Columns() []string

	// Aggregate returns a profile.Rows() × len(Columns()) table.
	Aggregate(profile *matrix.Dense) (*matrix.Dense, error)
}

// ColumnNames returns "<prefix>#<suffix>" for every column of a.
func ColumnNames(prefix string, a Aggregator) []string {
	cols := a.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = prefix + ColumnSep + c
	}

	return out
}

// extremum is the shared kernel of Min and Max: for every row it records the
// extreme value and the first offset reaching it.
func extremum(profile *matrix.Dense, better func(v, best float64) bool) (*matrix.Dense, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}
	out, err := matrix.NewDense(profile.Rows(), 2)
	if err != nil {
		return nil, fmt.Errorf("extremum: %w", err)
	}

	var (
		i, j int
		row  []float64
		best float64
		arg  int
	)
	for i = 0; i < profile.Rows(); i++ {
		row, err = profile.RowView(i)
		if err != nil {
			return nil, err
		}
		best, arg = row[0], 0
		for j = 1; j < len(row); j++ {
			// strict comparison keeps the first occurrence on ties
			if better(row[j], best) {
				best, arg = row[j], j
			}
		}
		if err = out.SetRow(i, []float64{best, float64(arg)}); err != nil {
			return nil, err
		}
	}

	return out, nil
}
