package shapelet

import (
	"fmt"

	"github.com/katalvlaran/rshapelet/aggregate"
	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/katalvlaran/rshapelet/matrix"
)

const (
	opProfile   = "Profile"
	opAggregate = "Aggregate"
)

// Profile computes the distance profile of c against every instance of
// c.Variable in target (train when target is nil): row k holds the distances
// between the reference window, cut once from train, and every length-c.Length
// window of instance k, at offsets 0..L_target−c.Length.
//
// Errors (always *CandidateError):
//   - ErrDimensionMismatch: c is not valid in train, c.Variable is absent
//     from target, or c.Length exceeds the target series length.
//   - ErrUnknownMetric: c.MetricAgg names an unregistered metric.
//
// Complexity: O(N·(L−l+1)·l) for the squared-Euclidean kernel.
func Profile(train *dataset.Dataset, c Candidate, target *dataset.Dataset) (*matrix.Dense, error) {
	if train == nil {
		return nil, candidateError(opProfile, c, fmt.Errorf("%w: nil train dataset", ErrConfiguration))
	}
	if target == nil {
		target = train
	}
	kernel, _, err := c.MetricAgg.resolve()
	if err != nil {
		return nil, candidateError(opProfile, c, err)
	}
	query, err := c.Subsequence(train)
	if err != nil {
		return nil, err
	}

	L, err := target.Length(c.Variable)
	if err != nil {
		return nil, candidateError(opProfile, c, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}
	if c.Length > L {
		return nil, candidateError(opProfile, c,
			fmt.Errorf("%w: length %d exceeds target series length %d", ErrDimensionMismatch, c.Length, L))
	}

	profile, err := matrix.NewDense(target.NumInstances(), L-c.Length+1)
	if err != nil {
		return nil, candidateError(opProfile, c, err)
	}
	var (
		series, row []float64
	)
	for k, id := range target.Instances() {
		series, err = target.SeriesView(c.Variable, id)
		if err != nil {
			return nil, candidateError(opProfile, c, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
		}
		row, err = kernel(query, series)
		if err != nil {
			return nil, candidateError(opProfile, c, err)
		}
		if err = profile.SetRow(k, row); err != nil {
			return nil, candidateError(opProfile, c, err)
		}
	}

	return profile, nil
}

// Aggregate reduces profile with the aggregator of c and returns the block
// together with its column names "<c.Name>#<suffix>".
func Aggregate(profile *matrix.Dense, c Candidate) (*matrix.Dense, []string, error) {
	_, agg, err := c.MetricAgg.resolve()
	if err != nil {
		return nil, nil, candidateError(opAggregate, c, err)
	}
	block, err := agg.Aggregate(profile)
	if err != nil {
		return nil, nil, candidateError(opAggregate, c, err)
	}

	return block, aggregate.ColumnNames(c.Name, agg), nil
}
