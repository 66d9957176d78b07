package shapelet_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/katalvlaran/rshapelet/shapelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProfile_KnownValues checks the query [1 2] against temp:
//
//	a = 1 2 3 4 → 0 2 8
//	b = 4 3 2 1 → 10 4 2
func TestProfile_KnownValues(t *testing.T) {
	ds := tinyDataset(t)
	c := shapelet.NewCandidate("temp", "a", 0, 2, shapelet.DefaultMetricAgg)

	p, err := shapelet.Profile(ds, c, nil)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 3, p.Cols())

	row, err := p.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 8}, row)
	row, err = p.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 4, 2}, row)

	block, cols, err := shapelet.Aggregate(p, c)
	require.NoError(t, err)
	assert.Equal(t, []string{"temp#a#0-2#sqeuclidean+min#Min", "temp#a#0-2#sqeuclidean+min#Argument"}, cols)
	row, err = block.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, row)
	row, err = block.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, row)
}

// TestProfile_ZeroAtOwnOffset: a candidate matches itself exactly.
func TestProfile_ZeroAtOwnOffset(t *testing.T) {
	ds := panel(t, 2, 4, 25, seedDet)
	s, err := shapelet.NewSearchSpace(ds, shapelet.WithSeed(seedDet))
	require.NoError(t, err)
	cands, err := s.DrawCandidates(40)
	require.NoError(t, err)

	for _, c := range cands {
		p, err := shapelet.Profile(ds, c, nil)
		require.NoError(t, err)
		require.Equal(t, ds.NumInstances(), p.Rows())
		require.Equal(t, 25-c.Length+1, p.Cols())

		k, err := ds.InstanceIndex(c.Instance)
		require.NoError(t, err)
		v, err := p.At(k, c.Start)
		require.NoError(t, err)
		assert.Zero(t, v, c.Name)

		block, _, err := shapelet.Aggregate(p, c)
		require.NoError(t, err)
		minimum, err := block.At(k, 0)
		require.NoError(t, err)
		assert.Zero(t, minimum, c.Name)

		for i := 0; i < p.Rows(); i++ {
			row, err := p.RowView(i)
			require.NoError(t, err)
			for _, d := range row {
				require.GreaterOrEqual(t, d, 0.0)
			}
		}
	}
}

// TestProfile_Evaluation computes a profile on held-out data with other
// instances and a longer series.
func TestProfile_Evaluation(t *testing.T) {
	train := tinyDataset(t)
	eval, err := dataset.New([]string{"x", "y", "z"},
		dataset.Variable{Name: "temp", Series: [][]float64{{1, 2, 1, 2, 1}, {0, 0, 0, 0, 0}, {2, 1, 2, 1, 2}}})
	require.NoError(t, err)

	c := shapelet.NewCandidate("temp", "a", 0, 2, shapelet.DefaultMetricAgg)
	p, err := shapelet.Profile(train, c, eval)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Rows())
	assert.Equal(t, 4, p.Cols())

	row, err := p.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5, 5}, row)
}

func TestProfile_Errors(t *testing.T) {
	train := tinyDataset(t)
	short, err := dataset.New([]string{"x"},
		dataset.Variable{Name: "temp", Series: [][]float64{{1, 2}}})
	require.NoError(t, err)
	other, err := dataset.New([]string{"x"},
		dataset.Variable{Name: "wind", Series: [][]float64{{1, 2, 3, 4}}})
	require.NoError(t, err)

	cases := []struct {
		name   string
		c      shapelet.Candidate
		target *dataset.Dataset
		want   error
	}{
		{"invalid in train", shapelet.NewCandidate("temp", "a", 3, 2, shapelet.DefaultMetricAgg), nil, shapelet.ErrDimensionMismatch},
		{"variable missing from target", shapelet.NewCandidate("temp", "a", 0, 2, shapelet.DefaultMetricAgg), other, shapelet.ErrDimensionMismatch},
		{"longer than target series", shapelet.NewCandidate("temp", "a", 0, 3, shapelet.DefaultMetricAgg), short, shapelet.ErrDimensionMismatch},
		{"unknown metric", shapelet.NewCandidate("temp", "a", 0, 2, shapelet.MetricAgg{Metric: "dtw", Aggregator: "min"}), nil, shapelet.ErrUnknownMetric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := shapelet.Profile(train, tc.c, tc.target)
			assert.Nil(t, p)
			require.ErrorIs(t, err, tc.want)

			var ce *shapelet.CandidateError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.c.Key(), ce.Candidate.Key())
		})
	}

	_, err = shapelet.Profile(nil, shapelet.NewCandidate("temp", "a", 0, 2, shapelet.DefaultMetricAgg), nil)
	assert.ErrorIs(t, err, shapelet.ErrConfiguration)
}

func TestAggregate_Max(t *testing.T) {
	ds := tinyDataset(t)
	c := shapelet.NewCandidate("temp", "a", 0, 2, maxAgg)

	p, err := shapelet.Profile(ds, c, nil)
	require.NoError(t, err)
	block, cols, err := shapelet.Aggregate(p, c)
	require.NoError(t, err)
	assert.Equal(t, []string{c.Name + "#Max", c.Name + "#Argument"}, cols)

	row, err := block.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 0}, row)
}
