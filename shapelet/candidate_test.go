package shapelet_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/katalvlaran/rshapelet/shapelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetricAgg(t *testing.T) {
	ma, err := shapelet.ParseMetricAgg("sqeuclidean+min")
	require.NoError(t, err)
	assert.Equal(t, shapelet.DefaultMetricAgg, ma)
	assert.Equal(t, "sqeuclidean+min", ma.String())

	for _, bad := range []string{"", "sqeuclidean", "+min", "sqeuclidean+", "min"} {
		_, err = shapelet.ParseMetricAgg(bad)
		assert.ErrorIs(t, err, shapelet.ErrConfiguration, "input %q", bad)
	}
}

func TestCandidateName(t *testing.T) {
	c := shapelet.NewCandidate("temp", "a", 2, 3, shapelet.DefaultMetricAgg)
	assert.Equal(t, "temp#a#2-3#sqeuclidean+min", c.Name)
	assert.Equal(t, shapelet.Key{
		Variable: "temp", Instance: "a", Start: 2, Length: 3, MetricAgg: shapelet.DefaultMetricAgg,
	}, c.Key())

	other := shapelet.NewCandidate("temp", "a", 2, 3, shapelet.MetricAgg{Metric: "sqeuclidean", Aggregator: "max"})
	assert.NotEqual(t, c.Key(), other.Key(), "metric pair is part of the identity")
	assert.NotEqual(t, c.Name, other.Name)
}

func TestCandidate_Validate(t *testing.T) {
	ds := tinyDataset(t)

	cases := []struct {
		name string
		c    shapelet.Candidate
		ok   bool
	}{
		{"full series", shapelet.NewCandidate("temp", "a", 0, 4, shapelet.DefaultMetricAgg), true},
		{"last point", shapelet.NewCandidate("temp", "b", 3, 1, shapelet.DefaultMetricAgg), true},
		{"past end", shapelet.NewCandidate("temp", "a", 2, 3, shapelet.DefaultMetricAgg), false},
		{"zero length", shapelet.NewCandidate("temp", "a", 0, 0, shapelet.DefaultMetricAgg), false},
		{"negative start", shapelet.NewCandidate("temp", "a", -1, 2, shapelet.DefaultMetricAgg), false},
		{"unknown variable", shapelet.NewCandidate("wind", "a", 0, 1, shapelet.DefaultMetricAgg), false},
		{"unknown instance", shapelet.NewCandidate("temp", "z", 0, 1, shapelet.DefaultMetricAgg), false},
		{"longer than short variable", shapelet.NewCandidate("hum", "a", 0, 3, shapelet.DefaultMetricAgg), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.c.Validate(ds)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, shapelet.ErrDimensionMismatch)
			var ce *shapelet.CandidateError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tc.c, ce.Candidate)
			assert.Contains(t, err.Error(), tc.c.Name)
		})
	}

	err := shapelet.NewCandidate("temp", "a", 0, 1, shapelet.DefaultMetricAgg).Validate(nil)
	assert.ErrorIs(t, err, shapelet.ErrConfiguration)
}

func TestCandidate_Subsequence(t *testing.T) {
	ds := tinyDataset(t)
	c := shapelet.NewCandidate("temp", "b", 1, 2, shapelet.DefaultMetricAgg)

	w, err := c.Subsequence(ds)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, w)

	w[0] = 99
	again, err := c.Subsequence(ds)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, again, "subsequence is a copy")

	_, err = shapelet.NewCandidate("temp", "b", 3, 2, shapelet.DefaultMetricAgg).Subsequence(ds)
	assert.ErrorIs(t, err, shapelet.ErrDimensionMismatch)
	assert.ErrorIs(t, err, dataset.ErrOutOfRange)
}
