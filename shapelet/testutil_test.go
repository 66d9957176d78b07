package shapelet_test

import (
	"testing"

	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/stretchr/testify/require"
)

const seedDet int64 = 42

// tinyDataset is the hand-checkable panel used across tests:
//
//	temp: a = 1 2 3 4, b = 4 3 2 1
//	hum:  a = 0 1,     b = 1 0
func tinyDataset(t testing.TB) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		[]string{"a", "b"},
		dataset.Variable{Name: "temp", Series: [][]float64{{1, 2, 3, 4}, {4, 3, 2, 1}}},
		dataset.Variable{Name: "hum", Series: [][]float64{{0, 1}, {1, 0}}},
	)
	require.NoError(t, err)
	return ds
}

// panel builds a deterministic synthetic dataset.
func panel(t testing.TB, vars, instances, length int, seed int64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Generate(vars, instances, length,
		dataset.WithSeed(seed), dataset.WithWaveform(dataset.Chirp), dataset.WithNoise(0.1))
	require.NoError(t, err)
	return ds
}
