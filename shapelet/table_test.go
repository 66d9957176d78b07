package shapelet_test

import (
	"testing"

	"github.com/katalvlaran/rshapelet/matrix"
	"github.com/katalvlaran/rshapelet/shapelet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable(t *testing.T) *shapelet.FeatureTable {
	t.Helper()
	values, err := matrix.NewDenseFromRows([][]float64{{0.5, 1}, {2.5, 3}})
	require.NoError(t, err)
	table, err := shapelet.NewFeatureTable([]string{"a", "b"}, []string{"f#Min", "f#Argument"}, values)
	require.NoError(t, err)
	return table
}

func TestFeatureTable_Accessors(t *testing.T) {
	table := sampleTable(t)

	assert.Equal(t, 2, table.Rows())
	assert.Equal(t, 2, table.Cols())
	assert.Equal(t, []string{"a", "b"}, table.Instances())
	assert.Equal(t, []string{"f#Min", "f#Argument"}, table.Columns())

	v, err := table.At("b", "f#Min")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	col, err := table.Column("f#Argument")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, col)

	row, err := table.Row("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1}, row)

	_, err = table.At("z", "f#Min")
	assert.ErrorIs(t, err, shapelet.ErrUnknownFeature)
	_, err = table.At("a", "g#Min")
	assert.ErrorIs(t, err, shapelet.ErrUnknownFeature)
	_, err = table.Column("g#Min")
	assert.ErrorIs(t, err, shapelet.ErrUnknownFeature)
	_, err = table.Row("z")
	assert.ErrorIs(t, err, shapelet.ErrUnknownFeature)
}

func TestFeatureTable_Copies(t *testing.T) {
	table := sampleTable(t)

	vals := table.Values()
	require.NoError(t, vals.Set(0, 0, 42))
	row, err := table.Row("a")
	require.NoError(t, err)
	row[1] = 42
	table.Columns()[0] = "mutated"

	v, err := table.At("a", "f#Min")
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	v, err = table.At("a", "f#Argument")
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, "f#Min", table.Columns()[0])
}

func TestNewFeatureTable_Validation(t *testing.T) {
	values, err := matrix.NewDenseFromRows([][]float64{{1, 2}})
	require.NoError(t, err)

	_, err = shapelet.NewFeatureTable([]string{"a"}, []string{"x", "y"}, nil)
	assert.ErrorIs(t, err, shapelet.ErrConfiguration)
	_, err = shapelet.NewFeatureTable([]string{"a", "b"}, []string{"x", "y"}, values)
	assert.ErrorIs(t, err, shapelet.ErrDimensionMismatch)
	_, err = shapelet.NewFeatureTable([]string{"a"}, []string{"x", "x"}, values)
	assert.ErrorIs(t, err, shapelet.ErrConfiguration)
	_, err = shapelet.NewFeatureTable([]string{""}, []string{"x", "y"}, values)
	assert.ErrorIs(t, err, shapelet.ErrConfiguration)
}
