package shapelet

import (
	"fmt"

	"github.com/katalvlaran/rshapelet/matrix"
)

const methodNewFeatureTable = "NewFeatureTable"

// FeatureTable is the output of Transform: one row per instance of the
// evaluated dataset, one column per candidate statistic, in candidate order.
// It is immutable; accessors return copies.
type FeatureTable struct {
	instances []string
	columns   []string
	instIdx   map[string]int
	colIdx    map[string]int
	values    *matrix.Dense
}

// NewFeatureTable wraps values (len(instances) × len(columns)) with its
// labels. Labels must be non-empty and unique. values is copied.
func NewFeatureTable(instances, columns []string, values *matrix.Dense) (*FeatureTable, error) {
	if values == nil {
		return nil, shapeletErrorf(methodNewFeatureTable, ErrConfiguration, "nil values")
	}
	if values.Rows() != len(instances) || values.Cols() != len(columns) {
		return nil, shapeletErrorf(methodNewFeatureTable, ErrDimensionMismatch,
			"values %dx%d, labels %dx%d", values.Rows(), values.Cols(), len(instances), len(columns))
	}
	instIdx, err := labelIndex("instance", instances)
	if err != nil {
		return nil, shapeletErrorf(methodNewFeatureTable, ErrConfiguration, "%v", err)
	}
	colIdx, err := labelIndex("column", columns)
	if err != nil {
		return nil, shapeletErrorf(methodNewFeatureTable, ErrConfiguration, "%v", err)
	}

	return &FeatureTable{
		instances: append([]string(nil), instances...),
		columns:   append([]string(nil), columns...),
		instIdx:   instIdx,
		colIdx:    colIdx,
		values:    values.Clone().(*matrix.Dense),
	}, nil
}

func labelIndex(kind string, labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("empty %s label at %d", kind, i)
		}
		if _, dup := idx[l]; dup {
			return nil, fmt.Errorf("duplicate %s label %q", kind, l)
		}
		idx[l] = i
	}

	return idx, nil
}

// Rows returns the number of instances.
func (t *FeatureTable) Rows() int { return len(t.instances) }

// Cols returns the number of feature columns.
func (t *FeatureTable) Cols() int { return len(t.columns) }

// Instances returns the row labels in row order.
func (t *FeatureTable) Instances() []string { return append([]string(nil), t.instances...) }

// Columns returns the column labels in column order.
func (t *FeatureTable) Columns() []string { return append([]string(nil), t.columns...) }

// At returns the value of column for instance.
func (t *FeatureTable) At(instance, column string) (float64, error) {
	i, ok := t.instIdx[instance]
	if !ok {
		return 0, shapeletErrorf("At", ErrUnknownFeature, "instance %q", instance)
	}
	j, ok := t.colIdx[column]
	if !ok {
		return 0, shapeletErrorf("At", ErrUnknownFeature, "column %q", column)
	}

	return t.values.At(i, j)
}

// Column returns a copy of the named column, in row order.
func (t *FeatureTable) Column(name string) ([]float64, error) {
	j, ok := t.colIdx[name]
	if !ok {
		return nil, shapeletErrorf("Column", ErrUnknownFeature, "column %q", name)
	}
	out := make([]float64, t.Rows())
	var err error
	for i := range out {
		if out[i], err = t.values.At(i, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Row returns a copy of the feature vector of instance, in column order.
func (t *FeatureTable) Row(instance string) ([]float64, error) {
	i, ok := t.instIdx[instance]
	if !ok {
		return nil, shapeletErrorf("Row", ErrUnknownFeature, "instance %q", instance)
	}

	return t.values.Row(i)
}

// Values returns a copy of the underlying matrix.
func (t *FeatureTable) Values() *matrix.Dense { return t.values.Clone().(*matrix.Dense) }
