// SPDX-License-Identifier: MIT
// Package: rshapelet/dataset
//
// dataset.go — the (variable × time × instance) container.
//
// Layout:
//   • One matrix.Dense per variable: row k = series of instance k, column t =
//     time step t. Lengths are therefore uniform within a variable and free
//     across variables.
//   • Variables and instances keep their insertion order; lookups by name go
//     through index maps built once in New.
//
// Contract:
//   • A Dataset is immutable after New and safe for concurrent readers.
//   • Table and SeriesView return views into the backing storage; callers
//     must not write through them.

package dataset

import (
	"github.com/katalvlaran/rshapelet/matrix"
)

// Method tags used in error context.
const (
	methodNew    = "New"
	methodLength = "Length"
	methodSeries = "Series"
	methodWindow = "Window"
	methodTable  = "Table"
)

// Variable is one named channel: Series[k] is the series of the k-th
// instance passed to New.
type Variable struct {
	Name   string
	Series [][]float64
}

// Dataset is a read-only multi-variate time-series panel.
type Dataset struct {
	variables []string
	instances []string
	varIdx    map[string]int
	instIdx   map[string]int
	tables    []*matrix.Dense // one per variable, rows=instances, cols=time
}

// New validates and copies the given variables into a Dataset.
//
// Validation order (first failure wins):
//  1. at least one instance and one variable (ErrEmpty);
//  2. non-empty, unique instance IDs and variable names (ErrEmptyID, ErrDuplicateID);
//  3. exactly len(instances) non-empty series per variable, all of one length (ErrShape);
//  4. finite values only (ErrNaNInf).
//
// Complexity: O(V·N·L) time and space.
func New(instances []string, vars ...Variable) (*Dataset, error) {
	if len(instances) == 0 || len(vars) == 0 {
		return nil, datasetErrorf(methodNew, ErrEmpty, "instances=%d variables=%d", len(instances), len(vars))
	}

	ds := &Dataset{
		variables: make([]string, 0, len(vars)),
		instances: append([]string(nil), instances...),
		varIdx:    make(map[string]int, len(vars)),
		instIdx:   make(map[string]int, len(instances)),
		tables:    make([]*matrix.Dense, 0, len(vars)),
	}

	for k, id := range instances {
		if id == "" {
			return nil, datasetErrorf(methodNew, ErrEmptyID, "instance #%d", k)
		}
		if _, dup := ds.instIdx[id]; dup {
			return nil, datasetErrorf(methodNew, ErrDuplicateID, "instance %q", id)
		}
		ds.instIdx[id] = k
	}

	for _, v := range vars {
		if v.Name == "" {
			return nil, datasetErrorf(methodNew, ErrEmptyID, "variable #%d", len(ds.variables))
		}
		if _, dup := ds.varIdx[v.Name]; dup {
			return nil, datasetErrorf(methodNew, ErrDuplicateID, "variable %q", v.Name)
		}
		if len(v.Series) != len(instances) {
			return nil, datasetErrorf(methodNew, ErrShape,
				"variable %q has %d series for %d instances", v.Name, len(v.Series), len(instances))
		}
		if err := matrix.ValidateRectangular(v.Series); err != nil {
			return nil, datasetErrorf(methodNew, ErrShape, "variable %q", v.Name)
		}
		for k, s := range v.Series {
			if err := matrix.ValidateFinite(s); err != nil {
				return nil, datasetErrorf(methodNew, ErrNaNInf, "variable %q instance %q", v.Name, instances[k])
			}
		}
		tbl, err := matrix.NewDenseFromRows(v.Series)
		if err != nil {
			// Unreachable after the checks above; keep the matrix sentinel visible.
			return nil, datasetErrorf(methodNew, err, "variable %q", v.Name)
		}

		ds.varIdx[v.Name] = len(ds.variables)
		ds.variables = append(ds.variables, v.Name)
		ds.tables = append(ds.tables, tbl)
	}

	return ds, nil
}

// Variables returns the variable names in insertion order (copy).
func (d *Dataset) Variables() []string { return append([]string(nil), d.variables...) }

// Instances returns the instance IDs in insertion order (copy).
func (d *Dataset) Instances() []string { return append([]string(nil), d.instances...) }

// NumVariables returns the number of variables.
func (d *Dataset) NumVariables() int { return len(d.variables) }

// NumInstances returns the number of instances.
func (d *Dataset) NumInstances() int { return len(d.instances) }

// HasVariable reports whether name is a variable of d.
func (d *Dataset) HasVariable(name string) bool {
	_, ok := d.varIdx[name]
	return ok
}

// VariableIndex returns the position of variable name.
func (d *Dataset) VariableIndex(name string) (int, error) {
	i, ok := d.varIdx[name]
	if !ok {
		return 0, datasetErrorf("VariableIndex", ErrUnknownVariable, "%q", name)
	}

	return i, nil
}

// InstanceIndex returns the position of instance id.
func (d *Dataset) InstanceIndex(id string) (int, error) {
	k, ok := d.instIdx[id]
	if !ok {
		return 0, datasetErrorf("InstanceIndex", ErrUnknownInstance, "%q", id)
	}

	return k, nil
}

// Length returns the series length of variable name.
func (d *Dataset) Length(name string) (int, error) {
	i, ok := d.varIdx[name]
	if !ok {
		return 0, datasetErrorf(methodLength, ErrUnknownVariable, "%q", name)
	}

	return d.tables[i].Cols(), nil
}

// Table returns the instances × time table of variable name.
// The table is shared with the dataset and must not be modified.
func (d *Dataset) Table(name string) (*matrix.Dense, error) {
	i, ok := d.varIdx[name]
	if !ok {
		return nil, datasetErrorf(methodTable, ErrUnknownVariable, "%q", name)
	}

	return d.tables[i], nil
}

// SeriesView returns the series of (variable, instance) without copying.
func (d *Dataset) SeriesView(variable, instance string) ([]float64, error) {
	i, ok := d.varIdx[variable]
	if !ok {
		return nil, datasetErrorf(methodSeries, ErrUnknownVariable, "%q", variable)
	}
	k, ok := d.instIdx[instance]
	if !ok {
		return nil, datasetErrorf(methodSeries, ErrUnknownInstance, "%q", instance)
	}

	return d.tables[i].RowView(k)
}

// Series returns a copy of the series of (variable, instance).
func (d *Dataset) Series(variable, instance string) ([]float64, error) {
	view, err := d.SeriesView(variable, instance)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), view...), nil
}

// Window returns a copy of series[start : start+length] of (variable, instance).
// Requires length ≥ 1 and 0 ≤ start ≤ L−length.
func (d *Dataset) Window(variable, instance string, start, length int) ([]float64, error) {
	view, err := d.SeriesView(variable, instance)
	if err != nil {
		return nil, err
	}
	if length < 1 || start < 0 || start > len(view)-length {
		return nil, datasetErrorf(methodWindow, ErrOutOfRange,
			"%s/%s start=%d length=%d series=%d", variable, instance, start, length, len(view))
	}

	return append([]float64(nil), view[start:start+length]...), nil
}
