package aggregate

import "github.com/katalvlaran/rshapelet/matrix"

// Registry names and column suffixes of the built-in aggregators.
const (
	MinName        = "min"
	MaxName        = "max"
	MinColumn      = "Min"
	MaxColumn      = "Max"
	ArgumentColumn = "Argument"
)

// Min reports, per instance, the minimum distance and the offset achieving it
// (first occurrence on ties). Columns: Min, Argument.
type Min struct{}

// Name implements Aggregator.
func (Min) Name() string { return MinName }

// Columns implements Aggregator.
func (Min) Columns() []string { return []string{MinColumn, ArgumentColumn} }

// Aggregate implements Aggregator.
// Complexity: O(rows·cols).
func (Min) Aggregate(profile *matrix.Dense) (*matrix.Dense, error) {
	return extremum(profile, func(v, best float64) bool { return v < best })
}

// Max reports, per instance, the maximum distance and the offset achieving it
// (first occurrence on ties). Columns: Max, Argument.
type Max struct{}

// Name implements Aggregator.
func (Max) Name() string { return MaxName }

// Columns implements Aggregator.
func (Max) Columns() []string { return []string{MaxColumn, ArgumentColumn} }

// Aggregate implements Aggregator.
// Complexity: O(rows·cols).
func (Max) Aggregate(profile *matrix.Dense) (*matrix.Dense, error) {
	return extremum(profile, func(v, best float64) bool { return v > best })
}
