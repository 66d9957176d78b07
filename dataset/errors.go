// SPDX-License-Identifier: MIT
// Package: rshapelet/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (variable / instance / index) is attached with %w at the
//     detection site through datasetErrorf.
//   • Constructors and accessors never panic on user input. Option
//     constructors (WithX) panic on meaningless values, as builder options do.

package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a dataset without instances or without variables.
	ErrEmpty = errors.New("dataset: no instances or variables")

	// ErrEmptyID indicates an empty variable name or instance ID.
	ErrEmptyID = errors.New("dataset: empty identifier")

	// ErrDuplicateID indicates a repeated variable name or instance ID.
	ErrDuplicateID = errors.New("dataset: duplicate identifier")

	// ErrShape indicates that a variable does not hold exactly one non-empty
	// series per instance, or that its series have different lengths.
	ErrShape = errors.New("dataset: inconsistent series shape")

	// ErrNaNInf indicates an undefined (NaN) or infinite value in a series.
	ErrNaNInf = errors.New("dataset: NaN or Inf in series")

	// ErrUnknownVariable indicates a variable name that is not in the dataset.
	ErrUnknownVariable = errors.New("dataset: unknown variable")

	// ErrUnknownInstance indicates an instance ID that is not in the dataset.
	ErrUnknownInstance = errors.New("dataset: unknown instance")

	// ErrOutOfRange indicates a window (start, length) outside the series.
	ErrOutOfRange = errors.New("dataset: window out of range")

	// ErrBadSize indicates an invalid size for a generated dataset.
	ErrBadSize = errors.New("dataset: invalid size")
)

// datasetErrorf wraps err with the given method context.
// The result has the form "<method>: <formatted message>: <err>".
func datasetErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
