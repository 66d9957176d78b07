// Package shapelet - sentinel errors and the candidate-scoped error type.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Failures tied to one candidate are returned as *CandidateError, which
//     carries the candidate identity (variable, instance, start, length) and
//     unwraps to the sentinel.
//   - No panics on user input; option constructors panic on programmer errors.
package shapelet

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates invalid construction parameters: length
	// bounds with minL ≥ maxL, an empty or repeated metric list, a bad worker
	// count, an empty or duplicated candidate batch, a nil dataset.
	ErrConfiguration = errors.New("shapelet: invalid configuration")

	// ErrSamplingExhausted indicates that DrawCandidates could not collect the
	// requested number of unique in-bound candidates within its attempt budget,
	// or that the request exceeds the number of feasible candidates.
	ErrSamplingExhausted = errors.New("shapelet: sampling exhausted")

	// ErrDimensionMismatch indicates a candidate that does not fit a dataset:
	// unknown variable or instance, or a window outside the series.
	ErrDimensionMismatch = errors.New("shapelet: dimension mismatch")

	// ErrDegenerateSeries marks series of length ≤ 1, which hold no candidate.
	ErrDegenerateSeries = errors.New("shapelet: degenerate series")

	// ErrEmptySearchSpace indicates that every series of the dataset is degenerate.
	ErrEmptySearchSpace = errors.New("shapelet: empty search space")

	// ErrUnknownMetric indicates a metric or aggregator name with no registered implementation.
	ErrUnknownMetric = errors.New("shapelet: unknown metric or aggregator")

	// ErrUnknownFeature indicates a lookup of a missing feature column or instance.
	ErrUnknownFeature = errors.New("shapelet: unknown feature column or instance")
)

// CandidateError reports a failure tied to one candidate.
type CandidateError struct {
	Op        string    // operation that failed, e.g. "Profile"
	Candidate Candidate // offending candidate
	Err       error     // underlying error; unwraps to a sentinel
}

// Error implements error.
func (e *CandidateError) Error() string {
	c := e.Candidate
	return fmt.Sprintf("%s: candidate %q (variable=%q instance=%q start=%d length=%d): %v",
		e.Op, c.Name, c.Variable, c.Instance, c.Start, c.Length, e.Err)
}

// Unwrap returns the underlying error.
func (e *CandidateError) Unwrap() error { return e.Err }

func candidateError(op string, c Candidate, err error) error {
	return &CandidateError{Op: op, Candidate: c, Err: err}
}

// shapeletErrorf wraps a sentinel with method context and a formatted detail:
// "<method>: <detail>: <err>".
func shapeletErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
