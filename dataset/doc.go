// Package dataset holds the multi-variate time-series panel consumed by the
// shapelet search: a 3-D array indexed by (variable, time-step, instance).
//
// Variables are named channels, instances are independent series samples
// and the time axis is the position along a series. Within one variable
// every instance has the same length; different variables may have
// different lengths. Values must be finite.
//
// Usage:
//
//	ds, err := dataset.New(
//		[]string{"a", "b"},
//		dataset.Variable{Name: "temp", Series: [][]float64{{1, 2, 3}, {3, 2, 1}}},
//	)
//
// Generate builds deterministic synthetic panels (uniform noise, pulses,
// chirps) for tests and benchmarks.
package dataset
