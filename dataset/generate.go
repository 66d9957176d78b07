// SPDX-License-Identifier: MIT
// Package: rshapelet/dataset
//
// generate.go — deterministic synthetic panels for tests, demos and benchmarks.
//
// Purpose:
//   • Produce reproducible (variable × time × instance) datasets without any
//     loader: uniform noise (the classic dummy panel), rectangular pulses or
//     linear chirps, each with optional trend and Gaussian noise.
//
// Contract:
//   • Generate(nVariables, nInstances, length, opts...) never panics on sizes;
//     invalid sizes return ErrBadSize.
//   • Strict determinism per (sizes, options): a single RNG stream is consumed
//     in fixed variable → instance → time order.
//   • Variables are named "0".."V-1", instances "0".."N-1".
//
// Determinism policy:
//   • WithRand(r) shares the caller's stream; otherwise WithSeed(seed) (or
//     defaultGenSeed) seeds a local stream.

package dataset

import (
	"math"
	"math/rand"
	"strconv"
)

// Waveform selects the base signal of generated series.
type Waveform int

const (
	// Uniform draws every sample from U[0, amplitude).
	Uniform Waveform = iota

	// Pulse is a rectangular pulse train of duty 0.5 with a random phase per instance.
	Pulse

	// Chirp is a linear frequency sweep with a random start phase per instance.
	Chirp
)

// Shared generator defaults.
const (
	defaultGenSeed   int64 = 1
	defaultAmplitude       = 1.0
	pulseBaseFreq          = 0.125 // cycles/sample, period ≈ 8
	pulseDuty              = 0.5
	chirpF0                = 0.02 // start frequency, cycles/sample
	chirpF1                = 0.25 // end frequency, cycles/sample
	tau                    = 2.0 * math.Pi
)

// genConfig aggregates all generator knobs; resolved once per Generate call.
type genConfig struct {
	rng       *rand.Rand
	waveform  Waveform
	amplitude float64 // >0
	sigma     float64 // ≥0
	trend     float64 // per-sample increment
}

// GenOption customizes Generate.
type GenOption func(*genConfig)

// WithSeed seeds a local RNG stream (reproducible datasets).
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG stream. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithWaveform selects the base signal. Panics on an unknown waveform.
func WithWaveform(w Waveform) GenOption {
	if w < Uniform || w > Chirp {
		panic("dataset: WithWaveform(unknown)")
	}
	return func(c *genConfig) {
		c.waveform = w
	}
}

// WithAmplitude sets the signal amplitude A (>0). Panics if A <= 0.
func WithAmplitude(a float64) GenOption {
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		panic("dataset: WithAmplitude(A<=0)")
	}
	return func(c *genConfig) {
		c.amplitude = a
	}
}

// WithNoise adds N(0, sigma²) noise to every sample. Panics if sigma < 0.
func WithNoise(sigma float64) GenOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("dataset: WithNoise(sigma<0)")
	}
	return func(c *genConfig) {
		c.sigma = sigma
	}
}

// WithTrend adds trend*t to sample t.
func WithTrend(trend float64) GenOption {
	if math.IsNaN(trend) || math.IsInf(trend, 0) {
		panic("dataset: WithTrend(non-finite)")
	}
	return func(c *genConfig) {
		c.trend = trend
	}
}

func newGenConfig(opts ...GenOption) genConfig {
	cfg := genConfig{
		waveform:  Uniform,
		amplitude: defaultAmplitude,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultGenSeed))
	}

	return cfg
}

// Generate builds an nVariables × length × nInstances dataset.
//
// Errors:
//   - ErrBadSize if any size is < 1.
//
// Complexity: O(V·N·L) time and space.
func Generate(nVariables, nInstances, length int, opts ...GenOption) (*Dataset, error) {
	if nVariables < 1 || nInstances < 1 || length < 1 {
		return nil, datasetErrorf("Generate", ErrBadSize,
			"variables=%d instances=%d length=%d", nVariables, nInstances, length)
	}
	cfg := newGenConfig(opts...)

	instances := make([]string, nInstances)
	for k := range instances {
		instances[k] = strconv.Itoa(k)
	}

	vars := make([]Variable, nVariables)
	for i := range vars {
		series := make([][]float64, nInstances)
		for k := range series {
			series[k] = cfg.series(length)
		}
		vars[i] = Variable{Name: strconv.Itoa(i), Series: series}
	}

	return New(instances, vars...)
}

// series renders one length-n series according to cfg.
func (c genConfig) series(n int) []float64 {
	out := make([]float64, n)

	var (
		phase float64 // per-series phase offset in [0,1)
		theta float64 // chirp phase accumulator
		frac  float64
		t     float64
		base  float64
	)
	if c.waveform != Uniform {
		phase = c.rng.Float64()
		theta = tau * phase
	}

	for i := 0; i < n; i++ {
		switch c.waveform {
		case Pulse:
			// Rectangular in {0, A}: on when the phase fraction is below the duty.
			frac = math.Mod(float64(i)*pulseBaseFreq+phase, 1.0)
			if frac < pulseDuty {
				base = c.amplitude
			} else {
				base = 0
			}
		case Chirp:
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			theta += tau * (chirpF0 + (chirpF1-chirpF0)*t)
			base = c.amplitude * math.Sin(theta)
		default:
			base = c.amplitude * c.rng.Float64()
		}

		base += c.trend * float64(i)
		if c.sigma > 0 {
			base += c.sigma * c.rng.NormFloat64()
		}
		out[i] = base
	}

	return out
}
