// Package shapelet - RNG utilities of the sampling engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical candidate streams across platforms.
//   - Encapsulation: the SearchSpace owns its *rand.Rand; no global source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A SearchSpace must not be drawn
//     from concurrently; sampling happens before work is fanned out.
package shapelet

import (
	"math/rand"
	"sort"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or no seed.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// categorical is a cumulative weight table for O(log n) weighted draws.
// Zero weights are allowed and are never drawn.
type categorical struct {
	w    []float64 // raw weights
	cdf  []float64 // cdf[i] = Σ_{j≤i} w[j]
	last int       // index of the last positive weight, -1 if none
}

func newCategorical(weights []float64) categorical {
	c := categorical{
		w:    append([]float64(nil), weights...),
		cdf:  make([]float64, len(weights)),
		last: -1,
	}
	var acc float64
	for i, w := range weights {
		acc += w
		c.cdf[i] = acc
		if w > 0 {
			c.last = i
		}
	}

	return c
}

// total returns the sum of all weights.
func (c categorical) total() float64 {
	if len(c.cdf) == 0 {
		return 0
	}
	return c.cdf[len(c.cdf)-1]
}

// draw returns index i with probability w[i]/Σw. Requires total() > 0.
// Complexity: O(log n).
func (c categorical) draw(r *rand.Rand) int {
	u := r.Float64() * c.total()
	// first i with cdf[i] > u skips zero-weight entries (cdf[i] == cdf[i-1])
	i := sort.Search(len(c.cdf), func(i int) bool { return c.cdf[i] > u })
	if i > c.last {
		// u rounded up to total
		return c.last
	}

	return i
}

// probabilities returns w[i]/Σw, or all zeros when Σw == 0.
func (c categorical) probabilities() []float64 {
	p := make([]float64, len(c.w))
	tot := c.total()
	if tot == 0 {
		return p
	}
	for i, w := range c.w {
		p[i] = w / tot
	}

	return p
}
