package shapelet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRNGFromSeed_ZeroMapsToDefault checks the seed policy.
func TestRNGFromSeed_ZeroMapsToDefault(t *testing.T) {
	a, b := rngFromSeed(0), rngFromSeed(defaultRNGSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

// TestCategorical_SkipsZeroWeights draws from a table with zero entries at
// both ends and in the middle.
func TestCategorical_SkipsZeroWeights(t *testing.T) {
	c := newCategorical([]float64{0, 1, 0, 3, 0})
	assert.Equal(t, 4.0, c.total())
	assert.Equal(t, 3, c.last)
	assert.Equal(t, []float64{0, 0.25, 0, 0.75, 0}, c.probabilities())

	r := rngFromSeed(7)
	counts := make([]int, 5)
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[c.draw(r)]++
	}
	assert.Zero(t, counts[0])
	assert.Zero(t, counts[2])
	assert.Zero(t, counts[4])
	assert.InDelta(t, 0.25, float64(counts[1])/draws, 0.02)
	assert.InDelta(t, 0.75, float64(counts[3])/draws, 0.02)
}

// TestCategorical_AllZero reports zero probabilities.
func TestCategorical_AllZero(t *testing.T) {
	c := newCategorical([]float64{0, 0})
	assert.Zero(t, c.total())
	assert.Equal(t, -1, c.last)
	assert.Equal(t, []float64{0, 0}, c.probabilities())
}

// TestAttemptBudget covers the default and explicit budgets.
func TestAttemptBudget(t *testing.T) {
	s := &SearchSpace{cfg: newSearchConfig()}
	assert.Equal(t, defaultAttemptFloor, s.attemptBudget(1))
	assert.Equal(t, 50*defaultAttemptsPerCandidate, s.attemptBudget(50))

	s = &SearchSpace{cfg: newSearchConfig(WithMaxAttempts(7))}
	assert.Equal(t, 7, s.attemptBudget(50))
}

// TestInBoundCount compares the closed form with a direct sum.
func TestInBoundCount(t *testing.T) {
	bounds := [][2]int{{0, 0}, {2, 0}, {0, 5}, {2, 5}, {3, 4}, {9, 0}, {0, 2}}
	for L := 2; L <= 12; L++ {
		for _, b := range bounds {
			s := &SearchSpace{cfg: newSearchConfig(WithLengthBounds(b[0], b[1]))}
			want := 0
			for l := 1; l <= L; l++ {
				if s.inBounds(l) {
					want += L - l + 1
				}
			}
			assert.Equal(t, want, s.inBoundCount(L), "L=%d bounds=%v", L, b)
		}
	}
}
