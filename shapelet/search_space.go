package shapelet

import (
	"fmt"

	"github.com/katalvlaran/rshapelet/dataset"
)

const (
	methodNewSearchSpace = "NewSearchSpace"
	methodDrawCandidates = "DrawCandidates"
)

// SearchSpace models, without materializing it, the set of all
// (variable, instance, start, length, metric+aggregator) candidates of a
// dataset and draws from it uniformly.
//
// Sampling model (computed once in NewSearchSpace):
//   - count[v][k] = L(L+1)/2 for a series of length L ≥ 2, 0 otherwise;
//   - P(variable v)          ∝ Σ_k count[v][k];
//   - P(instance k | v)      ∝ count[v][k];
//   - P(length l | L)        ∝ L − l + 1, l ∈ {1..L};
//   - P(start s | l, L)      = 1/(L − l + 1), s ∈ {0..L−l};
//   - P(metric+aggregator)   = 1/len(list).
//
// The product is uniform over the (start, length) pairs of every series, i.e.
// an importance-weighted draw over the true candidate space rather than a
// uniform draw over (variable, instance) pairs.
//
// A SearchSpace owns its RNG and is not safe for concurrent draws.
type SearchSpace struct {
	ds  *dataset.Dataset
	cfg searchConfig

	variables  []string
	instances  []string
	lengths    []int         // series length per variable
	counts     [][]int       // [variable][instance] candidate counts
	varDist    categorical   // over variables
	instDist   []categorical // per variable, over instances
	lengthDist map[int]categorical
	degenerate []string // variables whose series have length ≤ 1
	total      int
	feasible   int // unique in-bound candidates (× metric pairs)
}

// SeriesCandidateCount returns the number of (start, length) candidates of a
// series of length L: L(L+1)/2, or 0 for degenerate series (L ≤ 1).
func SeriesCandidateCount(L int) int {
	if L < 2 {
		return 0
	}
	return L * (L + 1) / 2
}

// LengthWeights returns w with w[l-1] = L − l + 1 for l ∈ {1..L}: the number
// of valid starts of a length-l window. Σw == SeriesCandidateCount(L).
// Returns nil for degenerate series.
func LengthWeights(L int) []float64 {
	if L < 2 {
		return nil
	}
	w := make([]float64, L)
	for l := 1; l <= L; l++ {
		w[l-1] = float64(L - l + 1)
	}

	return w
}

// NewSearchSpace builds the sampling model of ds.
//
// Errors:
//   - ErrConfiguration: nil dataset, empty/repeated metric list, malformed
//     metric names, negative bounds or attempt budget, minL ≥ maxL.
//   - ErrUnknownMetric: a metric or aggregator that is not registered.
//   - ErrEmptySearchSpace (also matching ErrDegenerateSeries): every series
//     has length ≤ 1.
//
// Complexity: O(V·N + ΣL) time and space.
func NewSearchSpace(ds *dataset.Dataset, opts ...Option) (*SearchSpace, error) {
	cfg := newSearchConfig(opts...)
	if err := validateSearchConfig(ds, cfg); err != nil {
		return nil, err
	}

	s := &SearchSpace{
		ds:         ds,
		cfg:        cfg,
		variables:  ds.Variables(),
		instances:  ds.Instances(),
		lengthDist: make(map[int]categorical),
	}

	// Stage 1: per (variable, instance) candidate counts.
	varWeights := make([]float64, len(s.variables))
	s.lengths = make([]int, len(s.variables))
	s.counts = make([][]int, len(s.variables))
	s.instDist = make([]categorical, len(s.variables))
	for i, v := range s.variables {
		L, err := ds.Length(v)
		if err != nil {
			return nil, err
		}
		s.lengths[i] = L

		row := make([]int, len(s.instances))
		weights := make([]float64, len(s.instances))
		var sum int
		for k := range s.instances {
			row[k] = SeriesCandidateCount(L)
			weights[k] = float64(row[k])
			sum += row[k]
		}
		s.counts[i] = row
		s.instDist[i] = newCategorical(weights)
		varWeights[i] = float64(sum)
		s.total += sum

		if sum == 0 {
			s.degenerate = append(s.degenerate, v)
			continue
		}
		if _, ok := s.lengthDist[L]; !ok {
			s.lengthDist[L] = newCategorical(LengthWeights(L))
		}
	}
	if s.total == 0 {
		return nil, shapeletErrorf(methodNewSearchSpace, fmt.Errorf("%w: %w", ErrEmptySearchSpace, ErrDegenerateSeries),
			"all %d variables have series of length <= 1", len(s.variables))
	}

	// Stage 2: variable distribution and feasible unique count.
	s.varDist = newCategorical(varWeights)
	for i := range s.variables {
		s.feasible += s.inBoundCount(s.lengths[i]) * len(s.instances)
	}
	s.feasible *= len(cfg.metricAggs)

	cfg.logger.Debug("shapelet search space built",
		"variables", len(s.variables),
		"instances", len(s.instances),
		"candidates", s.total,
		"feasible", s.feasible,
		"degenerate", len(s.degenerate),
		"metric_aggs", len(cfg.metricAggs),
	)

	return s, nil
}

// validateSearchConfig checks options against ds. Order: dataset → metric
// list → bounds → attempt budget.
func validateSearchConfig(ds *dataset.Dataset, cfg searchConfig) error {
	if ds == nil {
		return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "nil dataset")
	}
	if len(cfg.metricAggs) == 0 {
		return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "empty metric+aggregator list")
	}
	seen := make(map[MetricAgg]struct{}, len(cfg.metricAggs))
	for _, ma := range cfg.metricAggs {
		if ma.Metric == "" || ma.Aggregator == "" {
			return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "malformed metric+aggregator %q", ma)
		}
		if _, dup := seen[ma]; dup {
			return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "repeated metric+aggregator %q", ma)
		}
		seen[ma] = struct{}{}
		if _, _, err := ma.resolve(); err != nil {
			return shapeletErrorf(methodNewSearchSpace, err, "%q", ma)
		}
	}
	if cfg.minL < 0 || cfg.maxL < 0 {
		return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "negative length bound (minL=%d maxL=%d)", cfg.minL, cfg.maxL)
	}
	if cfg.minL > 0 && cfg.maxL > 0 && cfg.minL >= cfg.maxL {
		return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "minL=%d >= maxL=%d", cfg.minL, cfg.maxL)
	}
	if cfg.maxAttempts < 0 {
		return shapeletErrorf(methodNewSearchSpace, ErrConfiguration, "negative max attempts %d", cfg.maxAttempts)
	}

	return nil
}

// inBounds applies the strict length filter minL < length < maxL; unset
// bounds (0) leave that side open.
func (s *SearchSpace) inBounds(length int) bool {
	if s.cfg.minL > 0 && length <= s.cfg.minL {
		return false
	}
	if s.cfg.maxL > 0 && length >= s.cfg.maxL {
		return false
	}
	return true
}

// inBoundCount returns the number of (start, length) pairs of a length-L
// series whose length passes inBounds: Σ_{l=lo..hi} (L − l + 1).
func (s *SearchSpace) inBoundCount(L int) int {
	if L < 2 {
		return 0
	}
	lo, hi := 1, L
	if s.cfg.minL > 0 {
		lo = s.cfg.minL + 1
	}
	if s.cfg.maxL > 0 && s.cfg.maxL-1 < hi {
		hi = s.cfg.maxL - 1
	}
	if hi < lo {
		return 0
	}
	// arithmetic series from (L−hi+1) to (L−lo+1)
	a, b := L-hi+1, L-lo+1
	return (a + b) * (b - a + 1) / 2
}

// DrawCandidate draws one candidate from the sampling model. The length
// bounds are not applied here; DrawCandidates filters them.
//
// Complexity: O(log V + log N + log L).
func (s *SearchSpace) DrawCandidate() Candidate {
	r := s.cfg.rng

	vi := s.varDist.draw(r)
	ki := s.instDist[vi].draw(r)
	L := s.lengths[vi]
	length := s.lengthDist[L].draw(r) + 1
	start := r.Intn(L - length + 1)
	ma := s.cfg.metricAggs[r.Intn(len(s.cfg.metricAggs))]

	return NewCandidate(s.variables[vi], s.instances[ki], start, length, ma)
}

// DrawCandidates draws until n structurally unique candidates with
// minL < length < maxL have accumulated, in draw order.
//
// Errors:
//   - ErrConfiguration if n < 0.
//   - ErrSamplingExhausted if n exceeds FeasibleCount() (immediately) or the
//     attempt budget runs out.
//
// Complexity: O(attempts · log(V·N·L)) time, O(n) space.
func (s *SearchSpace) DrawCandidates(n int) ([]Candidate, error) {
	if n < 0 {
		return nil, shapeletErrorf(methodDrawCandidates, ErrConfiguration, "n=%d", n)
	}
	if n > s.feasible {
		s.cfg.logger.Warn("shapelet sampling infeasible", "requested", n, "feasible", s.feasible)
		return nil, shapeletErrorf(methodDrawCandidates, ErrSamplingExhausted,
			"requested %d candidates, only %d unique candidates satisfy the bounds", n, s.feasible)
	}

	budget := s.attemptBudget(n)
	out := make([]Candidate, 0, n)
	seen := make(map[Key]struct{}, n)

	var attempts, duplicates, outOfBounds int
	for len(out) < n {
		if attempts >= budget {
			s.cfg.logger.Warn("shapelet sampling exhausted",
				"requested", n, "drawn", len(out), "attempts", attempts,
				"duplicates", duplicates, "out_of_bounds", outOfBounds)
			return nil, shapeletErrorf(methodDrawCandidates, ErrSamplingExhausted,
				"%d of %d candidates after %d attempts", len(out), n, attempts)
		}
		attempts++

		c := s.DrawCandidate()
		key := c.Key()
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		if !s.inBounds(c.Length) {
			outOfBounds++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}

	s.cfg.logger.Debug("shapelet candidates drawn",
		"n", n, "attempts", attempts, "duplicates", duplicates, "out_of_bounds", outOfBounds)

	return out, nil
}

func (s *SearchSpace) attemptBudget(n int) int {
	if s.cfg.maxAttempts > 0 {
		return s.cfg.maxAttempts
	}
	return max(defaultAttemptFloor, n*defaultAttemptsPerCandidate)
}

// Dataset returns the dataset the space was built from.
func (s *SearchSpace) Dataset() *dataset.Dataset { return s.ds }

// MetricAggs returns the configured metric+aggregator pairs (copy).
func (s *SearchSpace) MetricAggs() []MetricAgg {
	return append([]MetricAgg(nil), s.cfg.metricAggs...)
}

// TotalCandidates returns Σ count[v][k] over all series (one metric pair).
func (s *SearchSpace) TotalCandidates() int { return s.total }

// FeasibleCount returns the number of unique candidates DrawCandidates can
// return: in-bound (start, length) pairs × instances × metric pairs.
func (s *SearchSpace) FeasibleCount() int { return s.feasible }

// Degenerate returns the variables excluded from sampling (series length ≤ 1).
func (s *SearchSpace) Degenerate() []string { return append([]string(nil), s.degenerate...) }

// CandidateCount returns count[variable][instance].
func (s *SearchSpace) CandidateCount(variable, instance string) (int, error) {
	i, err := s.ds.VariableIndex(variable)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	k, err := s.ds.InstanceIndex(instance)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}

	return s.counts[i][k], nil
}

// VariableProbabilities returns P(variable) by name.
func (s *SearchSpace) VariableProbabilities() map[string]float64 {
	p := s.varDist.probabilities()
	out := make(map[string]float64, len(p))
	for i, v := range s.variables {
		out[v] = p[i]
	}

	return out
}

// InstanceProbabilities returns P(instance | variable) by instance ID. All
// zero for a degenerate variable.
func (s *SearchSpace) InstanceProbabilities(variable string) (map[string]float64, error) {
	i, err := s.ds.VariableIndex(variable)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	p := s.instDist[i].probabilities()
	out := make(map[string]float64, len(p))
	for k, id := range s.instances {
		out[id] = p[k]
	}

	return out, nil
}
