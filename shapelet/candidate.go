package shapelet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rshapelet/aggregate"
	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/katalvlaran/rshapelet/distance"
)

// Name layout: <variable>#<instance>#<start>-<length>#<metric>+<aggregator>.
const (
	nameSep      = "#"
	rangeSep     = "-"
	metricAggSep = "+"
)

// MetricAgg pairs a distance metric with the aggregator reducing its profile.
type MetricAgg struct {
	Metric     string
	Aggregator string
}

// DefaultMetricAgg is squared Euclidean distance reduced by its minimum.
var DefaultMetricAgg = MetricAgg{Metric: distance.SqEuclideanName, Aggregator: aggregate.MinName}

// ParseMetricAgg parses "<metric>+<aggregator>", e.g. "sqeuclidean+min".
func ParseMetricAgg(s string) (MetricAgg, error) {
	metric, agg, ok := strings.Cut(s, metricAggSep)
	if !ok || metric == "" || agg == "" {
		return MetricAgg{}, shapeletErrorf("ParseMetricAgg", ErrConfiguration, "%q", s)
	}

	return MetricAgg{Metric: metric, Aggregator: agg}, nil
}

// String renders the pair as "<metric>+<aggregator>".
func (m MetricAgg) String() string { return m.Metric + metricAggSep + m.Aggregator }

// resolve looks up the kernel and aggregator named by m.
func (m MetricAgg) resolve() (distance.Kernel, aggregate.Aggregator, error) {
	k, err := distance.Lookup(m.Metric)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnknownMetric, err)
	}
	a, err := aggregate.Lookup(m.Aggregator)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrUnknownMetric, err)
	}

	return k, a, nil
}

// Candidate is one drawn shapelet: the window [Start, Start+Length) of the
// series of (Variable, Instance), compared with MetricAgg. Candidates are
// values; treat them as immutable once drawn.
type Candidate struct {
	Variable  string
	Instance  string
	Start     int
	Length    int
	MetricAgg MetricAgg
	Name      string
}

// Key is the structural identity of a candidate, used for duplicate detection.
type Key struct {
	Variable  string
	Instance  string
	Start     int
	Length    int
	MetricAgg MetricAgg
}

// NewCandidate builds a candidate and its generated name.
func NewCandidate(variable, instance string, start, length int, ma MetricAgg) Candidate {
	return Candidate{
		Variable:  variable,
		Instance:  instance,
		Start:     start,
		Length:    length,
		MetricAgg: ma,
		Name:      CandidateName(variable, instance, start, length, ma),
	}
}

// CandidateName renders <variable>#<instance>#<start>-<length>#<metric>+<aggregator>.
func CandidateName(variable, instance string, start, length int, ma MetricAgg) string {
	return fmt.Sprintf("%s%s%s%s%d%s%d%s%s",
		variable, nameSep, instance, nameSep, start, rangeSep, length, nameSep, ma)
}

// Key returns the structural identity of c.
func (c Candidate) Key() Key {
	return Key{
		Variable:  c.Variable,
		Instance:  c.Instance,
		Start:     c.Start,
		Length:    c.Length,
		MetricAgg: c.MetricAgg,
	}
}

// Validate checks the candidate invariants against ds: variable and instance
// exist, 1 ≤ Length ≤ L and 0 ≤ Start ≤ L − Length.
func (c Candidate) Validate(ds *dataset.Dataset) error {
	if ds == nil {
		return candidateError("Validate", c, fmt.Errorf("%w: nil dataset", ErrConfiguration))
	}
	if _, err := ds.Window(c.Variable, c.Instance, c.Start, c.Length); err != nil {
		return candidateError("Validate", c, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}

	return nil
}

// Subsequence returns a copy of the candidate's window in ds.
func (c Candidate) Subsequence(ds *dataset.Dataset) ([]float64, error) {
	if ds == nil {
		return nil, candidateError("Subsequence", c, fmt.Errorf("%w: nil dataset", ErrConfiguration))
	}
	w, err := ds.Window(c.Variable, c.Instance, c.Start, c.Length)
	if err != nil {
		return nil, candidateError("Subsequence", c, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
	}

	return w, nil
}
