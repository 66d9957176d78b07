package shapelet

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/katalvlaran/rshapelet/matrix"
)

const (
	methodTransform = "Transform"
	methodExtract   = "Extract"
)

// TransformOptions configures Transform.
type TransformOptions struct {
	// Workers is the number of goroutines evaluating candidates. Must be ≥ 1;
	// values above len(candidates) are capped.
	Workers int

	// Evaluation is the dataset the features are computed on. nil means the
	// training dataset itself.
	Evaluation *dataset.Dataset

	// Logger receives debug/warn events. nil discards them.
	Logger *slog.Logger
}

// DefaultTransformOptions returns a single-worker configuration evaluating
// on the training data.
func DefaultTransformOptions() TransformOptions {
	return TransformOptions{Workers: 1}
}

// result is the per-candidate output stored at the candidate's index.
type result struct {
	block   *matrix.Dense
	columns []string
}

// Transform computes the feature table of candidates: for every candidate,
// Profile against opts.Evaluation (train when nil), then Aggregate. Blocks
// are concatenated column-wise in candidate order, whatever order the
// workers finish in, so the output is bit-identical for any worker count.
//
// All candidates are validated against train before any work starts. The
// first failing candidate cancels ctx for the remaining workers and fails
// the whole batch; no partial table is returned.
//
// Errors:
//   - ErrConfiguration: nil train, empty candidate list, Workers < 1,
//     duplicate candidate names.
//   - *CandidateError wrapping ErrDimensionMismatch / ErrUnknownMetric.
//   - ctx.Err() when ctx is cancelled before the batch completes.
func Transform(ctx context.Context, train *dataset.Dataset, candidates []Candidate, opts TransformOptions) (*FeatureTable, error) {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if err := validateBatch(train, candidates, opts); err != nil {
		return nil, err
	}
	target := opts.Evaluation
	if target == nil {
		target = train
	}
	workers := min(opts.Workers, len(candidates))

	logger.Debug("shapelet transform started", "candidates", len(candidates), "workers", workers,
		"instances", target.NumInstances())
	began := time.Now()

	results := make([]result, len(candidates))
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan int, workers)
	g.Go(func() error {
		defer close(jobs)
		for i := range candidates {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				c := candidates[i]
				profile, err := Profile(train, c, target)
				if err != nil {
					return err
				}
				block, columns, err := Aggregate(profile, c)
				if err != nil {
					return err
				}
				results[i] = result{block: block, columns: columns}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("shapelet transform failed", "error", err, "elapsed", time.Since(began))
		return nil, err
	}

	blocks := make([]*matrix.Dense, len(results))
	columns := make([]string, 0, 2*len(results))
	for i, r := range results {
		blocks[i] = r.block
		columns = append(columns, r.columns...)
	}
	values, err := matrix.HStack(blocks...)
	if err != nil {
		return nil, shapeletErrorf(methodTransform, ErrDimensionMismatch, "%v", err)
	}
	table, err := NewFeatureTable(target.Instances(), columns, values)
	if err != nil {
		return nil, err
	}

	logger.Debug("shapelet transform finished", "candidates", len(candidates), "workers", workers,
		"columns", table.Cols(), "elapsed", time.Since(began))

	return table, nil
}

// validateBatch checks the batch before any goroutine starts.
func validateBatch(train *dataset.Dataset, candidates []Candidate, opts TransformOptions) error {
	if train == nil {
		return shapeletErrorf(methodTransform, ErrConfiguration, "nil train dataset")
	}
	if len(candidates) == 0 {
		return shapeletErrorf(methodTransform, ErrConfiguration, "empty candidate list")
	}
	if opts.Workers < 1 {
		return shapeletErrorf(methodTransform, ErrConfiguration, "workers=%d", opts.Workers)
	}
	names := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := names[c.Name]; dup {
			return shapeletErrorf(methodTransform, ErrConfiguration, "duplicate candidate name %q", c.Name)
		}
		names[c.Name] = struct{}{}
		if err := c.Validate(train); err != nil {
			return err
		}
	}

	return nil
}

// Extract draws n candidates from space and transforms them against the
// space's dataset. It returns the candidates alongside the table so callers
// can persist or re-apply them to held-out data.
func Extract(ctx context.Context, space *SearchSpace, n int, opts TransformOptions) ([]Candidate, *FeatureTable, error) {
	if space == nil {
		return nil, nil, shapeletErrorf(methodExtract, ErrConfiguration, "nil search space")
	}
	candidates, err := space.DrawCandidates(n)
	if err != nil {
		return nil, nil, err
	}
	table, err := Transform(ctx, space.Dataset(), candidates, opts)
	if err != nil {
		return nil, nil, err
	}

	return candidates, table, nil
}
