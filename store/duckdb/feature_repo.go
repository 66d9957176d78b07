package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rshapelet/matrix"
	"github.com/katalvlaran/rshapelet/shapelet"
)

const (
	axisRow = "row"
	axisCol = "col"
)

var (
	// ErrRunNotFound indicates an unknown or malformed run ID.
	ErrRunNotFound = errors.New("duckdb: run not found")

	// ErrNilTable indicates an attempt to save a nil feature table.
	ErrNilTable = errors.New("duckdb: nil feature table")
)

// Run summarizes one saved feature table.
type Run struct {
	ID         string
	Rows       int
	Cols       int
	Candidates int
	CreatedAt  time.Time
}

// FeatureRepo handles feature table persistence
type FeatureRepo struct {
	client *Client
}

// NewFeatureRepo creates a new feature repository
func NewFeatureRepo(client *Client) *FeatureRepo {
	return &FeatureRepo{client: client}
}

// Save stores table and the candidates that produced it in one transaction
// and returns the new run ID.
func (r *FeatureRepo) Save(ctx context.Context, table *shapelet.FeatureTable, candidates []shapelet.Candidate) (string, error) {
	if table == nil {
		return "", ErrNilTable
	}
	runID := uuid.NewString()

	tx, err := r.client.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO shapelet_runs (run_id, n_rows, n_cols, n_candidates) VALUES (?, ?, ?, ?)`,
		runID, table.Rows(), table.Cols(), len(candidates),
	); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	if err = insertCandidates(ctx, tx, runID, candidates); err != nil {
		return "", err
	}
	if err = insertLabels(ctx, tx, runID, axisRow, table.Instances()); err != nil {
		return "", err
	}
	if err = insertLabels(ctx, tx, runID, axisCol, table.Columns()); err != nil {
		return "", err
	}
	if err = insertValues(ctx, tx, runID, table.Values()); err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

func insertCandidates(ctx context.Context, tx *sql.Tx, runID string, candidates []shapelet.Candidate) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shapelet_candidates (
			run_id, ordinal, name, variable, instance, start_idx, win_length, metric, aggregator
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, c := range candidates {
		if _, err = stmt.ExecContext(ctx,
			runID, i, c.Name, c.Variable, c.Instance, c.Start, c.Length, c.MetricAgg.Metric, c.MetricAgg.Aggregator,
		); err != nil {
			return fmt.Errorf("failed to insert candidate %q: %w", c.Name, err)
		}
	}

	return nil
}

func insertLabels(ctx context.Context, tx *sql.Tx, runID, axis string, labels []string) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO shapelet_labels (run_id, axis, ordinal, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, l := range labels {
		if _, err = stmt.ExecContext(ctx, runID, axis, i, l); err != nil {
			return fmt.Errorf("failed to insert %s label %q: %w", axis, l, err)
		}
	}

	return nil
}

func insertValues(ctx context.Context, tx *sql.Tx, runID string, values *matrix.Dense) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO shapelet_features (run_id, row_ord, col_ord, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	var row []float64
	for i := 0; i < values.Rows(); i++ {
		if row, err = values.RowView(i); err != nil {
			return err
		}
		for j, v := range row {
			if _, err = stmt.ExecContext(ctx, runID, i, j, v); err != nil {
				return fmt.Errorf("failed to insert feature (%d, %d): %w", i, j, err)
			}
		}
	}

	return nil
}

// Load restores the feature table of runID with its row and column order.
func (r *FeatureRepo) Load(ctx context.Context, runID string) (*shapelet.FeatureTable, error) {
	run, err := r.run(ctx, runID)
	if err != nil {
		return nil, err
	}
	instances, err := r.labels(ctx, runID, axisRow)
	if err != nil {
		return nil, err
	}
	columns, err := r.labels(ctx, runID, axisCol)
	if err != nil {
		return nil, err
	}

	values, err := matrix.NewDense(run.Rows, run.Cols)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	rows, err := r.client.Query(ctx,
		`SELECT row_ord, col_ord, value FROM shapelet_features WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query features: %w", err)
	}
	defer rows.Close()

	var (
		i, j int
		v    float64
	)
	for rows.Next() {
		if err = rows.Scan(&i, &j, &v); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		if err = values.Set(i, j, v); err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shapelet.NewFeatureTable(instances, columns, values)
}

// Candidates returns the candidate batch of runID in its original order.
func (r *FeatureRepo) Candidates(ctx context.Context, runID string) ([]shapelet.Candidate, error) {
	if _, err := r.run(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := r.client.Query(ctx, `
		SELECT variable, instance, start_idx, win_length, metric, aggregator
		FROM shapelet_candidates
		WHERE run_id = ?
		ORDER BY ordinal
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var out []shapelet.Candidate
	for rows.Next() {
		var (
			variable, instance string
			start, length      int
			ma                 shapelet.MetricAgg
		)
		if err = rows.Scan(&variable, &instance, &start, &length, &ma.Metric, &ma.Aggregator); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, shapelet.NewCandidate(variable, instance, start, length, ma))
	}

	return out, rows.Err()
}

// Runs lists saved runs, oldest first.
func (r *FeatureRepo) Runs(ctx context.Context) ([]Run, error) {
	rows, err := r.client.Query(ctx, `
		SELECT run_id, n_rows, n_cols, n_candidates, created_at
		FROM shapelet_runs
		ORDER BY created_at, run_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err = rows.Scan(&run.ID, &run.Rows, &run.Cols, &run.Candidates, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Delete removes runID and everything saved with it.
func (r *FeatureRepo) Delete(ctx context.Context, runID string) error {
	if _, err := r.run(ctx, runID); err != nil {
		return err
	}

	tx, err := r.client.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE run_id = ?", table), runID); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// run fetches the index row of runID.
func (r *FeatureRepo) run(ctx context.Context, runID string) (Run, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return Run{}, fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}

	var run Run
	err := r.client.QueryRow(ctx,
		`SELECT run_id, n_rows, n_cols, n_candidates, created_at FROM shapelet_runs WHERE run_id = ?`, runID,
	).Scan(&run.ID, &run.Rows, &run.Cols, &run.Candidates, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to query run: %w", err)
	}

	return run, nil
}

func (r *FeatureRepo) labels(ctx context.Context, runID, axis string) ([]string, error) {
	rows, err := r.client.Query(ctx,
		`SELECT label FROM shapelet_labels WHERE run_id = ? AND axis = ? ORDER BY ordinal`, runID, axis)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s labels: %w", axis, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var l string
		if err = rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("failed to scan %s label: %w", axis, err)
		}
		out = append(out, l)
	}

	return out, rows.Err()
}
