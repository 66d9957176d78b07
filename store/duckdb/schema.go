package duckdb

import (
	"context"
	"fmt"
)

// CreateRunsTable creates the run index table
const CreateRunsTable = `
CREATE TABLE IF NOT EXISTS shapelet_runs (
    run_id VARCHAR PRIMARY KEY,
    n_rows BIGINT NOT NULL,
    n_cols BIGINT NOT NULL,
    n_candidates BIGINT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// CreateCandidatesTable stores the ordered candidate batch of a run
const CreateCandidatesTable = `
CREATE TABLE IF NOT EXISTS shapelet_candidates (
    run_id VARCHAR NOT NULL,
    ordinal BIGINT NOT NULL,
    name VARCHAR NOT NULL,
    variable VARCHAR NOT NULL,
    instance VARCHAR NOT NULL,
    start_idx BIGINT NOT NULL,
    win_length BIGINT NOT NULL,
    metric VARCHAR NOT NULL,
    aggregator VARCHAR NOT NULL,
    PRIMARY KEY (run_id, ordinal)
);
`

// CreateLabelsTable stores row (instance) and column labels in order
const CreateLabelsTable = `
CREATE TABLE IF NOT EXISTS shapelet_labels (
    run_id VARCHAR NOT NULL,
    axis VARCHAR NOT NULL,
    ordinal BIGINT NOT NULL,
    label VARCHAR NOT NULL,
    PRIMARY KEY (run_id, axis, ordinal)
);
`

// CreateFeaturesTable stores feature values in long format
const CreateFeaturesTable = `
CREATE TABLE IF NOT EXISTS shapelet_features (
    run_id VARCHAR NOT NULL,
    row_ord BIGINT NOT NULL,
    col_ord BIGINT NOT NULL,
    value DOUBLE NOT NULL,
    PRIMARY KEY (run_id, row_ord, col_ord)
);
`

// tables lists every table, children first.
var tables = []string{"shapelet_features", "shapelet_labels", "shapelet_candidates", "shapelet_runs"}

// InitializeSchema creates all required tables
func InitializeSchema(ctx context.Context, c *Client) error {
	schemas := []string{
		CreateRunsTable,
		CreateCandidatesTable,
		CreateLabelsTable,
		CreateFeaturesTable,
	}

	for _, schema := range schemas {
		if err := c.Exec(ctx, schema); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with caution)
func DropAllTables(ctx context.Context, c *Client) error {
	for _, table := range tables {
		if err := c.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
