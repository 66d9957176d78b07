package duckdb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/rshapelet/dataset"
	"github.com/katalvlaran/rshapelet/shapelet"
	"github.com/katalvlaran/rshapelet/store/duckdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, path string) *duckdb.FeatureRepo {
	t.Helper()
	client, err := duckdb.NewClient(path)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, duckdb.InitializeSchema(context.Background(), client))
	return duckdb.NewFeatureRepo(client)
}

// extractRun draws and transforms a small deterministic batch.
func extractRun(t *testing.T, seed int64) ([]shapelet.Candidate, *shapelet.FeatureTable) {
	t.Helper()
	ds, err := dataset.Generate(2, 4, 16, dataset.WithSeed(seed), dataset.WithWaveform(dataset.Pulse))
	require.NoError(t, err)
	space, err := shapelet.NewSearchSpace(ds, shapelet.WithSeed(seed),
		shapelet.WithMetricAggs(shapelet.DefaultMetricAgg, shapelet.MetricAgg{Metric: "sqeuclidean", Aggregator: "max"}))
	require.NoError(t, err)
	cands, table, err := shapelet.Extract(context.Background(), space, 6, shapelet.TransformOptions{Workers: 2})
	require.NoError(t, err)
	return cands, table
}

func TestFeatureRepo_SaveLoad(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, duckdb.MemoryPath)
	cands, table := extractRun(t, 11)

	runID, err := repo.Save(ctx, table, cands)
	require.NoError(t, err)
	_, err = uuid.Parse(runID)
	require.NoError(t, err)

	loaded, err := repo.Load(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, table.Instances(), loaded.Instances())
	assert.Equal(t, table.Columns(), loaded.Columns())
	assert.True(t, table.Values().Equal(loaded.Values()))

	restored, err := repo.Candidates(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, cands, restored)
}

func TestFeatureRepo_RunsAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, filepath.Join(t.TempDir(), "features.duckdb"))

	candsA, tableA := extractRun(t, 1)
	candsB, tableB := extractRun(t, 2)
	idA, err := repo.Save(ctx, tableA, candsA)
	require.NoError(t, err)
	idB, err := repo.Save(ctx, tableB, candsB)
	require.NoError(t, err)
	require.NotEqual(t, idA, idB)

	runs, err := repo.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	ids := []string{runs[0].ID, runs[1].ID}
	assert.ElementsMatch(t, []string{idA, idB}, ids)
	for _, run := range runs {
		assert.Equal(t, 4, run.Rows)
		assert.Equal(t, 12, run.Cols)
		assert.Equal(t, 6, run.Candidates)
		assert.False(t, run.CreatedAt.IsZero())
	}

	require.NoError(t, repo.Delete(ctx, idA))
	_, err = repo.Load(ctx, idA)
	assert.ErrorIs(t, err, duckdb.ErrRunNotFound)
	_, err = repo.Candidates(ctx, idA)
	assert.ErrorIs(t, err, duckdb.ErrRunNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, idA), duckdb.ErrRunNotFound)

	runs, err = repo.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, idB, runs[0].ID)

	loaded, err := repo.Load(ctx, idB)
	require.NoError(t, err)
	assert.True(t, tableB.Values().Equal(loaded.Values()))
}

func TestFeatureRepo_Errors(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, duckdb.MemoryPath)

	_, err := repo.Save(ctx, nil, nil)
	assert.ErrorIs(t, err, duckdb.ErrNilTable)

	_, err = repo.Load(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, duckdb.ErrRunNotFound)
	_, err = repo.Load(ctx, uuid.NewString())
	assert.ErrorIs(t, err, duckdb.ErrRunNotFound)

	runs, err := repo.Runs(ctx)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSchema_DropAndRecreate(t *testing.T) {
	ctx := context.Background()
	client, err := duckdb.NewClient(duckdb.MemoryPath)
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, duckdb.InitializeSchema(ctx, client))
	require.NoError(t, duckdb.InitializeSchema(ctx, client), "schema creation is idempotent")
	require.NoError(t, duckdb.DropAllTables(ctx, client))

	_, err = duckdb.NewFeatureRepo(client).Runs(ctx)
	assert.Error(t, err)
	assert.Equal(t, duckdb.MemoryPath, client.Path())
}
