package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"sort"
	"testing"

	search "github.com/asaidimu/keywordsql/pkg/core"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test Setup Functions ---

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	// every connection to ":memory:" is a new database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE animals (
			id INTEGER PRIMARY KEY,
			pets TEXT,
			colors TEXT,
			adopted BOOLEAN
		);
		INSERT INTO animals (id, pets, colors, adopted) VALUES
		(1, 'Cat', 'Brown', TRUE),
		(2, 'Dog', 'Brown and White', FALSE),
		(3, 'Catfish', 'Grey', FALSE),
		(4, 'Parrot', 'Green', TRUE),
		(5, 'Hamster', NULL, FALSE);
	`)
	require.NoError(t, err)
	return db
}

func ids(t *testing.T, result *search.SearchResult) []int64 {
	t.Helper()
	out := []int64{}
	for _, row := range result.Data {
		id, ok := row["id"].(int64)
		require.Truef(t, ok, "id is %T", row["id"])
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// --- Tests ---

func TestGenerate(t *testing.T) {
	q := NewSqliteQuery()

	query, params, err := q.Generate("animals", "cat", []string{"pets"}, search.Options{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM \"animals\" WHERE (\n(lower(pets) REGEXP lower(?))\n)\n", query)
	assert.Equal(t, []any{"cat"}, params)

	query, _, err = q.Generate(`we"ird`, "cat", []string{"pets"}, search.Options{Operator: "LIKE"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM \"we\"\"ird\" WHERE (\n(lower(pets) LIKE lower(?))\n)\n", query)

	_, _, err = q.Generate("", "cat", []string{"pets"}, search.Options{})
	assert.Error(t, err)

	_, _, err = q.Generate("animals", "cat", nil, search.Options{})
	assert.ErrorIs(t, err, search.ErrInvalidConfiguration)
}

func TestExecutorSearch(t *testing.T) {
	db := setupTestDB(t)
	var logs bytes.Buffer
	exec := NewSqliteExecutor(db, nil, hclog.New(&hclog.LoggerOptions{Level: hclog.Debug, Output: &logs}))
	columns := []string{"pets", "colors"}
	ctx := context.Background()

	tests := []struct {
		name     string
		keywords string
		opts     search.Options
		want     []int64
	}{
		{"any word any column", "cat,brown", search.Options{}, []int64{1, 2, 3}},
		{"every word", "cat brown", search.Options{EveryWord: true}, []int64{1}},
		{"whole word", "cat;brown", search.Options{WholeWord: true}, []int64{1, 2}},
		{"every column", "cat brown", search.Options{EveryColumn: true}, []int64{}},
		{"case insensitive", "GREEN", search.Options{}, []int64{4}},
		{"whole word inside phrase", "white", search.Options{WholeWord: true}, []int64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := exec.Search(ctx, "animals", tt.keywords, columns, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(t, result))
		})
	}

	assert.Contains(t, logs.String(), "generated search query")
	assert.Contains(t, logs.String(), "search finished")
}

func TestExecutorRowValues(t *testing.T) {
	db := setupTestDB(t)
	exec := NewSqliteExecutor(db, nil, nil)

	result, err := exec.Search(context.Background(), "animals", "parrot", []string{"pets"}, search.Options{})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)

	row := result.Data[0]
	assert.Equal(t, "Parrot", row["pets"])
	assert.Equal(t, "Green", row["colors"])
	assert.Equal(t, true, row["adopted"])
}

func TestExecutorErrors(t *testing.T) {
	db := setupTestDB(t)
	exec := NewSqliteExecutor(db, nil, nil)
	ctx := context.Background()

	_, err := exec.Search(ctx, "missing_table", "cat", []string{"pets"}, search.Options{})
	assert.Error(t, err)

	_, err = exec.Search(ctx, "animals", "cat", nil, search.Options{})
	assert.ErrorIs(t, err, search.ErrInvalidConfiguration)

	// unbalanced regex metacharacters are passed through to the engine
	_, err = exec.Search(ctx, "animals", "(cat", []string{"pets"}, search.Options{})
	assert.Error(t, err)
}

func TestMatchRegexp(t *testing.T) {
	tests := []struct {
		pattern any
		value   any
		want    bool
	}{
		{"cat", "black cat", true},
		{search.WholeWordPattern("cat"), "black cat", true},
		{search.WholeWordPattern("cat"), "cat food", true},
		{search.WholeWordPattern("cat"), "catfish", false},
		{search.WholeWordPattern("cat"), "bobcat", false},
		{[]byte("dog"), []byte("hotdog"), true},
		{"dog", nil, false},
	}
	for _, tt := range tests {
		got, err := matchRegexp(tt.pattern, tt.value)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, got, "%v REGEXP %v", tt.value, tt.pattern)
	}

	_, err := matchRegexp("[", "x")
	assert.Error(t, err)
}

func TestPatternCacheBounded(t *testing.T) {
	patternCache.Purge()
	t.Cleanup(patternCache.Purge)

	for i := 0; i < patternCacheSize*3; i++ {
		_, err := matchRegexp(fmt.Sprintf("kw%d", i), "x")
		require.NoError(t, err)
	}
	assert.Equal(t, patternCacheSize, patternCache.Len())

	// the most recent pattern is still cached, the oldest was evicted
	assert.True(t, patternCache.Contains(fmt.Sprintf("kw%d", patternCacheSize*3-1)))
	assert.False(t, patternCache.Contains("kw0"))
}
