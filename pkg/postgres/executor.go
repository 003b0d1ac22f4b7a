package postgres

import (
	"context"
	"database/sql"
	"fmt"

	search "github.com/asaidimu/keywordsql/pkg/core"
	"github.com/hashicorp/go-hclog"
)

// PostgresExecutor implements the SearchExecutor interface for PostgreSQL.
// Any database/sql driver speaking $n placeholders can back it.
type PostgresExecutor struct {
	db             *sql.DB
	queryGenerator search.QueryGenerator
	logger         hclog.Logger
}

// NewPostgresExecutor creates a new PostgresExecutor instance. A nil query
// generator defaults to PostgresQuery and a nil logger discards output.
func NewPostgresExecutor(db *sql.DB, query search.QueryGenerator, logger hclog.Logger) *PostgresExecutor {
	if query == nil {
		query = NewPostgresQuery()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &PostgresExecutor{
		db:             db,
		queryGenerator: query,
		logger:         logger.Named("postgres"),
	}
}

// Search runs a keyword search against tableName.
func (e *PostgresExecutor) Search(ctx context.Context, tableName, keywords string, columns []string, opts search.Options) (*search.SearchResult, error) {
	sqlQuery, queryParams, err := e.queryGenerator.Generate(tableName, keywords, columns, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SQL query: %w", err)
	}
	e.logger.Debug("generated search query", "sql", sqlQuery, "params", len(queryParams))

	rows, err := e.db.QueryContext(ctx, sqlQuery, queryParams...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	dbRows, err := search.ReadRows(rows, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from database: %w", err)
	}
	e.logger.Debug("search finished", "table", tableName, "rows", len(dbRows))

	return &search.SearchResult{Data: dbRows}, nil
}
