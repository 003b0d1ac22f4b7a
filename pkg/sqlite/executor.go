package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	search "github.com/asaidimu/keywordsql/pkg/core"
	"github.com/hashicorp/go-hclog"
)

// SqliteExecutor implements the SearchExecutor interface for SQLite databases.
// The database should be opened with Open so that REGEXP is available.
type SqliteExecutor struct {
	db             *sql.DB
	queryGenerator search.QueryGenerator
	logger         hclog.Logger
}

// NewSqliteExecutor creates a new SqliteExecutor instance. A nil query
// generator defaults to SqliteQuery and a nil logger discards output.
func NewSqliteExecutor(db *sql.DB, query search.QueryGenerator, logger hclog.Logger) *SqliteExecutor {
	if query == nil {
		query = NewSqliteQuery()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &SqliteExecutor{
		db:             db,
		queryGenerator: query,
		logger:         logger.Named("sqlite"),
	}
}

// Search runs a keyword search against tableName.
func (e *SqliteExecutor) Search(ctx context.Context, tableName, keywords string, columns []string, opts search.Options) (*search.SearchResult, error) {
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

	dbRows, err := search.ReadRows(rows, convertValue)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from database: %w", err)
	}
	e.logger.Debug("search finished", "table", tableName, "rows", len(dbRows))

	return &search.SearchResult{Data: dbRows}, nil
}

// convertValue applies SQLite's declared column types.
func convertValue(databaseType string, val any) any {
	switch databaseType {
	case "BOOLEAN": // SQLite often stores booleans as INTEGER (0 or 1)
		if intVal, ok := val.(int64); ok {
			return intVal != 0
		}
	}
	return val
}
