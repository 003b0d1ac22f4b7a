package sqlite

import (
	"fmt"
	"strings"

	search "github.com/asaidimu/keywordsql/pkg/core"
)

// DefaultOperator is used when Options.Operator is empty. SQLite has no "~"
// operator; REGEXP is served by the function registered on DriverName.
const DefaultOperator = "REGEXP"

type SqliteQuery struct{}

func NewSqliteQuery() *SqliteQuery {
	return &SqliteQuery{}
}

func quoteIdentifier(s string) string {
	escapedS := strings.ReplaceAll(s, `"`, `""`)
	return `"` + escapedS + `"`
}

// Generate implements the QueryGenerator interface for SQLite.
func (s *SqliteQuery) Generate(tableName, keywords string, columns []string, opts search.Options) (string, []any, error) {
	if tableName == "" {
		return "", nil, fmt.Errorf("table name cannot be empty")
	}
	if opts.Operator == "" {
		opts.Operator = DefaultOperator
	}

	clause, err := search.BuildBound(keywords, columns, opts)
	if err != nil {
		return "", nil, fmt.Errorf("error building WHERE clause: %w", err)
	}

	// ALWAYS quote the table name; columns are trusted and used verbatim
	sql := fmt.Sprintf("SELECT * FROM %s WHERE %s", quoteIdentifier(tableName), clause.SQL)
	return sql, clause.Args(), nil
}
