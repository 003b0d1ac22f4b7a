package postgres

import (
	"fmt"
	"strings"

	search "github.com/asaidimu/keywordsql/pkg/core"
)

type PostgresQuery struct{}

func NewPostgresQuery() *PostgresQuery {
	return &PostgresQuery{}
}

func quoteIdentifier(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Generate implements the QueryGenerator interface for PostgreSQL. Values
// are bound as $1..$n in the order they appear.
func (p *PostgresQuery) Generate(tableName, keywords string, columns []string, opts search.Options) (string, []any, error) {
	if tableName == "" {
		return "", nil, fmt.Errorf("table name cannot be empty")
	}

	tokens, err := search.BuildTokens(keywords, columns, opts)
	if err != nil {
		return "", nil, fmt.Errorf("error building WHERE clause: %w", err)
	}
	clause, args := search.Interpolate(tokens.Fragments, search.DollarDialect{}, 0)

	return fmt.Sprintf("SELECT * FROM %s WHERE %s", quoteIdentifier(tableName), clause), args, nil
}
