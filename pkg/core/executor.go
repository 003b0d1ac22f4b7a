package core

import (
	"context"
	"database/sql"
	"fmt"
)

// SearchExecutor runs keyword searches against a database.
type SearchExecutor interface {
	// Search returns the rows of tableName where keywords match columns
	// according to opts.
	Search(ctx context.Context, tableName, keywords string, columns []string, opts Options) (*SearchResult, error)
}

// ValueConverter normalizes a scanned value given the column's database
// type name.
type ValueConverter func(databaseType string, value any) any

// ReadRows reads all rows into Row maps. []byte values become strings
// before convert, if non-nil, is applied.
func ReadRows(rows *sql.Rows, convert ValueConverter) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var columnTypes []*sql.ColumnType
	if convert != nil {
		columnTypes, err = rows.ColumnTypes()
		if err != nil {
			return nil, fmt.Errorf("failed to get column types: %w", err)
		}
	}

	results := []Row{}
	for rows.Next() {
		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			if convert != nil && val != nil {
				val = convert(columnTypes[i].DatabaseTypeName(), val)
			}
			row[col] = val
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after scanning rows: %w", err)
	}
	return results, nil
}
