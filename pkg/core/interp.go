package core

import (
	"strconv"
	"strings"
)

// Dialect supplies the bind placeholder syntax of a database.
type Dialect interface {
	// Placeholder returns the placeholder for the given 1-based index.
	Placeholder(index int) string
}

// QuestionDialect uses "?" for every placeholder (SQLite, MySQL).
type QuestionDialect struct{}

// Placeholder returns ?.
func (QuestionDialect) Placeholder(int) string { return "?" }

// DollarDialect uses numbered placeholders (PostgreSQL).
type DollarDialect struct{}

// Placeholder returns $1, $2, etc.
func (DollarDialect) Placeholder(index int) string {
	return "$" + strconv.Itoa(index)
}

// Interpolate assembles token-mode fragments into SQL for d. Value
// references become placeholders numbered from offset+1, so a clause can be
// appended after offset parameters already present in a statement.
func Interpolate(frags []Fragment, d Dialect, offset int) (string, []any) {
	var sb strings.Builder
	args := []any{}
	for _, f := range frags {
		if !f.IsValue() {
			sb.WriteString(f.Text)
			continue
		}
		args = append(args, f.Text)
		sb.WriteString(d.Placeholder(offset + len(args)))
	}
	return sb.String(), args
}
