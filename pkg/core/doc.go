// Package core builds keyword search clauses for SQL WHERE conditions.
//
// A keyword string is split on whitespace, commas, semicolons and colons.
// Each keyword is compared against every column with
//
//	lower(column) <operator> lower(value)
//
// and the comparisons are grouped per keyword. Options choose whether all
// columns and all keywords must match, whether keywords are anchored to word
// boundaries, and which operator is used (default "~").
//
// Build returns either a *Bound, SQL text with "?" placeholders plus the
// values to bind, or *Tokens, the same clause as literal fragments and value
// references for Interpolate or another placeholder convention:
//
//	res, err := core.Build("cat,brown", []string{"pets", "colors"}, core.Options{})
//	if err != nil {
//		return err
//	}
//	bound := res.(*core.Bound)
//	rows, err := db.QueryContext(ctx, "SELECT * FROM animals WHERE "+bound.SQL, bound.Args()...)
//
// Keywords and column names are not escaped. Columns must be trusted
// identifiers and regex metacharacters in keywords reach the database as-is.
package core
