package core

// QueryGenerator produces a complete search statement for one database
// flavour from a table name, a keyword string and the columns to search.
type QueryGenerator interface {
	// Generate returns the SQL text and its positional parameters.
	Generate(tableName, keywords string, columns []string, opts Options) (string, []any, error)
}
