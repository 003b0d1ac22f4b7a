package core

// DefaultOperator is the comparison inserted between lower(column) and
// lower(value) when Options.Operator is left empty.
const DefaultOperator = "~"

// Whole-word wrapping anchors a keyword to word boundaries.
const (
	WholeWordPrefix = "(^|[[:<:]])"
	WholeWordSuffix = "([[:>:]]|$)"
)

// Options controls how keywords and columns are combined.
//
// The zero value is the default configuration: any keyword may match any
// column, plain substring patterns, the "~" operator and string output.
// An empty Operator therefore always resolves to DefaultOperator;
// DecodeParams rejects an explicitly empty "operator" instead.
type Options struct {
	EveryColumn bool   `mapstructure:"every_column"` // AND column comparisons instead of OR
	EveryWord   bool   `mapstructure:"every_word"`   // AND keyword groups instead of OR
	WholeWord   bool   `mapstructure:"whole_word"`   // wrap keywords in word-boundary anchors
	Operator    string `mapstructure:"operator"`     // comparison operator; the zero value means DefaultOperator
	Interp      bool   `mapstructure:"interp"`       // produce Tokens instead of Bound
}

// withDefaults returns a copy of o with empty fields resolved.
func (o Options) withDefaults() Options {
	if o.Operator == "" {
		o.Operator = DefaultOperator
	}
	return o
}

// columnJoin is placed between comparisons inside one keyword group.
func (o Options) columnJoin() string {
	if o.EveryColumn {
		return " AND "
	}
	return " OR "
}

// wordJoin is placed between keyword groups.
func (o Options) wordJoin() string {
	if o.EveryWord {
		return "\n AND \n"
	}
	return "\n OR \n"
}

// FragmentKind tells a literal SQL fragment apart from a value reference.
type FragmentKind int

const (
	FragmentLiteral FragmentKind = iota
	FragmentValue
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentLiteral:
		return "literal"
	case FragmentValue:
		return "value"
	default:
		return "unknown"
	}
}

// Fragment is one item of a token-mode clause: either SQL text to be
// concatenated verbatim or a value to be bound in its place.
type Fragment struct {
	Kind FragmentKind
	Text string
}

// Literal returns a fragment holding raw SQL text.
func Literal(sql string) Fragment {
	return Fragment{Kind: FragmentLiteral, Text: sql}
}

// ValueRef returns a fragment referencing a value to bind.
func ValueRef(value string) Fragment {
	return Fragment{Kind: FragmentValue, Text: value}
}

// IsValue reports whether f must be bound rather than inlined.
func (f Fragment) IsValue() bool {
	return f.Kind == FragmentValue
}

// Result is the output of Build. It is either *Bound or *Tokens.
type Result interface {
	isResult()
}

// Bound is a SQL expression with "?" placeholders and the values for them,
// in left-to-right order.
type Bound struct {
	SQL    string
	Values []string
}

// Args returns Values as a slice suitable for database/sql.
func (b *Bound) Args() []any {
	args := make([]any, len(b.Values))
	for i, v := range b.Values {
		args[i] = v
	}
	return args
}

// Tokens is an unconcatenated clause for an interpolation helper.
type Tokens struct {
	Fragments []Fragment
}

func (*Bound) isResult()  {}
func (*Tokens) isResult() {}

// Row represents a single record/row of data retrieved from the database.
type Row map[string]any

// SearchResult holds the rows matched by an executor search.
type SearchResult struct {
	Data []Row `json:"data"`
}
