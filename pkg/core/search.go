package core

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Build generates a keyword search clause over columns.
//
// Every keyword becomes a parenthesized group comparing each column with
// lower(column) <operator> lower(value). Groups are joined with OR (AND when
// EveryWord is set) and comparisons inside a group with OR (AND when
// EveryColumn is set). The whole expression is wrapped in an outer group.
//
// With Interp unset the result is a *Bound, otherwise *Tokens.
func Build(keywords string, columns []string, opts Options) (Result, error) {
	if err := validate(columns); err != nil {
		return nil, err
	}
	frags := buildFragments(keywords, columns, opts.withDefaults())
	if opts.Interp {
		return &Tokens{Fragments: frags}, nil
	}
	return renderBound(frags), nil
}

// BuildBound always renders string mode, ignoring opts.Interp.
func BuildBound(keywords string, columns []string, opts Options) (*Bound, error) {
	opts.Interp = false
	res, err := Build(keywords, columns, opts)
	if err != nil {
		return nil, err
	}
	return res.(*Bound), nil
}

// BuildTokens always renders token mode, ignoring opts.Interp.
func BuildTokens(keywords string, columns []string, opts Options) (*Tokens, error) {
	opts.Interp = true
	res, err := Build(keywords, columns, opts)
	if err != nil {
		return nil, err
	}
	return res.(*Tokens), nil
}

func validate(columns []string) error {
	if columns == nil {
		var problems *multierror.Error
		problems = multierror.Append(problems, errors.New("columns is required"))
		return newConfigError(problems)
	}
	return nil
}

func buildFragments(keywords string, columns []string, opts Options) []Fragment {
	colJoin := opts.columnJoin()
	wordJoin := opts.wordJoin()

	frags := []Fragment{Literal("(\n")}
	for i, word := range SplitKeywords(keywords) {
		if i > 0 {
			frags = append(frags, Literal(wordJoin))
		}
		value := word
		if opts.WholeWord {
			value = WholeWordPattern(word)
		}
		frags = append(frags, Literal("("))
		for j, col := range columns {
			if j > 0 {
				frags = append(frags, Literal(colJoin))
			}
			frags = append(frags,
				Literal("lower("+col+") "+opts.Operator+" lower("),
				ValueRef(value),
				Literal(")"),
			)
		}
		frags = append(frags, Literal(")"))
	}
	return append(frags, Literal("\n)\n"))
}

// renderBound joins the fragments, replacing each value with "?".
func renderBound(frags []Fragment) *Bound {
	var sb strings.Builder
	values := []string{}
	for _, f := range frags {
		if f.IsValue() {
			sb.WriteString("?")
			values = append(values, f.Text)
			continue
		}
		sb.WriteString(f.Text)
	}
	return &Bound{SQL: sb.String(), Values: values}
}
