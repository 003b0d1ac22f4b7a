package core

import (
	"regexp"
)

// keywordSeparators matches runs of whitespace, commas, semicolons and colons.
var keywordSeparators = regexp.MustCompile(`[\s,;:]+`)

// SplitKeywords splits a search string into its keywords. Empty tokens
// produced by leading, trailing or repeated separators are dropped.
func SplitKeywords(keywords string) []string {
	var words []string
	for _, w := range keywordSeparators.Split(keywords, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// WholeWordPattern anchors keyword to word boundaries. Regex metacharacters
// in keyword are passed through unescaped.
func WholeWordPattern(keyword string) string {
	return WholeWordPrefix + keyword + WholeWordSuffix
}
