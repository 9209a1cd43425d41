package engine

import (
	"strings"
	"unicode"
)

// stopwords are common articles, prepositions and question words that carry
// no matching signal. Kept deliberately small; see the dead-entry test in the
// knowledge package before extending it.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {},
	"how": {}, "what": {}, "can": {}, "do": {},
	"i": {}, "to": {}, "in": {}, "on": {},
}

// Tokenize turns free text into normalized keyword tokens: lowercased, split
// on whitespace runs, stripped of non-alphanumerics, with short tokens and
// stopwords removed. Pure and deterministic; empty or all-stopword input
// yields an empty slice.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tok := stripNonAlphanumeric(field)
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func stripNonAlphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
