package analyzer

import "strings"

// Tokenize lower-cases text and splits it on runs of whitespace.
// Punctuation stays attached to its word; matching compensates by
// using substring containment instead of equality.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Match reports whether one token is a substring of the other.
//
// The containment is deliberately permissive: a short query token such
// as "consci" matches the longer content token "consciência", and a
// single-character token matches almost anything. This is the intended
// behavior of the lexical heuristic, not something to tighten.
func Match(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
