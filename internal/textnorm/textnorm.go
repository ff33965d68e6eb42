// Package textnorm canonicalizes sentences before comparison.
// Every drill check and alignment pass goes through Normalize first, so
// punctuation and casing never affect scoring.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, strips everything that is neither a word
// character nor whitespace, collapses whitespace runs to a single space,
// and trims. Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	space := false
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsSpace(r):
			space = true
		case isWordRune(r):
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		}
		// Punctuation and symbols are dropped.
	}

	return b.String()
}

// Fields normalizes text and splits it into words. Returns nil for input
// that normalizes to the empty string.
func Fields(text string) []string {
	n := Normalize(text)
	if n == "" {
		return nil
	}
	return strings.Split(n, " ")
}

// isWordRune reports whether r survives normalization: letters and digits.
// Underscore is stripped along with punctuation.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
