package textutil

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text, converts punctuation to whitespace, and splits on
// whitespace. Underscores survive tokenization so that downstream filters can
// recognise system identifiers (media filenames and the like) and drop the
// whole token.
func Tokenize(text string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Fields(mapped)
}

// IsNumeric reports whether token consists solely of digits.
func IsNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
