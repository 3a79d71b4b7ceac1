package turkmenfst

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Compose returns s in NFC form, so that decomposed diacritics
// (a+U+0308, n+U+030C, ...) become the precomposed letters of the
// Turkmen Latin alphabet used by lexicon keys.
func Compose(s string) string {
	return norm.NFC.String(s)
}

// NormalizeKey returns the lookup key for a word: composed, trimmed
// and lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(Compose(s)))
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
