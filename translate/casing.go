package translate

import (
	"strings"
	"unicode"
)

// RestoreCase adjusts translated so its casing matches source. The rule is
// a three-way heuristic: all-caps source uppercases the whole translation,
// a capitalized source capitalizes only the first character, anything else
// passes the translation through unchanged. Mixed-case tokens such as
// "McDonald" are intentionally not round-tripped.
func RestoreCase(source, translated string) string {
	if source == "" {
		return translated
	}
	if isUpper(source) {
		return strings.ToUpper(translated)
	}
	if firstRuneUpper(source) {
		return capitalize(translated)
	}
	return translated
}

// isUpper reports whether source contains at least one cased character and
// no lowercase ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func firstRuneUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// capitalize uppercases the first character and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}
