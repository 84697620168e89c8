package translate

import (
	"errors"
	"strings"
)

// ErrNoSyllables reports a misconfigured (empty) syllable table. It is a
// build/configuration failure, not a runtime input error.
var ErrNoSyllables = errors.New("translate: syllable table is empty")

// defaultSyllables is the lookup table for procedural word generation.
var defaultSyllables = []string{
	"li", "ra", "ba", "no", "ka", "se", "tu", "ven", "zor", "mi", "pha", "el",
}

// vowelSuffixes is appended to a generated word when the source word ends
// in the matching vowel.
var vowelSuffixes = map[rune]string{
	'a': "ra",
	'e': "ri",
	'i': "la",
	'o': "no",
	'u': "ma",
}

// Generate builds a deterministic pseudo-word for word using the given
// syllable table. Each character selects syllables[(codepoint+position) %
// len(syllables)]; a trailing vowel in the source appends its fixed suffix.
// The same word always yields the same pseudo-word.
func Generate(word string, syllables []string) (string, error) {
	if len(syllables) == 0 {
		return "", ErrNoSyllables
	}
	return generate(word, syllables), nil
}

func generate(word string, syllables []string) string {
	if word == "" {
		return ""
	}

	runes := []rune(word)
	var b strings.Builder
	for i, r := range runes {
		b.WriteString(syllables[(int(r)+i)%len(syllables)])
	}
	if suffix, ok := vowelSuffixes[runes[len(runes)-1]]; ok {
		b.WriteString(suffix)
	}
	return b.String()
}
