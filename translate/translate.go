// Package translate converts English text into the constructed Libran
// language. Translation is a pure function of the input text and the
// effective dictionary: known words come from the dictionary, unknown words
// get a deterministic procedurally generated pseudo-word, and punctuation,
// spacing and casing survive unchanged.
package translate

import (
	"strings"

	"github.com/libran-tools/libran/lexicon"
)

// Translate converts text into Libran. The effective dictionary is the
// built-in default overlaid with override (case-insensitive keys, override
// wins). Every input yields a result; there are no error paths.
func Translate(text string, override map[string]string) string {
	dict := lexicon.Default()
	if len(override) > 0 {
		dict.Merge(override)
	}
	return WithDictionary(text, dict)
}

// WithDictionary converts text into Libran using an already assembled
// effective dictionary. The dictionary is only read.
func WithDictionary(text string, dict *lexicon.Dictionary) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range Tokenize(text) {
		if !tok.Word {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(RestoreCase(tok.Text, translateWord(tok.Text, dict)))
	}
	return b.String()
}

func translateWord(word string, dict *lexicon.Dictionary) string {
	if v, ok := dict.Lookup(word); ok {
		return v
	}
	// A second lookup on the normalized form catches punctuation fused to
	// the token that the word scanner let through.
	normalized := Normalize(word)
	if v, ok := dict.Lookup(normalized); ok {
		return v
	}
	return generate(normalized, defaultSyllables)
}
