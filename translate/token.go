package translate

import "unicode"

// Token is a span of input text. Concatenating the Text of all tokens in
// order reconstructs the input exactly, which is what lets punctuation and
// spacing survive translation unchanged.
type Token struct {
	Text string
	Word bool // run of [A-Za-z0-9'] with an alphanumeric, or a lone non-ASCII letter/digit
}

func isWordRune(r rune) bool {
	return r == '\'' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

func isAlnumRune(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// Tokenize scans text left to right, preferring the longest run of word
// characters; any other character becomes a single-character token.
// Single non-ASCII letters and digits still count as words, so accented
// characters reach the translator instead of leaking into the output.
// Apostrophe-only runs carry no translatable content and are marked literal.
func Tokenize(text string) []Token {
	runes := []rune(text)
	var tokens []Token
	for i := 0; i < len(runes); {
		if r := runes[i]; !isWordRune(r) {
			tokens = append(tokens, Token{
				Text: string(r),
				Word: unicode.IsLetter(r) || unicode.IsDigit(r),
			})
			i++
			continue
		}
		j := i
		alnum := false
		for j < len(runes) && isWordRune(runes[j]) {
			if isAlnumRune(runes[j]) {
				alnum = true
			}
			j++
		}
		tokens = append(tokens, Token{Text: string(runes[i:j]), Word: alnum})
		i = j
	}
	return tokens
}
