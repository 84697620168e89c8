package translate

import "strings"

// Normalize returns a canonical form of text: lowercased, with every
// character that is not a lowercase letter, digit or apostrophe replaced by
// a space, whitespace runs collapsed to one space, and the result trimmed.
// The output alphabet is [a-z0-9' ]. Normalization improves dictionary
// match rate and canonicalizes input for the procedural word generator.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSpace := false
	for _, r := range lowered {
		if r == '\'' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		// Whitespace and punctuation alike collapse into one separator.
		pendingSpace = true
	}
	return b.String()
}
