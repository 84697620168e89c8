package synth

import "unicode"

// baseFrequencies maps characters with a dedicated pseudo-phoneme pitch.
// Vowels sit on a rising musical scale; the common consonants l/r/n/s get
// pitches of their own so generated words are audibly distinct.
var baseFrequencies = map[rune]float64{
	'a': 440.0,
	'e': 493.88,
	'i': 523.25,
	'o': 587.33,
	'u': 659.25,
	'l': 392.0,
	'r': 415.3,
	'n': 349.23,
	's': 329.63,
}

// CharFrequency returns the pseudo-phoneme frequency in Hz for c.
// Letters outside the base table fall back to 300Hz plus a per-letter
// offset, decimal digits to 250Hz plus a per-digit offset. Everything else
// is 0, which the synthesizer renders as silence.
func CharFrequency(c rune) float64 {
	lower := unicode.ToLower(c)
	if f, ok := baseFrequencies[lower]; ok {
		return f
	}
	if unicode.IsLetter(c) {
		offset := (int(lower) - 'a') % 26
		if offset < 0 {
			offset += 26
		}
		return 300.0 + float64(offset)*12.5
	}
	if unicode.IsDigit(c) {
		return 250.0 + float64(digitValue(c))*20.0
	}
	return 0.0
}

// digitValue returns the decimal value of a digit rune. Decimal digits
// occupy contiguous runs of ten code points starting at their zero, so the
// value is the distance from the start of the run.
func digitValue(c rune) int {
	v := 0
	for unicode.IsDigit(c - 1) {
		c--
		v++
	}
	return v
}
