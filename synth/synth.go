// Package synth renders Libran text as audio. Each character gets a fixed
// time slice of mono 16-bit PCM: a pure sine tone at its pseudo-phoneme
// frequency, or silence for characters with no mapping.
package synth

import (
	"bytes"
	"math"
	"os"

	"github.com/libran-tools/libran/audio"
)

// Default synthesis parameters.
const (
	DefaultSampleRate     = 22050
	DefaultSymbolDuration = 0.12
	DefaultAmplitude      = 16000
)

// Synthesizer converts text into a waveform using per-character sine
// synthesis. The zero value is not usable; use New or fill all fields.
// Non-positive parameters are a caller precondition, not validated per
// sample.
type Synthesizer struct {
	SampleRate     int     // samples per second
	SymbolDuration float64 // seconds of audio per character
	Amplitude      int     // peak sample magnitude
}

// New returns a Synthesizer with the default parameters.
func New() Synthesizer {
	return Synthesizer{
		SampleRate:     DefaultSampleRate,
		SymbolDuration: DefaultSymbolDuration,
		Amplitude:      DefaultAmplitude,
	}
}

// SamplesPerSymbol returns the number of PCM samples emitted per character.
func (s Synthesizer) SamplesPerSymbol() int {
	return int(float64(s.SampleRate) * s.SymbolDuration)
}

// Samples returns the raw PCM samples for text, one fixed-length block per
// character, concatenated in text order.
func (s Synthesizer) Samples(text string) []int16 {
	perSymbol := s.SamplesPerSymbol()
	runes := []rune(text)
	out := make([]int16, 0, len(runes)*perSymbol)

	for _, c := range runes {
		freq := CharFrequency(c)
		if freq == 0.0 {
			out = append(out, make([]int16, perSymbol)...)
			continue
		}
		for k := 0; k < perSymbol; k++ {
			angle := 2.0 * math.Pi * freq * float64(k) / float64(s.SampleRate)
			out = append(out, int16(math.Round(float64(s.Amplitude)*math.Sin(angle))))
		}
	}
	return out
}

// Synthesize returns a complete in-memory WAV file for text.
func (s Synthesizer) Synthesize(text string) ([]byte, error) {
	var buf bytes.Buffer
	if err := audio.WriteWAV(&buf, s.Samples(text), s.SampleRate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the synthesized audio for text to path. I/O errors propagate
// unchanged; the file is closed on all paths.
func (s Synthesizer) Save(text, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.WriteWAV(f, s.Samples(text), s.SampleRate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
