// Package libran converts English text into the constructed Libran
// language and renders the result as synthesized audio. The two halves are
// independent: translation is a pure text transform, synthesis a pure
// text-to-waveform transform; this package wires them into one pipeline.
package libran

import (
	"fmt"
	"os"

	"github.com/libran-tools/libran/lexicon"
	"github.com/libran-tools/libran/synth"
	"github.com/libran-tools/libran/translate"
)

// Pipeline is the top-level translator plus synthesizer. Both pieces hold
// no mutable state across calls, so a Pipeline is safe for concurrent use.
type Pipeline struct {
	Dict  *lexicon.Dictionary
	Synth synth.Synthesizer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDictionary overlays m onto the default dictionary. Caller entries win
// on key collision; keys are case-insensitive.
func WithDictionary(m map[string]string) Option {
	return func(p *Pipeline) {
		p.Dict.Merge(m)
	}
}

// WithDictionaryFile overlays a flat JSON dictionary loaded from path.
func WithDictionaryFile(path string) Option {
	return func(p *Pipeline) {
		if path == "" {
			return
		}
		d, err := lexicon.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: load dictionary: %v\n", err)
			return
		}
		for _, w := range d.Words() {
			v, _ := d.Lookup(w)
			p.Dict.Add(w, v)
		}
	}
}

// WithSynthesizer replaces the default synthesis parameters.
func WithSynthesizer(s synth.Synthesizer) Option {
	return func(p *Pipeline) {
		p.Synth = s
	}
}

// New creates a Pipeline with the built-in dictionary and default
// synthesizer, then applies opts.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		Dict:  lexicon.Default(),
		Synth: synth.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Translate converts English text into Libran.
func (p *Pipeline) Translate(text string) string {
	return translate.WithDictionary(text, p.Dict)
}

// Synthesize renders already-translated Libran text as an in-memory WAV
// file.
func (p *Pipeline) Synthesize(libranText string) ([]byte, error) {
	return p.Synth.Synthesize(libranText)
}

// Speak translates English text and synthesizes the result, returning the
// Libran text alongside the WAV bytes.
func (p *Pipeline) Speak(text string) (string, []byte, error) {
	libranText := p.Translate(text)
	wav, err := p.Synth.Synthesize(libranText)
	if err != nil {
		return libranText, nil, fmt.Errorf("synthesize: %w", err)
	}
	return libranText, wav, nil
}

// SpeakToFile translates English text and writes the synthesized audio to
// path, returning the Libran text.
func (p *Pipeline) SpeakToFile(text, path string) (string, error) {
	libranText := p.Translate(text)
	if err := p.Synth.Save(libranText, path); err != nil {
		return libranText, fmt.Errorf("save audio: %w", err)
	}
	return libranText, nil
}

// TranslateAndSpeakFile reads English text from inputPath, translates it
// and writes the synthesized audio to audioPath, returning the Libran text.
func (p *Pipeline) TranslateAndSpeakFile(inputPath, audioPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return p.SpeakToFile(string(data), audioPath)
}
