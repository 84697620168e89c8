package translate

import (
	"strings"
	"testing"
)

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"Hello, World!!",
		"don't stop",
		"  spaced   out  ",
		"tabs\tand\nnewlines",
		"mix3d alph4num3rics",
		"...???",
		"caffè übermäßig 東京",
		"'''",
		"a'b''c",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(in) {
			b.WriteString(tok.Text)
		}
		if got := b.String(); got != in {
			t.Errorf("Tokenize(%q) concatenation = %q, want input back", in, got)
		}
	}
}

func TestTokenizeClassification(t *testing.T) {
	tokens := Tokenize("Hello, world!")
	want := []Token{
		{Text: "Hello", Word: true},
		{Text: ","},
		{Text: " "},
		{Text: "world", Word: true},
		{Text: "!"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d (%v)", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeNonASCIILettersAndDigits(t *testing.T) {
	tokens := Tokenize("café ٣東")
	want := []Token{
		{Text: "caf", Word: true},
		{Text: "é", Word: true},
		{Text: " "},
		{Text: "٣", Word: true},
		{Text: "東", Word: true},
	}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d (%v)", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeLongestRun(t *testing.T) {
	tokens := Tokenize("abc123'def")
	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1 (%v)", len(tokens), tokens)
	}
	if !tokens[0].Word || tokens[0].Text != "abc123'def" {
		t.Errorf("tokens[0] = %+v, want single word token", tokens[0])
	}
}

func TestTokenizeApostropheOnlyRunIsLiteral(t *testing.T) {
	tokens := Tokenize("''")
	if len(tokens) != 1 {
		t.Fatalf("len(tokens) = %d, want 1", len(tokens))
	}
	if tokens[0].Word {
		t.Errorf("apostrophe-only token classified as word: %+v", tokens[0])
	}
}
