package translate

import (
	"strings"
	"testing"
)

func TestTranslateUsesDefaultDictionary(t *testing.T) {
	result := Translate("Hello world!", nil)
	if !strings.Contains(result, "Valori") {
		t.Errorf("result = %q, want it to contain %q", result, "Valori")
	}
	if !strings.Contains(strings.ToLower(result), "zenith") {
		t.Errorf("result = %q, want it to contain %q", result, "zenith")
	}
	if !strings.HasSuffix(result, "!") {
		t.Errorf("result = %q, want trailing punctuation preserved", result)
	}
}

func TestTranslatePreservesLiterals(t *testing.T) {
	result := Translate("hello, world!", nil)
	if result != "valori, zenith!" {
		t.Errorf("result = %q, want %q", result, "valori, zenith!")
	}
}

func TestTranslateDeterministicForUnknownWords(t *testing.T) {
	first := Translate("mystery", nil)
	second := Translate("Mystery", nil)
	if strings.ToLower(first) != strings.ToLower(second) {
		t.Errorf("case-only variants diverge: %q vs %q", first, second)
	}
	if first != Translate("mystery", nil) {
		t.Error("repeated translation of the same word differs")
	}
}

func TestTranslateCustomDictionary(t *testing.T) {
	result := Translate("Friend", nil)
	if !strings.Contains(result, "Kaleth") {
		t.Errorf("result = %q, want %q", result, "Kaleth")
	}

	override := Translate("Friend", map[string]string{"friend": "allya"})
	if !strings.Contains(override, "Allya") {
		t.Errorf("override result = %q, want %q", override, "Allya")
	}
}

func TestTranslateOverrideKeysCaseInsensitive(t *testing.T) {
	result := Translate("friend", map[string]string{"FRIEND": "allya"})
	if result != "allya" {
		t.Errorf("result = %q, want %q", result, "allya")
	}
}

func TestTranslateCasing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HELLO", "VALORI"},
		{"Hello", "Valori"},
		{"hello", "valori"},
	}
	for _, tt := range tests {
		if got := Translate(tt.in, nil); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranslateAccentedCharacters(t *testing.T) {
	// Characters outside [A-Za-z0-9'] are still word-like when they are
	// letters or digits; they normalize to nothing and vanish, while the
	// ASCII runs around them translate as usual.
	if got := Translate("café 123 ABC", nil); got != "nobazor ranose RANOSE" {
		t.Errorf("Translate(\"café 123 ABC\") = %q, want %q", got, "nobazor ranose RANOSE")
	}
	if got := Translate("東京", nil); got != "" {
		t.Errorf("Translate(\"東京\") = %q, want \"\"", got)
	}
}

func TestTranslateEmptyAndPunctuationOnly(t *testing.T) {
	if got := Translate("", nil); got != "" {
		t.Errorf("Translate(\"\") = %q, want \"\"", got)
	}
	if got := Translate("?!...", nil); got != "?!..." {
		t.Errorf("Translate(\"?!...\") = %q, want it unchanged", got)
	}
}

func TestTranslateDoesNotMutateDefaults(t *testing.T) {
	Translate("hello", map[string]string{"hello": "changed"})
	if got := Translate("hello", nil); got != "valori" {
		t.Errorf("default dictionary mutated: Translate(\"hello\") = %q, want %q", got, "valori")
	}
}
