package lexicon

import (
	"strings"
	"testing"
)

func TestDefaultDictionary(t *testing.T) {
	d := Default()
	if d.Len() != 10 {
		t.Errorf("Len = %d, want 10", d.Len())
	}
	for english, libran := range map[string]string{
		"hello":  "valori",
		"world":  "zenith",
		"friend": "kaleth",
	} {
		got, ok := d.Lookup(english)
		if !ok {
			t.Errorf("Lookup(%q) missing", english)
			continue
		}
		if got != libran {
			t.Errorf("Lookup(%q) = %q, want %q", english, got, libran)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	d := Default()
	got, ok := d.Lookup("HELLO")
	if !ok || got != "valori" {
		t.Errorf("Lookup(\"HELLO\") = %q, %v; want valori, true", got, ok)
	}
}

func TestMergeOverrideWins(t *testing.T) {
	d := Default()
	d.Merge(map[string]string{"Friend": "allya"})

	got, ok := d.Lookup("friend")
	if !ok || got != "allya" {
		t.Errorf("Lookup(\"friend\") = %q, %v; want allya, true", got, ok)
	}

	// The shared default table must stay untouched.
	fresh := Default()
	got, _ = fresh.Lookup("friend")
	if got != "kaleth" {
		t.Errorf("Default mutated: Lookup(\"friend\") = %q, want kaleth", got)
	}
}

func TestEmptyTranslationIsMissing(t *testing.T) {
	d := New()
	d.Add("ghost", "")
	if _, ok := d.Lookup("ghost"); ok {
		t.Error("empty translation should report missing")
	}
}

func TestLoadJSON(t *testing.T) {
	d, err := Load(strings.NewReader(`{"Moon": "selvra", "sun": "ardeth"}`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
	got, ok := d.Lookup("moon")
	if !ok || got != "selvra" {
		t.Errorf("Lookup(\"moon\") = %q, %v; want selvra, true", got, ok)
	}
}

func TestLoadRejectsNonObject(t *testing.T) {
	if _, err := Load(strings.NewReader(`["not", "a", "dict"]`)); err == nil {
		t.Error("Load should reject a JSON array")
	}
}

func TestWordsSorted(t *testing.T) {
	d := New()
	d.Add("zephyr", "a")
	d.Add("aurora", "b")
	words := d.Words()
	if len(words) != 2 || words[0] != "aurora" || words[1] != "zephyr" {
		t.Errorf("Words = %v, want sorted [aurora zephyr]", words)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := New()
	d.Add("moon", "selvra")

	var b strings.Builder
	if err := d.Save(&b); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	back, err := Load(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	got, ok := back.Lookup("moon")
	if !ok || got != "selvra" {
		t.Errorf("round trip lost entry: %q, %v", got, ok)
	}
}
