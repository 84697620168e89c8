package lexicon

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dictionary holds English-to-Libran word mappings. Keys are stored
// lowercase; lookups are case-insensitive.
type Dictionary struct {
	entries map[string]string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		entries: make(map[string]string),
	}
}

// Add adds a translation, lowercasing the English key.
func (d *Dictionary) Add(english, libran string) {
	d.entries[strings.ToLower(english)] = libran
}

// Lookup returns the Libran translation for an English word.
// Empty translations are treated as missing.
func (d *Dictionary) Lookup(english string) (string, bool) {
	v, ok := d.entries[strings.ToLower(english)]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Merge overlays m onto the dictionary. Keys from m win on collision.
func (d *Dictionary) Merge(m map[string]string) {
	for k, v := range m {
		d.Add(k, v)
	}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns all English headwords, sorted for stable output.
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for w := range d.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Load reads a dictionary from a plain string-to-string JSON object,
// the flat format emitted by the dictionary importer.
func Load(r io.Reader) (*Dictionary, error) {
	var m map[string]string
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	d := New()
	d.Merge(m)
	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Save writes the dictionary as a JSON object with sorted keys.
func (d *Dictionary) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d.entries)
}
