// Package importer builds flat English-to-Libran dictionaries from
// structured source entries: it filters out sacred and malformed entries,
// resolves duplicate headwords, and emits the ancient/modern JSON
// dictionaries the translator consumes.
package importer

import "strings"

// Entry is a single structured dictionary row as extracted from a source
// document.
type Entry struct {
	English    string  `json:"english"`
	Ancient    string  `json:"ancient,omitempty"`
	Modern     string  `json:"modern,omitempty"`
	POS        string  `json:"pos,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	Sacred     bool    `json:"sacred,omitempty"`
	SourcePage int     `json:"source_page,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	TableOrder int     `json:"table_order,omitempty"`
}

// HasAncient reports whether the entry carries an ancient translation.
func (e Entry) HasAncient() bool {
	return strings.TrimSpace(e.Ancient) != ""
}

// HasModern reports whether the entry carries a modern translation.
func (e Entry) HasModern() bool {
	return strings.TrimSpace(e.Modern) != ""
}

// Complete reports whether the entry has at least one translation.
func (e Entry) Complete() bool {
	return e.HasAncient() || e.HasModern()
}

// Key returns the lowercased headword used for dictionary keys.
func (e Entry) Key() string {
	return strings.ToLower(strings.TrimSpace(e.English))
}

// Excluded is an entry rejected by the builder, with the reason.
type Excluded struct {
	Entry
	Reason string `json:"reason"`
}
