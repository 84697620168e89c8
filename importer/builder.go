package importer

import (
	"strings"
)

// divineTerms marks entries describing divine or religious content, which
// are always excluded from the public dictionaries.
var divineTerms = []string{"god", "goddess", "deity", "divine", "sacred", "holy"}

// treasureTerms marks entries about the comoară hoard, held back from the
// public dictionaries alongside the divine vocabulary.
var treasureTerms = []string{"comoară", "treasure"}

// Stats counts the outcome of a build.
type Stats struct {
	Total     int `json:"total"`
	Ancient   int `json:"ancient"`
	Modern    int `json:"modern"`
	Excluded  int `json:"excluded"`
	Conflicts int `json:"conflicts"`
}

// Build is the result of a dictionary build: the two flat variant
// dictionaries, the rejected entries, and counts.
type Build struct {
	Ancient  map[string]string
	Modern   map[string]string
	Excluded []Excluded
	Stats    Stats
}

// Builder accumulates entries and resolves them into a Build.
type Builder struct {
	excludeTerms map[string]bool
	byKey        map[string][]Entry
	keys         []string // insertion order, for stable output
	excluded     []Excluded
	total        int
}

// NewBuilder creates a Builder. Headwords in excludeTerms are rejected
// outright (case-insensitive).
func NewBuilder(excludeTerms []string) *Builder {
	m := make(map[string]bool, len(excludeTerms))
	for _, t := range excludeTerms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			m[t] = true
		}
	}
	return &Builder{
		excludeTerms: m,
		byKey:        make(map[string][]Entry),
	}
}

// exclusionReason returns a non-empty reason if the entry must be rejected.
func (b *Builder) exclusionReason(e Entry) string {
	english := strings.ToLower(strings.TrimSpace(e.English))

	if english == "" {
		return "empty headword"
	}
	if b.excludeTerms[english] {
		return "in exclude list"
	}
	if e.Sacred {
		return "flagged sacred"
	}
	for _, term := range divineTerms {
		if strings.Contains(english, term) {
			return "divine/religious term"
		}
	}
	for _, term := range treasureTerms {
		if strings.Contains(english, term) {
			return "treasure term"
		}
	}
	if len(english) < 2 {
		return "too short"
	}
	if !e.Complete() {
		return "no translations"
	}
	return ""
}

// Add feeds one entry into the builder. Exact duplicates are dropped;
// complementary ancient/modern rows for the same headword are merged.
func (b *Builder) Add(e Entry) {
	b.total++

	if reason := b.exclusionReason(e); reason != "" {
		b.excluded = append(b.excluded, Excluded{Entry: e, Reason: reason})
		return
	}

	key := e.Key()
	existing, seen := b.byKey[key]
	if !seen {
		b.byKey[key] = []Entry{e}
		b.keys = append(b.keys, key)
		return
	}

	for _, prev := range existing {
		if prev.Ancient == e.Ancient && prev.Modern == e.Modern && prev.POS == e.POS {
			return // duplicate row
		}
	}

	if len(existing) == 1 && complementary(existing[0], e) {
		b.byKey[key] = []Entry{merge(existing[0], e)}
		return
	}

	b.byKey[key] = append(existing, e)
}

// complementary reports whether one entry has only the ancient translation
// and the other only the modern one.
func complementary(a, b Entry) bool {
	ancientOnly := func(e Entry) bool { return e.HasAncient() && !e.HasModern() }
	modernOnly := func(e Entry) bool { return e.HasModern() && !e.HasAncient() }
	return (ancientOnly(a) && modernOnly(b)) || (modernOnly(a) && ancientOnly(b))
}

// merge combines two complementary entries into one.
func merge(a, b Entry) Entry {
	out := a
	if out.Ancient == "" {
		out.Ancient = b.Ancient
	}
	if out.Modern == "" {
		out.Modern = b.Modern
	}
	if out.POS == "" {
		out.POS = b.POS
	}
	if out.Notes == "" {
		out.Notes = b.Notes
	}
	if out.SourcePage == 0 {
		out.SourcePage = b.SourcePage
	}
	if b.Confidence > out.Confidence {
		out.Confidence = b.Confidence
	}
	return out
}

// resolve picks the winning entry among conflicting rows for one headword:
// a "primary" or "standard" note marker wins, then highest confidence,
// then highest source page, then highest table order.
func resolve(entries []Entry) Entry {
	if len(entries) == 1 {
		return entries[0]
	}

	for _, e := range entries {
		notes := strings.ToLower(e.Notes)
		if strings.Contains(notes, "primary") || strings.Contains(notes, "standard") {
			return e
		}
	}

	best := entries[0]
	for _, e := range entries[1:] {
		switch {
		case e.Confidence > best.Confidence:
			best = e
		case e.Confidence == best.Confidence && e.SourcePage > best.SourcePage:
			best = e
		case e.Confidence == best.Confidence && e.SourcePage == best.SourcePage &&
			e.TableOrder > best.TableOrder:
			best = e
		}
	}
	return best
}

// Build resolves all accumulated entries into the final dictionaries.
func (b *Builder) Build() *Build {
	out := &Build{
		Ancient:  make(map[string]string),
		Modern:   make(map[string]string),
		Excluded: b.excluded,
	}
	out.Stats.Total = b.total
	out.Stats.Excluded = len(b.excluded)

	for _, key := range b.keys {
		entries := b.byKey[key]
		if len(entries) > 1 {
			out.Stats.Conflicts++
		}
		winner := resolve(entries)
		if winner.HasAncient() {
			out.Ancient[key] = winner.Ancient
			out.Stats.Ancient++
		}
		if winner.HasModern() {
			out.Modern[key] = winner.Modern
			out.Stats.Modern++
		}
	}
	return out
}
