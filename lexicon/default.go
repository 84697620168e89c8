package lexicon

// defaults is the built-in English-to-Libran dictionary. It is never
// mutated; Default returns a copy so callers can overlay their own entries.
var defaults = map[string]string{
	"hello":    "valori",
	"world":    "zenith",
	"language": "oratil",
	"voice":    "sonari",
	"story":    "mythra",
	"friend":   "kaleth",
	"journey":  "sereth",
	"star":     "lyr",
	"light":    "phora",
	"shadow":   "umbra",
}

// Default returns a fresh dictionary pre-populated with the built-in
// mappings.
func Default() *Dictionary {
	d := &Dictionary{
		entries: make(map[string]string, len(defaults)),
	}
	for k, v := range defaults {
		d.entries[k] = v
	}
	return d
}
