package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// Variant names for the two dictionary flavors.
const (
	VariantAncient = "ancient"
	VariantModern  = "modern"
)

// entriesSchema accepts the three corpus JSON layouts: a simple
// English-to-Libran map, a map of detailed entry objects, or a document
// nested by variant.
const entriesSchema = `{
  "anyOf": [
    {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "ancient":     {"type": "string"},
          "modern":      {"type": "string"},
          "pos":         {"type": "string"},
          "notes":       {"type": "string"},
          "sacred":      {"type": "boolean"},
          "source_page": {"type": "integer"},
          "confidence":  {"type": "number"},
          "table_order": {"type": "integer"}
        },
        "additionalProperties": false
      }
    },
    {
      "type": "object",
      "properties": {
        "ancient": {"type": "object", "additionalProperties": {"type": "string"}},
        "modern":  {"type": "object", "additionalProperties": {"type": "string"}}
      },
      "additionalProperties": false
    }
  ]
}`

var entriesSchemaLoader = gojsonschema.NewStringLoader(entriesSchema)

// ReadEntries parses dictionary source JSON into structured entries.
// variant names the dictionary a simple flat map belongs to; detailed and
// nested documents carry their own variant information.
func ReadEntries(data []byte, variant string) ([]Entry, error) {
	if variant != VariantAncient && variant != VariantModern {
		return nil, fmt.Errorf("unknown variant %q", variant)
	}

	result, err := gojsonschema.Validate(entriesSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate dictionary JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("dictionary JSON rejected by schema: %v", result.Errors())
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode dictionary JSON: %w", err)
	}

	if isNested(raw) {
		return readNested(raw)
	}
	if isSimple(raw) {
		return readSimple(raw, variant)
	}
	return readDetailed(raw)
}

// ReadEntriesFile is a convenience wrapper that reads a file path.
func ReadEntriesFile(path, variant string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := ReadEntries(data, variant)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// isNested reports whether every top-level key is a variant name with an
// object value.
func isNested(raw map[string]json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	for k, v := range raw {
		if k != VariantAncient && k != VariantModern {
			return false
		}
		var m map[string]string
		if err := json.Unmarshal(v, &m); err != nil {
			return false
		}
	}
	return true
}

func isSimple(raw map[string]json.RawMessage) bool {
	for _, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return false
		}
	}
	return true
}

func readSimple(raw map[string]json.RawMessage, variant string) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for english, v := range raw {
		var libran string
		if err := json.Unmarshal(v, &libran); err != nil {
			return nil, fmt.Errorf("entry %q: %w", english, err)
		}
		e := Entry{English: english, Confidence: 1.0}
		if variant == VariantAncient {
			e.Ancient = libran
		} else {
			e.Modern = libran
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readDetailed(raw map[string]json.RawMessage) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for english, v := range raw {
		var e Entry
		if err := json.Unmarshal(v, &e); err != nil {
			return nil, fmt.Errorf("entry %q: %w", english, err)
		}
		e.English = english
		if e.Confidence == 0 {
			e.Confidence = 1.0
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readNested(raw map[string]json.RawMessage) ([]Entry, error) {
	var entries []Entry
	for _, variant := range []string{VariantAncient, VariantModern} {
		v, ok := raw[variant]
		if !ok {
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(v, &m); err != nil {
			return nil, fmt.Errorf("variant %q: %w", variant, err)
		}
		for english, libran := range m {
			e := Entry{English: english, Confidence: 1.0}
			if variant == VariantAncient {
				e.Ancient = libran
			} else {
				e.Modern = libran
			}
			entries = append(entries, e)
		}
	}
	return entries, nil
}
