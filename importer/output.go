package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names written by WriteDir.
const (
	AncientFile  = "ancient.json"
	ModernFile   = "modern.json"
	ExcludedFile = "excluded.json"
)

// WriteDir writes the build artifacts into dir: the two flat variant
// dictionaries plus the exclusion report. JSON object keys come out sorted,
// so repeated builds produce identical files.
func (b *Build) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, AncientFile), b.Ancient); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, ModernFile), b.Modern); err != nil {
		return err
	}
	excluded := b.Excluded
	if excluded == nil {
		excluded = []Excluded{} // emit [] rather than null
	}
	return writeJSON(filepath.Join(dir, ExcludedFile), excluded)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
