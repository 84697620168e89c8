package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/libran-tools/libran/importer"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Dictionary build tooling",
}

var dictBuildCmd = &cobra.Command{
	Use:   "build [source-json-files...]",
	Short: "Compile structured source JSON into flat dictionaries",
	Long: `Compile structured dictionary source JSON into the flat ancient/modern
dictionaries the translator consumes.

Input files may use any of the three accepted layouts (simple map,
detailed entry objects, or nested by variant); glob patterns are
expanded. Entries flagged as sacred or matching divine or treasure terms
are excluded and reported alongside the built dictionaries.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDictBuild(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictBuildCmd)

	dictBuildCmd.Flags().StringP("out", "o", "", "output directory for built dictionaries (required)")
	_ = dictBuildCmd.MarkFlagRequired("out")
	dictBuildCmd.Flags().String("variant", importer.VariantAncient, "variant for simple flat input files (ancient|modern)")
	dictBuildCmd.Flags().String("exclude-list", "", "file with one headword to exclude per line")
}

func runDictBuild(cmd *cobra.Command, args []string) error {
	_, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Expand glob patterns
	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if matches == nil {
			// No glob match — treat as literal path
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}

	excludeListPath, _ := cmd.Flags().GetString("exclude-list")
	excludeTerms, err := loadExcludeList(excludeListPath)
	if err != nil {
		return fmt.Errorf("load exclude list: %w", err)
	}
	if len(excludeTerms) > 0 {
		logger.Debug("exclude list loaded", slog.Int("terms", len(excludeTerms)))
	}

	variant, _ := cmd.Flags().GetString("variant")
	builder := importer.NewBuilder(excludeTerms)
	for _, path := range files {
		entries, err := importer.ReadEntriesFile(path, variant)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		logger.Debug("source parsed", slog.String("path", path), slog.Int("entries", len(entries)))
		for _, e := range entries {
			builder.Add(e)
		}
	}

	out, _ := cmd.Flags().GetString("out")
	build := builder.Build()
	if err := build.WriteDir(out); err != nil {
		return fmt.Errorf("write dictionaries: %w", err)
	}

	logger.Info("build complete",
		slog.String("out", out),
		slog.Int("total", build.Stats.Total),
		slog.Int("ancient", build.Stats.Ancient),
		slog.Int("modern", build.Stats.Modern),
		slog.Int("excluded", build.Stats.Excluded),
		slog.Int("conflicts", build.Stats.Conflicts))
	return nil
}

// loadExcludeList reads one headword per line; blank lines and # comments
// are skipped.
func loadExcludeList(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	return terms, scanner.Err()
}
