// Command libran converts English text into the constructed Libran
// language and renders it as synthesized WAV audio.
//
// Subcommands: translate (text to Libran), speak (text to Libran plus
// audio) and dict build (structured source JSON to flat dictionaries).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	libran "github.com/libran-tools/libran"
	"github.com/libran-tools/libran/internal/config"
	"github.com/libran-tools/libran/lexicon"
)

var rootCmd = &cobra.Command{
	Use:   "libran",
	Short: "English to Libran translator and voice synthesizer",
	Long: `Libran converts English text into the constructed Libran language and
synthesizes the result as a sine-wave WAV file. Known words come from a
dictionary, unknown words get deterministic generated pseudo-words, and
punctuation, spacing and casing survive unchanged.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the persistent --config flag and builds the runtime
// configuration plus a stderr logger at the configured level; --verbose
// forces debug.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.SlogLevel()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}

// dictionaryOptions turns the --dictionary flag (or the configured path)
// into pipeline options.
func dictionaryOptions(cmd *cobra.Command, cfg config.Config, logger *slog.Logger) ([]libran.Option, error) {
	path, err := cmd.Flags().GetString("dictionary")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = cfg.Dictionary
	}
	if path == "" {
		return nil, nil
	}

	d, err := lexicon.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	logger.Debug("dictionary loaded", slog.String("path", path), slog.Int("entries", d.Len()))

	overlay := make(map[string]string, d.Len())
	for _, w := range d.Words() {
		v, _ := d.Lookup(w)
		overlay[w] = v
	}
	return []libran.Option{libran.WithDictionary(overlay)}, nil
}

// readText resolves the input text: --text wins, then --input-file, then
// stdin.
func readText(text, inputFile string) (string, error) {
	if text != "" {
		return text, nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
