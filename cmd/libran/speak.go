package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	libran "github.com/libran-tools/libran"
	"github.com/libran-tools/libran/synth"
)

var speakCmd = &cobra.Command{
	Use:   "speak",
	Short: "Translate English text and synthesize Libran audio",
	Long: `Translate English text into Libran, print it to stdout and write the
synthesized audio as a WAV file.

Input comes from --text, --input-file, or stdin, in that order of
preference. Synthesis parameters default to the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSpeak(cmd)
	},
}

func init() {
	rootCmd.AddCommand(speakCmd)

	speakCmd.Flags().StringP("text", "t", "", "text to convert (falls back to --input-file, then stdin)")
	speakCmd.Flags().StringP("input-file", "i", "", "read English text from a file")
	speakCmd.Flags().StringP("dictionary", "d", "", "flat JSON dictionary overlaid on the built-in one")
	speakCmd.Flags().StringP("out", "o", "libran.wav", "output WAV path")
	speakCmd.Flags().Int("sample-rate", 0, "sample rate for synthesized audio (default from config)")
	speakCmd.Flags().Float64("symbol-duration", 0, "seconds of audio per character (default from config)")
	speakCmd.Flags().Int("amplitude", 0, "peak sample amplitude (default from config)")
}

func runSpeak(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := dictionaryOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}

	// Flags override config.
	sampleRate, _ := cmd.Flags().GetInt("sample-rate")
	if sampleRate == 0 {
		sampleRate = cfg.Synth.SampleRate
	}
	symbolDuration, _ := cmd.Flags().GetFloat64("symbol-duration")
	if symbolDuration == 0 {
		symbolDuration = cfg.Synth.SymbolDuration
	}
	amplitude, _ := cmd.Flags().GetInt("amplitude")
	if amplitude == 0 {
		amplitude = cfg.Synth.Amplitude
	}
	opts = append(opts, libran.WithSynthesizer(synth.Synthesizer{
		SampleRate:     sampleRate,
		SymbolDuration: symbolDuration,
		Amplitude:      amplitude,
	}))

	pipeline := libran.New(opts...)

	out, _ := cmd.Flags().GetString("out")
	text, _ := cmd.Flags().GetString("text")
	inputFile, _ := cmd.Flags().GetString("input-file")

	var libranText string
	if text == "" && inputFile != "" {
		libranText, err = pipeline.TranslateAndSpeakFile(inputFile, out)
	} else {
		var english string
		english, err = readText(text, inputFile)
		if err != nil {
			return err
		}
		libranText, err = pipeline.SpeakToFile(english, out)
	}
	if err != nil {
		return err
	}

	fmt.Println(libranText)
	logger.Info("audio written",
		slog.String("path", out),
		slog.Int("sample_rate", sampleRate),
		slog.Int("characters", len([]rune(libranText))))
	return nil
}
