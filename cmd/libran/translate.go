package main

import (
	"fmt"

	"github.com/spf13/cobra"

	libran "github.com/libran-tools/libran"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Convert English text into Libran",
	Long: `Convert English text into Libran and print it to stdout.

Input comes from --text, --input-file, or stdin, in that order of
preference.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranslate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringP("text", "t", "", "text to convert (falls back to --input-file, then stdin)")
	translateCmd.Flags().StringP("input-file", "i", "", "read English text from a file")
	translateCmd.Flags().StringP("dictionary", "d", "", "flat JSON dictionary overlaid on the built-in one")
}

func runTranslate(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := dictionaryOptions(cmd, cfg, logger)
	if err != nil {
		return err
	}

	text, _ := cmd.Flags().GetString("text")
	inputFile, _ := cmd.Flags().GetString("input-file")
	english, err := readText(text, inputFile)
	if err != nil {
		return err
	}

	pipeline := libran.New(opts...)
	fmt.Println(pipeline.Translate(english))
	return nil
}
