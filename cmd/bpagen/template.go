package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/bpagen/internal/exitcode"
	"github.com/gyeh/bpagen/internal/generate"
	"github.com/gyeh/bpagen/internal/logging"
	"github.com/gyeh/bpagen/internal/source"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write header.csv and data.csv skeletons for a mode",
	RunE:  runTemplate,
}

func init() {
	f := templateCmd.Flags()
	f.StringVar(&cfg.Mode, "mode", "", "File type: c or i")
	f.StringVar(&cfg.OutDir, "out-dir", "", "Directory for the templates (default .)")
	f.StringVar(&cfg.Delimiter, "delimiter", "", "CSV delimiter (default ,)")
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	mode, err := cfg.ResolvedMode()
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	comma, err := source.ParseDelimiter(cfg.Delimiter)
	if err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	paths, err := generate.WriteTemplates(cfg.OutDir, mode, comma)
	if err != nil {
		log.Error().Err(err).Msg("template write failed")
		os.Exit(exitcode.WriteError)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
