package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/bpagen/internal/db"
	"github.com/gyeh/bpagen/internal/exitcode"
	"github.com/gyeh/bpagen/internal/generate"
	"github.com/gyeh/bpagen/internal/logging"
	"github.com/gyeh/bpagen/internal/model"
	"github.com/gyeh/bpagen/internal/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a BPA file",
	RunE:  runGenerate,
}

func init() {
	addInputFlags(generateCmd)
	f := generateCmd.Flags()
	f.StringVar(&cfg.OutDir, "out-dir", "", "Directory for the generated file (default .)")
	f.StringVar(&cfg.OutputPath, "output", "", "Exact output path; overrides the BPA_<C|I>_<timestamp>.txt name")
	f.StringVar(&cfg.OutputEncoding, "output-encoding", "", "Output charset, e.g. ISO-8859-1 (default utf-8)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, code := execute(ctx, log)
	if code != exitcode.Success {
		os.Exit(code)
	}

	fmt.Printf("Generated %s: %s, %d detail lines, %d bytes (%.1fs)\n",
		summary.Mode.Label, summary.OutputPath, summary.DetailLines, summary.Bytes,
		summary.DurationTotal.Seconds())
	return nil
}

// execute validates cfg, connects when a query input needs it and runs the
// pipeline. It logs failures and returns the exit code to use.
func execute(ctx context.Context, log zerolog.Logger) (*model.GenerateSummary, int) {
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		return nil, exitcode.UsageError
	}

	var pool *pgxpool.Pool
	if cfg.NeedsDB() {
		var err error
		pool, err = db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			return nil, exitcode.DBConnError
		}
		defer pool.Close()
	}

	summary, err := generate.Run(ctx, pool, log, &cfg)
	if err != nil {
		ev := log.Error().Err(err)
		var pe *generate.PipelineError
		if errors.As(err, &pe) {
			ev = ev.Str("phase", pe.Phase)
		}
		var re *generate.RowError
		if errors.As(err, &re) {
			ev = ev.Int("row", re.Row)
		}
		ev.Msg("generation failed")
		return nil, exitCodeFor(err)
	}
	return summary, exitcode.Success
}

// exitCodeFor maps a pipeline error to a process exit status.
func exitCodeFor(err error) int {
	var (
		mf *model.MissingFieldError
		de *model.DateParseError
		re *source.ReadError
		pe *generate.PipelineError
	)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.As(err, &mf):
		return exitcode.MissingField
	case errors.As(err, &de):
		return exitcode.DateError
	case errors.As(err, &re):
		return exitcode.SourceError
	case errors.As(err, &pe) && pe.Phase == generate.PhaseWrite:
		return exitcode.WriteError
	case errors.As(err, &pe) && pe.Phase == generate.PhasePreflight:
		return exitcode.UsageError
	}
	return exitcode.SourceError
}
