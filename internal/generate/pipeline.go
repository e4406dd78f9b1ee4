// Package generate runs a BPA generation: read the header and data sources,
// encode every record and write the finished file.
package generate

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/bpagen/internal/bpa"
	"github.com/gyeh/bpagen/internal/config"
	"github.com/gyeh/bpagen/internal/model"
)

// Phases reported in PipelineError.
const (
	PhasePreflight = "preflight"
	PhaseEncode    = "encode"
	PhaseWrite     = "write"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the pipeline: preflight → encode → write. pool may be nil when
// neither input is a query. On error no output file is left behind.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.GenerateSummary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	pf, err := Preflight(ctx, pool, log, cfg)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}
	log = log.With().Str("run_id", pf.RunID.String()).Str("mode", pf.Mode.Label).Logger()

	// Phase 2: Encode
	log.Info().Str("data", pf.Data.Name()).Msg("encoding data rows")
	enc, err := Encode(ctx, log, pf)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseEncode, Err: err}
	}

	header := enc.File.Header(pf.Header)
	headerLine := strings.TrimSuffix(bpa.EncodeHeader(header), bpa.LineEnding)

	summary := &model.GenerateSummary{
		RunID:        pf.RunID.String(),
		Mode:         pf.Mode,
		HeaderSource: pf.HeaderSpec.Name(),
		DataSource:   pf.Data.Name(),
		DetailLines:  enc.File.Len(),
		HeaderWidth:  utf8.RuneCountInString(headerLine),
		DetailWidth:  bpa.DetailLayout(pf.Mode).Width(),
		HeaderLine:   headerLine,
		DryRun:       cfg.DryRun,
		DurationRead: enc.Duration,
	}

	if cfg.DryRun {
		summary.DurationTotal = time.Since(totalStart)
		log.Info().
			Int("detail_lines", summary.DetailLines).
			Msg("dry run, nothing written")
		return summary, nil
	}

	// Phase 3: Write
	path := cfg.OutputPath
	if path == "" {
		path = OutputPath(cfg.OutDir, pf.Mode, totalStart)
	}
	wr, err := Write(log, enc.File, pf.Header, path, cfg.OutputEncoding)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}

	summary.OutputPath = wr.Path
	summary.OutputSHA256 = wr.SHA256
	summary.Bytes = wr.Bytes
	summary.DurationWrite = wr.Duration
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Str("output", summary.OutputPath).
		Int("detail_lines", summary.DetailLines).
		Int64("bytes", summary.Bytes).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("bpa file generated")

	return summary, nil
}
