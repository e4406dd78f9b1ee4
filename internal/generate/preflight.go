package generate

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/bpagen/internal/config"
	"github.com/gyeh/bpagen/internal/model"
	"github.com/gyeh/bpagen/internal/normalize"
	"github.com/gyeh/bpagen/internal/source"
)

// PreflightResult holds everything resolved before data rows are read.
type PreflightResult struct {
	RunID      uuid.UUID
	Mode       model.Mode
	Header     model.Header
	HeaderSpec source.Spec
	Data       source.Spec
	Settings   source.Settings
}

// Preflight resolves the mode, reads the header source's first row and builds
// the header record. The data source is only described here; Encode opens it.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*PreflightResult, error) {
	start := time.Now()

	mode, err := cfg.ResolvedMode()
	if err != nil {
		return nil, err
	}

	pf := &PreflightResult{
		RunID:      uuid.New(),
		Mode:       mode,
		HeaderSpec: source.Spec{Path: cfg.HeaderPath, Query: cfg.HeaderQuery, Kind: source.HeaderInput},
		Data:       source.Spec{Path: cfg.DataPath, Query: cfg.DataQuery, Kind: source.DataInput},
		Settings: source.Settings{
			Delimiter: cfg.Delimiter,
			Encoding:  cfg.InputEncoding,
			Pool:      pool,
		},
	}

	src, err := source.Open(ctx, pf.HeaderSpec, pf.Settings)
	if err != nil {
		return nil, err
	}
	row, err := source.First(src, pf.HeaderSpec.Name())
	if err != nil {
		return nil, err
	}
	pf.Header, err = model.HeaderFromRow(row)
	if err != nil {
		return nil, err
	}

	ev := log.Info().
		Str("run_id", pf.RunID.String()).
		Str("mode", mode.Label).
		Str("header", pf.HeaderSpec.Name()).
		Str("year_month", pf.Header.YearMonth)
	// Hashing costs an extra read of each input, so only at debug level.
	// Unreadable files are left for the sources to report.
	if log.GetLevel() <= zerolog.DebugLevel {
		ev = ev.Str("header_sha256", inputHash(pf.HeaderSpec.Path)).
			Str("data_sha256", inputHash(pf.Data.Path))
	}
	ev.Dur("duration", time.Since(start)).Msg("preflight complete")

	return pf, nil
}

// inputHash returns the SHA-256 of a file input, or "" for queries and
// unreadable files.
func inputHash(path string) string {
	if path == "" {
		return ""
	}
	sha, err := normalize.FileHash(path)
	if err != nil {
		return ""
	}
	return sha
}
