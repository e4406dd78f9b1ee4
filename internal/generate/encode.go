package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/bpagen/internal/bpa"
	"github.com/gyeh/bpagen/internal/source"
)

const progressEvery = 10000

// EncodeResult holds the encoded detail lines.
type EncodeResult struct {
	File     *bpa.File
	Duration time.Duration
}

// RowError reports the 1-based data row that could not be encoded.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("data row %d: %s", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Encode streams the data source into a bpa.File. The first bad row aborts.
func Encode(ctx context.Context, log zerolog.Logger, pf *PreflightResult) (*EncodeResult, error) {
	start := time.Now()

	src, err := source.Open(ctx, pf.Data, pf.Settings)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	file := bpa.NewFile(pf.Mode)
	for src.Next() {
		if err := file.Add(src.Row()); err != nil {
			return nil, &RowError{Row: src.RowNumber(), Err: err}
		}
		if n := file.Len(); n%progressEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			log.Debug().Int("rows", n).Msg("encode progress")
		}
	}
	if err := src.Err(); err != nil {
		return nil, err
	}

	res := &EncodeResult{File: file, Duration: time.Since(start)}
	log.Info().
		Int("detail_lines", file.Len()).
		Dur("duration", res.Duration).
		Msg("encode complete")
	return res, nil
}
