// Package source reads BPA input rows from tabular sources: CSV files,
// Parquet files and Postgres queries. Every source is a lazy, single-pass
// sequence of rows.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/bpagen/internal/model"
)

// Source yields rows in input order.
//
//	for src.Next() {
//		row := src.Row()
//	}
//	if err := src.Err(); err != nil { ... }
type Source interface {
	Next() bool
	Row() model.Row
	// RowNumber is the 1-based index of the current data row.
	RowNumber() int
	Err() error
	Close() error
}

// ReadError reports an input that could not be opened, read or parsed.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %s", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Kind tells Open which schema a Parquet file follows.
type Kind int

const (
	HeaderInput Kind = iota
	DataInput
)

// Spec names one input: a file path, or a SQL query run against Pool.
type Spec struct {
	Path  string
	Query string
	Kind  Kind
}

// Name is a human-readable label for logs and errors.
func (s Spec) Name() string {
	if s.Query != "" {
		return "query: " + s.Query
	}
	return s.Path
}

// Settings carries the options shared by all sources.
type Settings struct {
	Delimiter string
	Encoding  string
	Pool      *pgxpool.Pool
}

// Open returns the Source described by spec. Files ending in .parquet are read
// as Parquet, every other path as CSV.
func Open(ctx context.Context, spec Spec, settings Settings) (Source, error) {
	var (
		src Source
		err error
	)
	switch {
	case spec.Query != "":
		if settings.Pool == nil {
			return nil, &ReadError{Source: spec.Name(), Err: fmt.Errorf("a database connection is required")}
		}
		src, err = OpenQuery(ctx, settings.Pool, spec.Query)
	case spec.Path == "":
		return nil, &ReadError{Source: "<none>", Err: fmt.Errorf("no path or query given")}
	case strings.EqualFold(filepath.Ext(spec.Path), ".parquet"):
		if spec.Kind == HeaderInput {
			src, err = OpenParquet[model.HeaderRow](spec.Path)
		} else {
			src, err = OpenParquet[model.ProductionRow](spec.Path)
		}
	default:
		src, err = OpenCSV(spec.Path, settings.Delimiter, settings.Encoding)
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// First returns the first row of src and closes it.
func First(src Source, name string) (model.Row, error) {
	defer src.Close()
	if !src.Next() {
		if err := src.Err(); err != nil {
			return nil, err
		}
		return nil, &ReadError{Source: name, Err: fmt.Errorf("no rows")}
	}
	return src.Row(), nil
}
