package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/bpagen/internal/model"
)

const parquetBatchSize = 1024

// ParquetSource streams rows from a Parquet file through a typed
// GenericReader. T is the row struct (model.ProductionRow or model.HeaderRow).
type ParquetSource[T any, PT interface {
	*T
	Row() model.Row
}] struct {
	path    string
	file    *os.File
	reader  *parquet.GenericReader[T]
	buf     []T
	n, pos  int
	current model.Row
	rowNum  int
	done    bool
	err     error
}

// OpenParquet opens a Parquet file and checks that its schema shares at least
// one column with T.
func OpenParquet[T any, PT interface {
	*T
	Row() model.Row
}](path string) (*ParquetSource[T, PT], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &ReadError{Source: path, Err: fmt.Errorf("stat parquet file: %w", err)}
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, &ReadError{Source: path, Err: fmt.Errorf("open parquet: %w", err)}
	}

	if err := validateSchema(pf.Schema(), parquet.SchemaOf(new(T))); err != nil {
		f.Close()
		return nil, &ReadError{Source: path, Err: err}
	}

	return &ParquetSource[T, PT]{
		path:   path,
		file:   f,
		reader: parquet.NewGenericReader[T](pf),
		buf:    make([]T, parquetBatchSize),
	}, nil
}

// validateSchema rejects files that carry none of the expected columns, which
// is almost always a header file passed as data or vice versa.
func validateSchema(file, want *parquet.Schema) error {
	have := make(map[string]bool)
	for _, field := range file.Fields() {
		have[strings.ToLower(field.Name())] = true
	}
	var names []string
	for _, field := range want.Fields() {
		if have[field.Name()] {
			return nil
		}
		names = append(names, field.Name())
	}
	return fmt.Errorf("no recognised columns; expected some of: %s", strings.Join(names, ", "))
}

// NumRows returns the total number of rows in the file.
func (s *ParquetSource[T, PT]) NumRows() int64 {
	return s.reader.NumRows()
}

// Next advances to the next row, refilling the batch buffer as needed.
func (s *ParquetSource[T, PT]) Next() bool {
	if s.err != nil {
		return false
	}
	if s.pos >= s.n {
		if s.done {
			return false
		}
		clear(s.buf)
		n, err := s.reader.Read(s.buf)
		if err != nil && !errors.Is(err, io.EOF) {
			s.err = &ReadError{Source: s.path, Err: fmt.Errorf("read parquet rows: %w", err)}
			return false
		}
		if errors.Is(err, io.EOF) {
			s.done = true
		}
		s.n, s.pos = n, 0
		if n == 0 {
			return false
		}
	}
	s.current = PT(&s.buf[s.pos]).Row()
	s.pos++
	s.rowNum++
	return true
}

func (s *ParquetSource[T, PT]) Row() model.Row { return s.current }
func (s *ParquetSource[T, PT]) RowNumber() int { return s.rowNum }
func (s *ParquetSource[T, PT]) Err() error     { return s.err }

// Close releases all resources.
func (s *ParquetSource[T, PT]) Close() error {
	if err := s.reader.Close(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
