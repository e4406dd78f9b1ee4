package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gyeh/bpagen/internal/charset"
	"github.com/gyeh/bpagen/internal/model"
)

// CSVSource streams rows from a delimited text file. The first record names
// the columns.
type CSVSource struct {
	path    string
	file    *os.File
	reader  *csv.Reader
	headers []string
	current model.Row
	rowNum  int
	err     error
}

// OpenCSV opens path and reads its header record. delimiter is parsed by
// ParseDelimiter. encoding is an IANA charset name, "" meaning UTF-8.
func OpenCSV(path, delimiter, encoding string) (*CSVSource, error) {
	comma, err := ParseDelimiter(delimiter)
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Source: path, Err: err}
	}

	in, err := charset.NewReader(bufio.NewReader(f), encoding)
	if err != nil {
		f.Close()
		return nil, &ReadError{Source: path, Err: err}
	}

	r := csv.NewReader(in)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	s := &CSVSource{path: path, file: f, reader: r}
	if err := s.readHeaders(); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// ParseDelimiter maps a delimiter option to its separator rune: a single
// character, or "comma", "tab" (also `\t`), "pipe", "semicolon". "" is comma.
func ParseDelimiter(d string) (rune, error) {
	switch strings.ToLower(d) {
	case "", ",", "comma":
		return ',', nil
	case "\\t", "\t", "tab":
		return '\t', nil
	case "|", "pipe":
		return '|', nil
	case ";", "semicolon":
		return ';', nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", d)
	}
	c, _ := utf8.DecodeRuneInString(d)
	return c, nil
}

func (s *CSVSource) readHeaders() error {
	rec, err := s.reader.Read()
	if err == io.EOF {
		return &ReadError{Source: s.path, Err: errors.New("file is empty")}
	}
	if err != nil {
		return &ReadError{Source: s.path, Err: fmt.Errorf("header record: %w", err)}
	}
	s.headers = make([]string, len(rec))
	for i, h := range rec {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		s.headers[i] = strings.ToLower(h)
	}
	return nil
}

// Next advances to the next non-blank record.
func (s *CSVSource) Next() bool {
	if s.err != nil {
		return false
	}
	for {
		rec, err := s.reader.Read()
		if err == io.EOF {
			return false
		}
		if err != nil {
			s.err = &ReadError{Source: s.path, Err: fmt.Errorf("row %d: %w", s.rowNum+1, err)}
			return false
		}
		if isBlank(rec) {
			continue
		}
		s.rowNum++

		// Short records leave trailing columns absent.
		row := make(model.Row, len(s.headers))
		for i, h := range s.headers {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = strings.TrimSpace(rec[i])
		}
		s.current = row
		return true
	}
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (s *CSVSource) Row() model.Row    { return s.current }
func (s *CSVSource) RowNumber() int    { return s.rowNum }
func (s *CSVSource) Err() error        { return s.err }
func (s *CSVSource) Headers() []string { return s.headers }

// Close releases the underlying file.
func (s *CSVSource) Close() error {
	return s.file.Close()
}
