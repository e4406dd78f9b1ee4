package bpa

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gyeh/bpagen/internal/model"
)

// EncodeHeader renders the "01" line, line ending included.
func EncodeHeader(h model.Header) string {
	return HeaderLayout.Render(h.Fields()) + LineEnding
}

// EncodeConsolidated renders one "02" line, line ending included.
func EncodeConsolidated(c model.ConsolidatedRecord) string {
	return ConsolidatedLayout.Render(c.Fields()) + LineEnding
}

// EncodeIndividual renders one "03" line, line ending included.
func EncodeIndividual(i model.IndividualRecord) string {
	return IndividualLayout.Render(i.Fields()) + LineEnding
}

// EncodeRow builds the mode's detail record from r and renders it. Errors are
// *model.MissingFieldError or *model.DateParseError.
func EncodeRow(m model.Mode, r model.Row) (string, error) {
	switch m.Name {
	case model.Consolidated.Name:
		c, err := model.ConsolidatedFromRow(r)
		if err != nil {
			return "", err
		}
		return EncodeConsolidated(c), nil
	case model.Individualized.Name:
		i, err := model.IndividualFromRow(r)
		if err != nil {
			return "", err
		}
		return EncodeIndividual(i), nil
	}
	return "", fmt.Errorf("unknown mode %q", m.Name)
}

// File accumulates detail lines in input order and writes them after a header
// whose line and sheet totals match the number of details.
type File struct {
	Mode    model.Mode
	details bytes.Buffer
	count   int
}

// NewFile returns an empty file for mode m.
func NewFile(m model.Mode) *File {
	return &File{Mode: m}
}

// Add encodes r and appends it. A failing row leaves the file unchanged.
func (f *File) Add(r model.Row) error {
	line, err := EncodeRow(f.Mode, r)
	if err != nil {
		return err
	}
	f.details.WriteString(line)
	f.count++
	return nil
}

// Len is the number of detail lines added so far.
func (f *File) Len() int {
	return f.count
}

// Header returns h with its totals set to the current detail count.
func (f *File) Header(h model.Header) model.Header {
	return h.WithTotals(f.count)
}

// Encode writes the header line followed by every detail line.
func (f *File) Encode(w io.Writer, h model.Header) (int64, error) {
	n, err := io.WriteString(w, EncodeHeader(f.Header(h)))
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(f.details.Bytes())
	return int64(n + m), err
}
