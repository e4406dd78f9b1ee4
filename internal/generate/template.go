package generate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/gyeh/bpagen/internal/model"
)

// Template file names written by WriteTemplates.
const (
	HeaderTemplateFile = "header.csv"
	DataTemplateFile   = "data.csv"
)

// WriteTemplates writes header and data CSV skeletons for mode m into dir:
// the column names plus one sample row each. comma is the field separator.
func WriteTemplates(dir string, m model.Mode, comma rune) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create template dir: %w", err)
	}

	var data any
	switch m.Name {
	case model.Consolidated.Name:
		data = model.SampleConsolidated()
	case model.Individualized.Name:
		data = model.SampleIndividual()
	default:
		return nil, fmt.Errorf("unknown mode %q", m.Name)
	}

	headerPath := filepath.Join(dir, HeaderTemplateFile)
	if err := toCSVFile(model.SampleHeader(), headerPath, comma); err != nil {
		return nil, err
	}
	dataPath := filepath.Join(dir, DataTemplateFile)
	if err := toCSVFile(data, dataPath, comma); err != nil {
		return nil, err
	}
	return []string{headerPath, dataPath}, nil
}

func toCSVFile(in any, path string, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma
	if err := gocsv.MarshalCSV(in, w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
