package model

import (
	"fmt"
	"strings"
)

// Row is one input record: column name -> cell text. A column that is absent
// from the map is missing; a present column may still hold "".
type Row map[string]string

// MissingFieldError reports required columns absent from a row.
type MissingFieldError struct {
	Record string
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record: missing required field(s): %s", e.Record, strings.Join(e.Fields, ", "))
}

// DateParseError reports a date column whose value could not be interpreted.
type DateParseError struct {
	Field string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("field %s: cannot parse date %q: %s", e.Field, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// Require returns a MissingFieldError naming every key not present in r.
func (r Row) Require(record string, keys []string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := r[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Record: record, Fields: missing}
	}
	return nil
}

// Get returns the value of key, or def when the key is absent or blank.
func (r Row) Get(key, def string) string {
	v, ok := r[key]
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
