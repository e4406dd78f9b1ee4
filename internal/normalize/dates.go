package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oarkflow/date"
)

// ErrEmptyDate is returned by ParseDate for blank input.
var ErrEmptyDate = errors.New("empty date")

// minYear bounds free-form results; year-less input parses as year 0.
const minYear = 1900

// isoFormats are year-first layouts, tried before the day-first ones.
var isoFormats = []string{
	"2006-01-02",
	"20060102",
	"2006/01/02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// dayFirstFormats covers every d/m/y spelling with '/', '-' or '.' between
// the parts, 2- or 4-digit years and an optional time of day. "2" and "1"
// accept both padded and unpadded days and months.
var dayFirstFormats = func() []string {
	var out []string
	for _, sep := range []string{"/", "-", "."} {
		for _, year := range []string{"2006", "06"} {
			base := "2" + sep + "1" + sep + year
			for _, clock := range []string{"", " 15:04", " 15:04:05", "T15:04:05", "T15:04"} {
				out = append(out, base+clock)
			}
		}
	}
	return out
}()

// numericDate matches all-digit dates. Only the fixed layouts may read them;
// the free-form parser would take d/m/y as m/d/y.
var numericDate = regexp.MustCompile(`^(\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4}|\d{4}[/.-]?\d{1,2}[/.-]?\d{1,2})`)

// ParseDate parses s. Year-first ISO forms and all numeric d/m/y forms are
// read by fixed layouts, always day-first. Anything else (month names,
// say) goes to the free-form parser, whose result must carry a year.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}
	for _, layout := range isoFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range dayFirstFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if numericDate.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid numeric date %q", s)
	}

	t, err := date.Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() < minYear {
		return time.Time{}, fmt.Errorf("date %q has no plausible year", s)
	}
	return t, nil
}

// CompactDate renders t as YYYYMMDD.
func CompactDate(t time.Time) string {
	return t.Format("20060102")
}
