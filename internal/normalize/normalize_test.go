package normalize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_KnownLayouts(t *testing.T) {
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2024-01-15",
		"20240115",
		"15/01/2024",
		"15-01-2024",
		"15.01.2024",
		"2024/01/15",
		" 2024-01-15 ",
	} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q parsed as %v", in, got)
	}
}

func TestParseDate_DayFirst(t *testing.T) {
	got, err := ParseDate("03/02/2024")
	require.NoError(t, err)
	assert.Equal(t, "20240203", CompactDate(got))
}

func TestParseDate_DayFirstAcrossSpellings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"03/04/2024", "20240403"},
		{"3/4/2024", "20240403"},
		{"03/04/2024 10:30", "20240403"},
		{"03/04/2024 10:30:15", "20240403"},
		{"3/4/2024 9:05:00", "20240403"},
		{"03/04/24", "20240403"},
		{"3/4/24", "20240403"},
		{"03-04-24", "20240403"},
		{"03-04-2024 10:30", "20240403"},
		{"3.4.2024", "20240403"},
		{"03.04.2024", "20240403"},
		{"03.04.24", "20240403"},
		{"02/01/70", "19700102"},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, CompactDate(got), "ParseDate(%q)", tt.in)
	}
}

func TestParseDate_Rejects(t *testing.T) {
	for _, in := range []string{
		"31/02/2024",
		"32/01/2024",
		"15/13/2024",
		"31/02/24",
		"31.02.2024 10:00",
		"jan 5",
		"2024-02-30",
	} {
		_, err := ParseDate(in)
		assert.Error(t, err, "ParseDate(%q) should fail", in)
	}
}

func TestParseDate_FreeForm(t *testing.T) {
	got, err := ParseDate("oct 7, 1970")
	require.NoError(t, err)
	assert.Equal(t, "19701007", CompactDate(got))
}

func TestParseDate_Timestamp(t *testing.T) {
	got, err := ParseDate("2023-12-31T23:10:00")
	require.NoError(t, err)
	assert.Equal(t, "20231231", CompactDate(got))
}

func TestParseDate_Empty(t *testing.T) {
	_, err := ParseDate("   ")
	assert.True(t, errors.Is(err, ErrEmptyDate))
}

func TestParseDate_Garbage(t *testing.T) {
	_, err := ParseDate("not a date at all")
	assert.Error(t, err)
}

func TestFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))

	got, err := FileHash(path)
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", got)
}

func TestFileHash_Missing(t *testing.T) {
	_, err := FileHash("/nonexistent/file")
	assert.Error(t, err)
}
