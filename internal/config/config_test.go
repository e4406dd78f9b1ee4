package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "mode: i\nheader: h.csv\ndata: d.csv\ndelimiter: \";\"\noutput_encoding: ISO-8859-1\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Mode != "i" || c.HeaderPath != "h.csv" || c.DataPath != "d.csv" {
		t.Errorf("unexpected config: %+v", c)
	}
	if c.Delimiter != ";" || c.OutputEncoding != "ISO-8859-1" {
		t.Errorf("unexpected delimiter/encoding: %q %q", c.Delimiter, c.OutputEncoding)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	path := writeConfig(t, "mode: i\nout_dir: /tmp/from-yaml\n")

	c := Config{Mode: "c"}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.Mode != "c" {
		t.Errorf("flag value overwritten: %q", c.Mode)
	}
	if c.OutDir != "/tmp/from-yaml" {
		t.Errorf("expected out_dir from yaml, got %q", c.OutDir)
	}
}

func TestLoadFromFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "mode: c\ncode_types: [CPT]\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadFromFile_Empty(t *testing.T) {
	var c Config
	if err := c.LoadFromFile(writeConfig(t, "")); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Mode: "bpa-c", HeaderPath: "h.csv", DataPath: "d.csv"}
	}

	c := valid()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.Delimiter != "," || c.OutDir != "." || c.LogFormat != "text" {
		t.Errorf("defaults not applied: %+v", c)
	}
	if m, _ := c.ResolvedMode(); m.Name != "C" {
		t.Errorf("expected mode C, got %q", m.Name)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no mode", func(c *Config) { c.Mode = "" }, "--mode"},
		{"bad mode", func(c *Config) { c.Mode = "x" }, "unknown mode"},
		{"no header", func(c *Config) { c.HeaderPath = "" }, "--header"},
		{"both data inputs", func(c *Config) { c.DataQuery = "select 1" }, "mutually exclusive"},
		{"query without dsn", func(c *Config) { c.DataPath = ""; c.DataQuery = "select 1" }, "--dsn"},
		{"bad encoding", func(c *Config) { c.OutputEncoding = "klingon-1" }, "output encoding"},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, "--log-format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}
