package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gyeh/bpagen/internal/charset"
	"github.com/gyeh/bpagen/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a bpagen run.
type Config struct {
	DSN            string
	LogFormat      string // "text" or "json"
	Mode           string // any alias accepted by model.ModeByName
	HeaderPath     string
	DataPath       string
	HeaderQuery    string
	DataQuery      string
	OutDir         string
	OutputPath     string // explicit output file; overrides OutDir naming
	Delimiter      string
	InputEncoding  string
	OutputEncoding string
	DryRun         bool
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	DSN            string `yaml:"dsn"`
	LogFormat      string `yaml:"log_format"`
	Mode           string `yaml:"mode"`
	Header         string `yaml:"header"`
	Data           string `yaml:"data"`
	HeaderQuery    string `yaml:"header_query"`
	DataQuery      string `yaml:"data_query"`
	OutDir         string `yaml:"out_dir"`
	Output         string `yaml:"output"`
	Delimiter      string `yaml:"delimiter"`
	InputEncoding  string `yaml:"input_encoding"`
	OutputEncoding string `yaml:"output_encoding"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Fields already set (from flags) are kept.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file: %w", err)
	}

	fill(&c.DSN, yc.DSN)
	fill(&c.LogFormat, yc.LogFormat)
	fill(&c.Mode, yc.Mode)
	fill(&c.HeaderPath, yc.Header)
	fill(&c.DataPath, yc.Data)
	fill(&c.HeaderQuery, yc.HeaderQuery)
	fill(&c.DataQuery, yc.DataQuery)
	fill(&c.OutDir, yc.OutDir)
	fill(&c.OutputPath, yc.Output)
	fill(&c.Delimiter, yc.Delimiter)
	fill(&c.InputEncoding, yc.InputEncoding)
	fill(&c.OutputEncoding, yc.OutputEncoding)
	return nil
}

func fill(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// ApplyDefaults sets defaults for any option left blank.
func (c *Config) ApplyDefaults() {
	fill(&c.LogFormat, "text")
	fill(&c.OutDir, ".")
	fill(&c.Delimiter, ",")
	fill(&c.InputEncoding, "utf-8")
	fill(&c.OutputEncoding, "utf-8")
}

// ResolvedMode returns the model.Mode named by c.Mode.
func (c *Config) ResolvedMode() (model.Mode, error) {
	m, ok := model.ModeByName(c.Mode)
	if !ok {
		return model.Mode{}, fmt.Errorf("unknown mode %q; use one of: %s",
			c.Mode, strings.Join(model.ModeNames(), ", "))
	}
	return m, nil
}

// NeedsDB reports whether any input is a query.
func (c *Config) NeedsDB() bool {
	return c.HeaderQuery != "" || c.DataQuery != ""
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	c.ApplyDefaults()

	if c.Mode == "" {
		return fmt.Errorf("--mode is required")
	}
	if _, err := c.ResolvedMode(); err != nil {
		return err
	}
	if err := checkInput("header", c.HeaderPath, c.HeaderQuery); err != nil {
		return err
	}
	if err := checkInput("data", c.DataPath, c.DataQuery); err != nil {
		return err
	}
	if c.NeedsDB() && c.DSN == "" {
		return fmt.Errorf("--dsn or BPAGEN_DB_URL is required for query inputs")
	}
	if _, err := charset.Lookup(c.InputEncoding); err != nil {
		return fmt.Errorf("input encoding: %w", err)
	}
	if _, err := charset.Lookup(c.OutputEncoding); err != nil {
		return fmt.Errorf("output encoding: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("--log-format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func checkInput(name, path, query string) error {
	switch {
	case path != "" && query != "":
		return fmt.Errorf("--%s and --%s-query are mutually exclusive", name, name)
	case path == "" && query == "":
		return fmt.Errorf("--%s or --%s-query is required", name, name)
	}
	return nil
}
