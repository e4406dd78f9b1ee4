package model

import "time"

// GenerateSummary captures metrics from a single generation run.
type GenerateSummary struct {
	RunID        string
	Mode         Mode
	HeaderSource string
	DataSource   string
	OutputPath   string // empty on dry runs
	OutputSHA256 string
	DetailLines  int
	HeaderWidth  int
	DetailWidth  int
	Bytes        int64
	HeaderLine   string
	DryRun       bool

	DurationRead  time.Duration
	DurationWrite time.Duration
	DurationTotal time.Duration
}
