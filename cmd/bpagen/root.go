package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/bpagen/internal/config"
)

var (
	cfg        config.Config
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bpagen",
	Short: "BPA fixed-width file generator",
	Long: "Reads BPA header and production data from CSV, Parquet or Postgres and writes " +
		"a BPA-C (consolidated) or BPA-I (individualized) fixed-width file for SIA/SUS import.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env in the working directory may carry BPAGEN_DB_URL.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if cfg.DSN == "" {
			cfg.DSN = os.Getenv("BPAGEN_DB_URL")
		}
		if configPath != "" {
			if err := cfg.LoadFromFile(configPath); err != nil {
				return err
			}
		}
		cfg.ApplyDefaults()
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file; explicit flags take precedence")
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("BPAGEN_DB_URL"), "Postgres connection string for query inputs (or set BPAGEN_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "", "Log format: text or json (default text)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// addInputFlags registers the flags shared by generate and plan.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&cfg.Mode, "mode", "", "File type: c (BPA-C, consolidated) or i (BPA-I, individualized)")
	f.StringVar(&cfg.HeaderPath, "header", "", "Header input file (.csv or .parquet)")
	f.StringVar(&cfg.DataPath, "data", "", "Production data input file (.csv or .parquet)")
	f.StringVar(&cfg.HeaderQuery, "header-query", "", "SQL query returning the header row (instead of --header)")
	f.StringVar(&cfg.DataQuery, "data-query", "", "SQL query returning production rows (instead of --data)")
	f.StringVar(&cfg.Delimiter, "delimiter", "", "CSV delimiter: , ; | or tab (default ,)")
	f.StringVar(&cfg.InputEncoding, "input-encoding", "", "CSV input charset, e.g. ISO-8859-1 (default utf-8)")
}
