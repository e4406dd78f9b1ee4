package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/bpagen/internal/bpa"
	"github.com/gyeh/bpagen/internal/exitcode"
	"github.com/gyeh/bpagen/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	addInputFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)
	cfg.DryRun = true

	summary, code := execute(context.Background(), log)
	if code != exitcode.Success {
		os.Exit(code)
	}

	fmt.Println("=== bpagen plan ===")
	fmt.Printf("Mode:          %s\n", summary.Mode.Label)
	fmt.Printf("Header source: %s\n", summary.HeaderSource)
	fmt.Printf("Data source:   %s\n", summary.DataSource)
	fmt.Printf("Detail lines:  %d\n", summary.DetailLines)
	fmt.Printf("Header width:  %d\n", summary.HeaderWidth)
	fmt.Printf("Detail width:  %d\n", summary.DetailWidth)
	fmt.Printf("Read time:     %.2fs\n", summary.DurationRead.Seconds())
	fmt.Println()
	fmt.Println("Header line:")
	fmt.Printf("  %q\n", summary.HeaderLine)
	fmt.Println()
	fmt.Printf("%s detail layout:\n", summary.Mode.Label)
	layout := bpa.DetailLayout(summary.Mode)
	for i, off := range layout.Offsets() {
		f := layout[i]
		fmt.Printf("  %3d  %-20s %-8s %3d\n", off, f.Name, f.Kind.String(), f.Span())
	}
	fmt.Println("Validation: OK")

	return nil
}
