package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/mfreport/mfreport"
	"github.com/mfreport/mfreport/date"
	"github.com/mfreport/mfreport/renderer"
)

type runCmd struct{}

func (*runCmd) Name() string { return "run" }
func (*runCmd) Synopsis() string {
	return "fetches NAV histories and writes the monthly rolling-returns workbook"
}
func (*runCmd) Usage() string {
	return `mfr run

Iterates every (AMC, category, plan) in the catalog, fetches the scheme's
NAV history, computes the annualized rolling return over the previous
month's window, and writes Rolling_Returns_<Mon-YYYY>.xlsx into the output
directory.

A scheme that fails (no code configured, unreachable feed, sparse or
malformed history) leaves its cell blank and is logged; it never aborts the
run. Only a missing catalog or an unwritable workbook fails the whole run.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	logger, closeLog := mfreport.NewRunLogger(*outputDir)
	defer closeLog()

	logger.Printf("Starting rolling-returns run (%d AMCs, %d items).", len(catalog.AMCs), catalog.Items())
	report := mfreport.BuildReport(catalog, mfreport.NewClient(), date.Today(), logger)

	if len(report.Categories()) == 0 {
		logger.Printf("No results produced. Exiting.")
		return subcommands.ExitFailure
	}

	path := filepath.Join(*outputDir, fmt.Sprintf("Rolling_Returns_%s.xlsx", report.Month()))
	if err := renderer.WriteXLSX(report, path); err != nil {
		logger.Printf("FATAL: %v", err)
		return subcommands.ExitFailure
	}
	logger.Printf("SUCCESS: report generated at %s", path)

	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
