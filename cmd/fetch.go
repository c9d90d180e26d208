package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mfreport/mfreport"
	"github.com/mfreport/mfreport/renderer"
)

type fetchCmd struct {
	code string
	rows int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches one scheme's NAV history and prints it" }
func (*fetchCmd) Usage() string {
	return `mfr fetch -c <scheme-code> [-n <rows>]

Fetches the published NAV history for a single scheme code and prints the
most recent rows. Useful to check what the feed publishes for a code before
adding it to the catalog.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "scheme code to fetch")
	f.IntVar(&c.rows, "n", 15, "number of most recent NAVs to print")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Fprintln(os.Stderr, "-c <scheme-code> must be provided")
		return subcommands.ExitUsageError
	}

	client := mfreport.NewClient()

	title := c.code
	if name, err := client.SchemeName(c.code); err == nil {
		title = fmt.Sprintf("%s (%s)", name, c.code)
	}

	records, err := client.Fetch(c.code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch scheme %s: %v\n", c.code, err)
		return subcommands.ExitFailure
	}

	series := mfreport.BuildSeries(records)
	if series.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Scheme %s returned %d rows, none parseable.\n", c.code, len(records))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(title, series, c.rows))
	return subcommands.ExitSuccess
}
