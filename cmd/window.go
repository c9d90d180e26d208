package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mfreport/mfreport"
	"github.com/mfreport/mfreport/date"
)

type windowCmd struct {
	on string
}

func (*windowCmd) Name() string     { return "window" }
func (*windowCmd) Synopsis() string { return "prints the reference window a run would use" }
func (*windowCmd) Usage() string {
	return `mfr window [-on <YYYY-MM-DD>]

Prints the two month-end reference dates a report run would align the NAV
histories against, for today or for the given date.
`
}

func (c *windowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "resolve the window as of this date instead of today")
}

func (c *windowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	today := date.Today()
	if c.on != "" {
		var err error
		today, err = date.Parse(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	w := mfreport.ResolveWindow(today)
	fmt.Printf("run date: %s\nwindow:   %s to %s (%d days)\n", today, w.From, w.To, w.To.Sub(w.From))
	return subcommands.ExitSuccess
}
