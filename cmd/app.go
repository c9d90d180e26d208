// Package cmd implements the CLI application to produce rolling-return reports.
package cmd

import (
	"flag"

	"github.com/google/subcommands"

	"github.com/mfreport/mfreport"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "report")
	c.Register(&windowCmd{}, "report")
	c.Register(&fetchCmd{}, "schemes")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var catalogFile = flag.String("catalog", "scheme_codes.json", "Path to the scheme-code catalog file (JSON)")
var outputDir = flag.String("out", "outputs", "Directory receiving the report workbook and the run log")

// LoadCatalog loads the catalog named by the -catalog flag.
// There is no report without a catalog, so callers treat any error as fatal.
func LoadCatalog() (*mfreport.Catalog, error) {
	return mfreport.LoadCatalog(*catalogFile)
}
