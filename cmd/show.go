package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a quote with its line items and totals" }
func (*showCmd) Usage() string {
	return `arcs show <quote>

  Displays one quote. <quote> is an id, an id prefix, the exact name, or
  the PO number.
`
}

func (*showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote to show.")
		return subcommands.ExitUsageError
	}
	store := loadStore(config())
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QuoteMarkdown(renderer.NewQuoteView(q)))
	return subcommands.ExitSuccess
}
