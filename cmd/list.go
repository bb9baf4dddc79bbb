package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all saved quotes" }
func (*listCmd) Usage() string {
	return `arcs list

  Lists every quote in the store with its id, PO number, item count and total.
`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := loadStore(config())
	printMarkdown(renderer.QuoteListMarkdown(store))
	return subcommands.ExitSuccess
}
