package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type newCmd struct {
	name string
	po   string
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a new quote and save it to the store" }
func (*newCmd) Usage() string {
	return `arcs new [-name <name>] [-po <po_number>]

  Creates an empty quote. Without -name the quote is named "ARCS <today>",
  with " [PO:<po>]" appended when a PO number is given.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the quote.")
	f.StringVar(&c.po, "po", "", "Customer PO number.")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config()
	store := loadStore(cfg)

	q := arcs.NewQuote(c.name, cfg.DefaultCurrency)
	q.PONumber = c.po
	if c.name == "" {
		q.Name = arcs.NormalizeQuoteName(q)
	}
	if err := store.Add(q); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created quote %q (id %s)\n", q.Name, q.ID)
	return subcommands.ExitSuccess
}
