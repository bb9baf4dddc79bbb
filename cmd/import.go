package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a previously exported quote JSON file" }
func (*importCmd) Usage() string {
	return `arcs import <file.json>

  Adds the quote from an exported JSON document to the store. When the id
  collides with an existing quote a fresh id is assigned, and the name is
  re-derived from the quote metadata.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one file to import.")
		return subcommands.ExitUsageError
	}
	cfg := config()

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	q, err := arcs.ImportQuote(in, cfg.DefaultCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	store := loadStore(cfg)
	if err := arcs.ImportInto(store, q); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported quote %q (id %s)\n", q.Name, q.ID)
	return subcommands.ExitSuccess
}
