package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a quote from the store" }
func (*deleteCmd) Usage() string {
	return `arcs delete <quote>

  Removes exactly one quote. The other quotes keep their order.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote to delete.")
		return subcommands.ExitUsageError
	}
	cfg := config()
	store := loadStore(cfg)
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := store.Delete(q.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted quote %q\n", q.Name)
	return subcommands.ExitSuccess
}
