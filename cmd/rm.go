package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type rmCmd struct {
	index int
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a line item from a quote" }
func (*rmCmd) Usage() string {
	return `arcs rm <quote> -i <index>

  Removes the line item at 1-based index <index>.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "1-based index of the line item to remove.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote.")
		return subcommands.ExitUsageError
	}
	cfg := config()
	store := loadStore(cfg)
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := q.RemoveItem(c.index - 1); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed line %d from quote %q (total %s)\n", c.index, q.Name, q.TotalPrice())
	return subcommands.ExitSuccess
}
