package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type setCmd struct {
	po      string
	notes   string
	rename  bool
	setPO   bool
	setNote bool
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "update a quote's header fields" }
func (*setCmd) Usage() string {
	return `arcs set <quote> [-po <po_number>] [-notes <text>] [-rename]

  Updates the PO number and notes of a quote. With -rename the display name
  is re-derived from the creation date and PO number.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.Func("po", "Customer PO number.", func(s string) error {
		c.po, c.setPO = s, true
		return nil
	})
	f.Func("notes", "Free-form quote notes.", func(s string) error {
		c.notes, c.setNote = s, true
		return nil
	})
	f.BoolVar(&c.rename, "rename", false, "Re-derive the quote name from its metadata.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote to update.")
		return subcommands.ExitUsageError
	}
	cfg := config()
	store := loadStore(cfg)
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.setPO {
		q.PONumber = c.po
	}
	if c.setNote {
		q.Notes = c.notes
	}
	if c.rename {
		q.Name = arcs.NormalizeQuoteName(q)
	}
	q.UpdatedAt = time.Now().UTC()

	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated quote %q\n", q.Name)
	return subcommands.ExitSuccess
}
