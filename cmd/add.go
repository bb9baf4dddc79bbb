package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/arcsoftware/arcs"
)

type addCmd struct {
	part      string
	desc      string
	qty       string
	cost      string
	list      string
	source    string
	taxExempt bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a line item to a quote" }
func (*addCmd) Usage() string {
	return `arcs add <quote> -part <part_number> [-desc <description>] -qty <n> -cost <unit_cost> -list <list_price> [-source <supplier>] [-tax-exempt]

  Adds one line item. Quantity and prices must parse as non-negative numbers.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.part, "part", "", "Part number.")
	f.StringVar(&c.desc, "desc", "", "Part description.")
	f.StringVar(&c.qty, "qty", "1", "Quantity.")
	f.StringVar(&c.cost, "cost", "0", "Unit cost.")
	f.StringVar(&c.list, "list", "0", "List price.")
	f.StringVar(&c.source, "source", "", "Supplier the part is sourced from.")
	f.BoolVar(&c.taxExempt, "tax-exempt", false, "Mark the line tax exempt.")
}

// parseLineItem turns the command flags into a line item, in the quote's
// currency. Unparseable numbers are reported as validation failures so the
// caller can re-prompt.
func (c *addCmd) parseLineItem(currency string) (arcs.LineItem, error) {
	var it arcs.LineItem
	qty, err := decimal.NewFromString(c.qty)
	if err != nil {
		return it, fmt.Errorf("%w: quantity %q is not a number", arcs.ErrValidation, c.qty)
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		return it, fmt.Errorf("%w: unit cost %q is not a number", arcs.ErrValidation, c.cost)
	}
	list, err := decimal.NewFromString(c.list)
	if err != nil {
		return it, fmt.Errorf("%w: list price %q is not a number", arcs.ErrValidation, c.list)
	}
	return arcs.LineItem{
		PartNumber:  c.part,
		Description: c.desc,
		Quantity:    arcs.Q(qty),
		UnitCost:    arcs.M(cost, currency),
		ListPrice:   arcs.M(list, currency),
		Source:      c.source,
		TaxExempt:   c.taxExempt,
	}, nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote to add to.")
		return subcommands.ExitUsageError
	}
	cfg := config()
	store := loadStore(cfg)
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	it, err := c.parseLineItem(q.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := q.AddItem(it); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q to quote %q (total %s)\n", c.part, q.Name, q.TotalPrice())
	return subcommands.ExitSuccess
}
