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

type editCmd struct {
	index int

	part   string
	desc   string
	qty    string
	cost   string
	list   string
	source string

	setPart, setDesc, setQty, setCost, setList, setSource bool
	taxExempt                                             bool
	setTaxExempt                                          bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a line item of a quote" }
func (*editCmd) Usage() string {
	return `arcs edit <quote> -i <index> [-part ...] [-desc ...] [-qty ...] [-cost ...] [-list ...] [-source ...] [-tax-exempt=true|false]

  Edits the line item at 1-based index <index>. Only the given fields change.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "1-based index of the line item to edit.")
	f.Func("part", "Part number.", func(s string) error { c.part, c.setPart = s, true; return nil })
	f.Func("desc", "Part description.", func(s string) error { c.desc, c.setDesc = s, true; return nil })
	f.Func("qty", "Quantity.", func(s string) error { c.qty, c.setQty = s, true; return nil })
	f.Func("cost", "Unit cost.", func(s string) error { c.cost, c.setCost = s, true; return nil })
	f.Func("list", "List price.", func(s string) error { c.list, c.setList = s, true; return nil })
	f.Func("source", "Supplier the part is sourced from.", func(s string) error { c.source, c.setSource = s, true; return nil })
	f.BoolFunc("tax-exempt", "Mark the line tax exempt.", func(s string) error {
		c.taxExempt, c.setTaxExempt = s != "false", true
		return nil
	})
}

func (c *editCmd) apply(it arcs.LineItem, currency string) (arcs.LineItem, error) {
	if c.setPart {
		it.PartNumber = c.part
	}
	if c.setDesc {
		it.Description = c.desc
	}
	if c.setSource {
		it.Source = c.source
	}
	if c.setTaxExempt {
		it.TaxExempt = c.taxExempt
	}
	if c.setQty {
		qty, err := decimal.NewFromString(c.qty)
		if err != nil {
			return it, fmt.Errorf("%w: quantity %q is not a number", arcs.ErrValidation, c.qty)
		}
		it.Quantity = arcs.Q(qty)
	}
	if c.setCost {
		cost, err := decimal.NewFromString(c.cost)
		if err != nil {
			return it, fmt.Errorf("%w: unit cost %q is not a number", arcs.ErrValidation, c.cost)
		}
		it.UnitCost = arcs.M(cost, currency)
	}
	if c.setList {
		list, err := decimal.NewFromString(c.list)
		if err != nil {
			return it, fmt.Errorf("%w: list price %q is not a number", arcs.ErrValidation, c.list)
		}
		it.ListPrice = arcs.M(list, currency)
	}
	return it, nil
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote to edit.")
		return subcommands.ExitUsageError
	}
	cfg := config()
	store := loadStore(cfg)
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	i := c.index - 1
	if i < 0 || i >= len(q.Items) {
		fmt.Fprintf(os.Stderr, "Error: quote %q has no line item %d.\n", q.Name, c.index)
		return subcommands.ExitFailure
	}
	it, err := c.apply(q.Items[i], q.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := q.UpdateItem(i, it); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated line %d of quote %q (total %s)\n", c.index, q.Name, q.TotalPrice())
	return subcommands.ExitSuccess
}
