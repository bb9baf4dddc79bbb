package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type suppliersCmd struct {
	exempt string
	clear  string
}

func (*suppliersCmd) Name() string     { return "suppliers" }
func (*suppliersCmd) Synopsis() string { return "list or update a quote's supplier settings" }
func (*suppliersCmd) Usage() string {
	return `arcs suppliers <quote> [-exempt <a,b,...>] [-clear <a,b,...>]

  Without flags, lists the suppliers seen on the quote and their tax-exempt
  settings. -exempt marks suppliers tax exempt, -clear removes the mark;
  both push the flag down to the matching line items.
`
}

func (c *suppliersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exempt, "exempt", "", "Comma-separated suppliers to mark tax exempt.")
	f.StringVar(&c.clear, "clear", "", "Comma-separated suppliers to mark taxable again.")
}

func splitList(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (c *suppliersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	exempt, clear := splitList(c.exempt), splitList(c.clear)
	if len(exempt) == 0 && len(clear) == 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "# Suppliers of %s\n\n", q.Name)
		fmt.Fprintln(&b, "| Supplier | Tax Exempt |")
		fmt.Fprintln(&b, "|:---|:---:|")
		for _, name := range q.SupplierNames() {
			mark := " "
			if q.Suppliers[name].TaxExempt {
				mark = "X"
			}
			fmt.Fprintf(&b, "| %s | %s |\n", name, mark)
		}
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	for _, name := range exempt {
		q.SetSupplierExemption(name, true)
	}
	for _, name := range clear {
		q.SetSupplierExemption(name, false)
	}
	if err := arcs.SaveStore(cfg, store); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated suppliers of quote %q\n", q.Name)
	return subcommands.ExitSuccess
}
