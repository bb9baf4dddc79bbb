package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
	"github.com/arcsoftware/arcs/renderer"
)

type purchaseCmd struct {
	asJSON bool
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "show parts per quote for purchasing" }
func (*purchaseCmd) Usage() string {
	return `arcs purchase [<quote>] [-json]

  Shows line items aggregated per part and supplier, quote by quote, for
  ordering. Without a quote argument every quote is listed. -json prints the
  summaries as JSON instead of a table.
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Output JSON instead of a table.")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := loadStore(config())

	var summaries []arcs.PurchaseSummary
	switch f.NArg() {
	case 0:
		summaries = arcs.PurchaseSummaries(store)
	case 1:
		q, err := store.Find(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		summaries = []arcs.PurchaseSummary{arcs.NewPurchaseSummary(q)}
	default:
		fmt.Fprintln(os.Stderr, "Error: expected at most one quote.")
		return subcommands.ExitUsageError
	}

	if c.asJSON {
		type jrow struct {
			PartNumber string `json:"part_number"`
			Source     string `json:"source"`
			Quantity   string `json:"quantity"`
			UnitCost   string `json:"unit_cost"`
			ListPrice  string `json:"list_price"`
		}
		type jsummary struct {
			Quote string `json:"quote"`
			PO    string `json:"po,omitempty"`
			Parts []jrow `json:"parts"`
		}
		out := make([]jsummary, 0, len(summaries))
		for _, s := range summaries {
			js := jsummary{Quote: s.Quote, PO: s.PONumber, Parts: make([]jrow, 0, len(s.Parts))}
			for _, r := range s.Parts {
				js.Parts = append(js.Parts, jrow{
					PartNumber: r.PartNumber,
					Source:     r.Source,
					Quantity:   r.Quantity.String(),
					UnitCost:   r.UnitCost.Decimal().String(),
					ListPrice:  r.ListPrice.Decimal().String(),
				})
			}
			out = append(out, js)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.PurchaseMarkdown(summaries))
	return subcommands.ExitSuccess
}
