package renderer

import (
	"fmt"
	"strings"

	"github.com/arcsoftware/arcs"
)

// PurchaseMarkdown renders purchasing summaries, one section per quote.
func PurchaseMarkdown(summaries []arcs.PurchaseSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Purchase List\n\n")
	if len(summaries) == 0 {
		fmt.Fprintln(&b, "No quotes to show.")
		return b.String()
	}
	for _, s := range summaries {
		if s.PONumber != "" {
			fmt.Fprintf(&b, "## %s [PO: %s]\n\n", s.Quote, s.PONumber)
		} else {
			fmt.Fprintf(&b, "## %s\n\n", s.Quote)
		}
		if len(s.Parts) == 0 {
			fmt.Fprintln(&b, "(no items)")
			fmt.Fprintln(&b)
			continue
		}
		fmt.Fprintln(&b, "| Part | Qty | Source | Unit Cost | List Price |")
		fmt.Fprintln(&b, "|:---|---:|:---|---:|---:|")
		for _, r := range s.Parts {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				r.PartNumber, r.Quantity, r.Source, r.UnitCost, r.ListPrice)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
