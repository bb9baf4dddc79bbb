package arcs

import (
	"sort"
	"strings"
)

// this file builds the purchasing view: per quote, line items aggregated by
// (part number, source), so the buyer sees one row per part and supplier.

// PurchaseRow is one aggregated part/supplier row of a purchasing summary.
type PurchaseRow struct {
	PartNumber string
	Source     string
	Quantity   Quantity
	// UnitCost and ListPrice keep the lowest value seen across the
	// aggregated lines.
	UnitCost  Money
	ListPrice Money
}

// PurchaseSummary is the purchasing view of a single quote.
type PurchaseSummary struct {
	Quote    string
	PONumber string
	Parts    []PurchaseRow
}

const unknownSource = "<unknown>"

// NewPurchaseSummary aggregates a quote's line items by part number and
// source. Rows are sorted by part number then source.
func NewPurchaseSummary(q *Quote) PurchaseSummary {
	type key struct{ part, source string }
	agg := make(map[key]*PurchaseRow)
	order := make([]key, 0, len(q.Items))

	for _, it := range q.Items {
		part := strings.TrimSpace(it.PartNumber)
		if part == "" {
			part = unknownSource
		}
		source := strings.TrimSpace(it.Source)
		if source == "" {
			source = unknownSource
		}
		k := key{part, source}
		row, ok := agg[k]
		if !ok {
			agg[k] = &PurchaseRow{
				PartNumber: part,
				Source:     source,
				Quantity:   it.Quantity,
				UnitCost:   it.UnitCost,
				ListPrice:  it.ListPrice,
			}
			order = append(order, k)
			continue
		}
		row.Quantity = row.Quantity.Add(it.Quantity)
		if it.UnitCost.LessThan(row.UnitCost) {
			row.UnitCost = it.UnitCost
		}
		if it.ListPrice.LessThan(row.ListPrice) {
			row.ListPrice = it.ListPrice
		}
	}

	rows := make([]PurchaseRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, *agg[k])
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PartNumber != rows[j].PartNumber {
			return rows[i].PartNumber < rows[j].PartNumber
		}
		return rows[i].Source < rows[j].Source
	})

	return PurchaseSummary{Quote: q.Name, PONumber: q.PONumber, Parts: rows}
}

// PurchaseSummaries builds the purchasing view of every quote in the store,
// in stored order.
func PurchaseSummaries(s *Store) []PurchaseSummary {
	summaries := make([]PurchaseSummary, 0, s.Len())
	for q := range s.Quotes() {
		summaries = append(summaries, NewPurchaseSummary(q))
	}
	return summaries
}
