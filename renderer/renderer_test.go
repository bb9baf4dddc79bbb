package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/arcsoftware/arcs"
)

func quoteFixture() *arcs.Quote {
	created := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)
	return &arcs.Quote{
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
		Name:      "ARCS 2025-08-01",
		PONumber:  "PO-1042",
		Notes:     "net 30",
		Currency:  "USD",
		CreatedAt: created,
		UpdatedAt: created,
		Items: []arcs.LineItem{
			{
				PartNumber:  "WDG-7",
				Description: "Widget",
				Quantity:    arcs.Q(4),
				UnitCost:    arcs.M(9.5, "USD"),
				ListPrice:   arcs.M(14.25, "USD"),
				Source:      "acme",
				TaxExempt:   true,
			},
			{
				PartNumber:  "BRK-2",
				Description: "Bracket",
				Quantity:    arcs.Q(2),
				UnitCost:    arcs.M(3, "USD"),
				ListPrice:   arcs.M(5, "USD"),
				Source:      "initech",
			},
		},
	}
}

func TestQuoteMarkdown(t *testing.T) {
	md := QuoteMarkdown(NewQuoteView(quoteFixture()))

	for _, want := range []string{
		"# ARCS 2025-08-01",
		"PO#: PO-1042",
		"> net 30",
		"| WDG-7 |",
		"| BRK-2 |",
		"| TE |",
		"**Total:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("QuoteMarkdown() missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("QuoteMarkdown() reported a template error:\n%s", md)
	}
}

func TestQuoteMarkdown_NoItems(t *testing.T) {
	q := quoteFixture()
	q.Items = nil
	md := QuoteMarkdown(NewQuoteView(q))
	if !strings.Contains(md, "(no line items)") {
		t.Errorf("QuoteMarkdown() without items missing placeholder:\n%s", md)
	}
}

func TestNewQuoteView_Margins(t *testing.T) {
	v := NewQuoteView(quoteFixture())
	if len(v.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(v.Items))
	}
	// (5 - 3) / 5 = 40%
	if v.Items[1].Margin != "40.00%" {
		t.Errorf("Items[1].Margin = %q, want 40.00%%", v.Items[1].Margin)
	}
	if v.Items[1].TaxExempt != "" {
		t.Errorf("Items[1].TaxExempt = %q, want empty", v.Items[1].TaxExempt)
	}
	q := quoteFixture()
	q.Items = nil
	if v := NewQuoteView(q); v.Margin != "0.00%" {
		t.Errorf("Margin with no items = %q, want 0.00%%", v.Margin)
	}
	// a costed line with no list price has no defined margin
	q.Items = []arcs.LineItem{{Quantity: arcs.Q(1), UnitCost: arcs.M(3, "USD"), ListPrice: arcs.M(0, "USD")}}
	if v := NewQuoteView(q); v.Items[0].Margin != "N/A" {
		t.Errorf("Margin with zero list price = %q, want N/A", v.Items[0].Margin)
	}
}

func TestQuoteListMarkdown(t *testing.T) {
	s := arcs.NewStore()
	md := QuoteListMarkdown(s)
	if !strings.Contains(md, "No saved quotes found.") {
		t.Errorf("QuoteListMarkdown() on empty store = %q", md)
	}

	if err := s.Add(quoteFixture()); err != nil {
		t.Fatalf("Add() returned an unexpected error: %v", err)
	}
	md = QuoteListMarkdown(s)
	for _, want := range []string{"| 0f8fad5b |", "ARCS 2025-08-01", "PO-1042", "| 2 |"} {
		if !strings.Contains(md, want) {
			t.Errorf("QuoteListMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestPurchaseMarkdown(t *testing.T) {
	md := PurchaseMarkdown(nil)
	if !strings.Contains(md, "No quotes to show.") {
		t.Errorf("PurchaseMarkdown(nil) = %q", md)
	}

	summaries := []arcs.PurchaseSummary{arcs.NewPurchaseSummary(quoteFixture())}
	md = PurchaseMarkdown(summaries)
	for _, want := range []string{"## ARCS 2025-08-01 [PO: PO-1042]", "| BRK-2 |", "initech"} {
		if !strings.Contains(md, want) {
			t.Errorf("PurchaseMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
