package arcs

import "testing"

func TestNewPurchaseSummary_Aggregation(t *testing.T) {
	q := NewQuote("ARCS 2025-08-01", "USD")
	q.PONumber = "PO-7"
	items := []LineItem{
		item("WDG-7", 2, 10, 20, "acme"),
		item("BRK-2", 1, 5, 8, "initech"),
		// same part and source as the first row: quantities add up, the
		// cheaper prices win
		item("WDG-7", 3, 9, 21, "acme"),
		// same part, different source: stays a separate row
		item("WDG-7", 1, 11, 19, "initech"),
	}
	for _, it := range items {
		if err := q.AddItem(it); err != nil {
			t.Fatalf("AddItem() returned an unexpected error: %v", err)
		}
	}

	s := NewPurchaseSummary(q)
	if s.Quote != q.Name || s.PONumber != "PO-7" {
		t.Errorf("summary header = %q/%q, want %q/PO-7", s.Quote, s.PONumber, q.Name)
	}
	if len(s.Parts) != 3 {
		t.Fatalf("len(Parts) = %d, want 3", len(s.Parts))
	}

	// sorted by part then source
	if s.Parts[0].PartNumber != "BRK-2" {
		t.Errorf("Parts[0] = %s, want BRK-2", s.Parts[0].PartNumber)
	}
	wdgAcme := s.Parts[1]
	if wdgAcme.PartNumber != "WDG-7" || wdgAcme.Source != "acme" {
		t.Fatalf("Parts[1] = %s/%s, want WDG-7/acme", wdgAcme.PartNumber, wdgAcme.Source)
	}
	if !wdgAcme.Quantity.Equal(Q(5)) {
		t.Errorf("aggregated quantity = %s, want 5", wdgAcme.Quantity)
	}
	if !wdgAcme.UnitCost.Equal(M(9, "USD")) {
		t.Errorf("aggregated unit cost = %s, want the lowest seen (9)", wdgAcme.UnitCost)
	}
	if !wdgAcme.ListPrice.Equal(M(20, "USD")) {
		t.Errorf("aggregated list price = %s, want the lowest seen (20)", wdgAcme.ListPrice)
	}
}

func TestNewPurchaseSummary_UnknownSource(t *testing.T) {
	q := NewQuote("", "USD")
	if err := q.AddItem(item("", 1, 1, 2, "  ")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}
	s := NewPurchaseSummary(q)
	if len(s.Parts) != 1 {
		t.Fatalf("len(Parts) = %d, want 1", len(s.Parts))
	}
	if s.Parts[0].PartNumber != unknownSource || s.Parts[0].Source != unknownSource {
		t.Errorf("blank part/source = %s/%s, want placeholders", s.Parts[0].PartNumber, s.Parts[0].Source)
	}
}

func TestPurchaseSummaries_StoreOrder(t *testing.T) {
	s := NewStore()
	for _, name := range []string{"first", "second"} {
		q := NewQuote(name, "USD")
		q.ID = name
		if err := s.Add(q); err != nil {
			t.Fatalf("Add() returned an unexpected error: %v", err)
		}
	}
	summaries := PurchaseSummaries(s)
	if len(summaries) != 2 || summaries[0].Quote != "first" || summaries[1].Quote != "second" {
		t.Errorf("PurchaseSummaries() order = %v", summaries)
	}
}
