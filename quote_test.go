package arcs

import (
	"errors"
	"testing"
)

func item(part string, qty int, cost, list float64, source string) LineItem {
	return LineItem{
		PartNumber: part,
		Quantity:   Q(qty),
		UnitCost:   M(cost, "USD"),
		ListPrice:  M(list, "USD"),
		Source:     source,
	}
}

func TestQuote_Totals(t *testing.T) {
	q := NewQuote("", "USD")
	if err := q.AddItem(item("A-1", 2, 10, 15, "acme")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}
	if err := q.AddItem(item("B-2", 3, 1.5, 2.5, "initech")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}

	// total price = 2×15 + 3×2.5 = 37.5
	if got, want := q.TotalPrice(), M(37.5, "USD"); !got.Equal(want) {
		t.Errorf("TotalPrice() = %s, want %s", got, want)
	}
	// total cost = 2×10 + 3×1.5 = 24.5
	if got, want := q.TotalCost(), M(24.5, "USD"); !got.Equal(want) {
		t.Errorf("TotalCost() = %s, want %s", got, want)
	}
}

func TestQuote_ExtendedPrice(t *testing.T) {
	testCases := []struct {
		name string
		qty  int
		list float64
		want float64
	}{
		{name: "simple", qty: 4, list: 2.5, want: 10},
		{name: "zero quantity", qty: 0, list: 99.99, want: 0},
		{name: "zero price", qty: 10, list: 0, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			it := item("P", tc.qty, 0, tc.list, "")
			if got, want := it.ExtendedPrice(), M(tc.want, "USD"); !got.Equal(want) {
				t.Errorf("ExtendedPrice() = %s, want %s", got, want)
			}
		})
	}
}

func TestQuote_AddItem_Validation(t *testing.T) {
	testCases := []struct {
		name string
		it   LineItem
	}{
		{name: "negative quantity", it: item("P", -1, 1, 2, "")},
		{name: "negative unit cost", it: item("P", 1, -1, 2, "")},
		{name: "negative list price", it: item("P", 1, 1, -2, "")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewQuote("", "USD")
			if err := q.AddItem(item("OK", 1, 1, 2, "")); err != nil {
				t.Fatalf("AddItem() returned an unexpected error: %v", err)
			}

			err := q.AddItem(tc.it)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("AddItem() error = %v, want a validation error", err)
			}
			// the quote must be left unmodified
			if len(q.Items) != 1 {
				t.Errorf("AddItem() modified the quote: %d items, want 1", len(q.Items))
			}
		})
	}
}

func TestQuote_UpdateItem_Validation(t *testing.T) {
	q := NewQuote("", "USD")
	if err := q.AddItem(item("OK", 1, 1, 2, "")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}

	if err := q.UpdateItem(0, item("P", -1, 1, 2, "")); !errors.Is(err, ErrValidation) {
		t.Fatalf("UpdateItem() error = %v, want a validation error", err)
	}
	if q.Items[0].PartNumber != "OK" {
		t.Errorf("UpdateItem() modified the quote on a rejected item")
	}

	if err := q.UpdateItem(5, item("P", 1, 1, 2, "")); !errors.Is(err, ErrValidation) {
		t.Fatalf("UpdateItem() out of range error = %v, want a validation error", err)
	}
}

func TestQuote_RemoveItem(t *testing.T) {
	q := NewQuote("", "USD")
	for _, part := range []string{"A", "B", "C"} {
		if err := q.AddItem(item(part, 1, 1, 2, "")); err != nil {
			t.Fatalf("AddItem() returned an unexpected error: %v", err)
		}
	}
	if err := q.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem() returned an unexpected error: %v", err)
	}
	if len(q.Items) != 2 || q.Items[0].PartNumber != "A" || q.Items[1].PartNumber != "C" {
		t.Errorf("RemoveItem(1) left %v, want [A C]", q.Items)
	}
	if err := q.RemoveItem(7); !errors.Is(err, ErrValidation) {
		t.Errorf("RemoveItem() out of range error = %v, want a validation error", err)
	}
}

func TestQuote_Margin(t *testing.T) {
	q := NewQuote("", "USD")
	if err := q.AddItem(item("A", 1, 75, 100, "")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}
	pct, ok := q.Margin()
	if !ok {
		t.Fatalf("Margin() not defined, want 25%%")
	}
	if pct.StringFixed(2) != "25.00" {
		t.Errorf("Margin() = %s, want 25.00", pct.StringFixed(2))
	}

	// zero list price with a cost has no defined margin
	it := item("B", 1, 10, 0, "")
	if _, ok := it.Margin(); ok {
		t.Errorf("Margin() defined for zero list price with non-zero cost")
	}
	// 0/0 is 0%
	zero := item("C", 1, 0, 0, "")
	if pct, ok := zero.Margin(); !ok || !pct.IsZero() {
		t.Errorf("Margin() of 0/0 = %s,%v, want 0,true", pct, ok)
	}
}

func TestQuote_SupplierExemption(t *testing.T) {
	q := NewQuote("", "USD")
	if err := q.AddItem(item("A", 1, 1, 2, "acme")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}
	if err := q.AddItem(item("B", 1, 1, 2, "initech")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}

	q.SetSupplierExemption("acme", true)

	if !q.Items[0].TaxExempt {
		t.Errorf("SetSupplierExemption did not mark the acme item")
	}
	if q.Items[1].TaxExempt {
		t.Errorf("SetSupplierExemption marked an item from another supplier")
	}

	// a new item from a known supplier inherits the flag
	if err := q.AddItem(item("C", 1, 1, 2, "acme")); err != nil {
		t.Fatalf("AddItem() returned an unexpected error: %v", err)
	}
	if !q.Items[2].TaxExempt {
		t.Errorf("AddItem did not inherit the supplier exemption")
	}

	want := []string{"acme", "initech"}
	got := q.SupplierNames()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("SupplierNames() = %v, want %v", got, want)
	}
}
