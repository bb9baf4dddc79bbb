package arcs

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one part/quantity/price row within a quote.
type LineItem struct {
	PartNumber  string
	Description string
	Quantity    Quantity
	UnitCost    Money
	ListPrice   Money
	Source      string
	TaxExempt   bool
}

// ExtendedPrice returns quantity × list price for this line.
func (it LineItem) ExtendedPrice() Money { return it.ListPrice.Mul(it.Quantity) }

// ExtendedCost returns quantity × unit cost for this line.
func (it LineItem) ExtendedCost() Money { return it.UnitCost.Mul(it.Quantity) }

// Margin returns the line margin in percent, (list - cost) / list × 100.
func (it LineItem) Margin() (decimal.Decimal, bool) {
	return MarginPercent(it.UnitCost, it.ListPrice)
}

// Validate checks the line item fields. Quantity and both prices must be
// non-negative.
func (it LineItem) Validate() error {
	if it.Quantity.IsNegative() {
		return validationf("quantity %s is negative", it.Quantity)
	}
	if it.UnitCost.IsNegative() {
		return validationf("unit cost %s is negative", it.UnitCost)
	}
	if it.ListPrice.IsNegative() {
		return validationf("list price %s is negative", it.ListPrice)
	}
	return nil
}

// Supplier holds supplier-level settings shared by a quote's line items.
type Supplier struct {
	TaxExempt bool
}

// Quote is a customer-facing price proposal: header metadata plus an ordered
// list of line items. Totals are always derived from the items, never stored.
type Quote struct {
	ID        string
	Name      string
	PONumber  string
	Notes     string
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Items     []LineItem
	Suppliers map[string]Supplier
}

// NewQuote creates an empty quote with a fresh id.
// An empty name defaults to "ARCS <today>".
func NewQuote(name, currency string) *Quote {
	now := time.Now().UTC()
	if name == "" {
		name = fmt.Sprintf("ARCS %s", now.Format("2006-01-02"))
	}
	return &Quote{
		ID:        uuid.NewString(),
		Name:      name,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     make([]LineItem, 0),
	}
}

func (q *Quote) touch() { q.UpdatedAt = time.Now().UTC() }

// AddItem validates and appends a line item.
// On validation failure the quote is left unmodified.
func (q *Quote) AddItem(it LineItem) error {
	if err := it.Validate(); err != nil {
		return err
	}
	q.applySupplier(&it)
	q.Items = append(q.Items, it)
	q.touch()
	return nil
}

// UpdateItem validates and replaces the line item at index i.
func (q *Quote) UpdateItem(i int, it LineItem) error {
	if i < 0 || i >= len(q.Items) {
		return validationf("no line item at index %d", i)
	}
	if err := it.Validate(); err != nil {
		return err
	}
	q.Items[i] = it
	q.touch()
	return nil
}

// RemoveItem removes the line item at index i, preserving the order of the
// remaining items.
func (q *Quote) RemoveItem(i int) error {
	if i < 0 || i >= len(q.Items) {
		return validationf("no line item at index %d", i)
	}
	q.Items = append(q.Items[:i], q.Items[i+1:]...)
	q.touch()
	return nil
}

// TotalPrice returns the sum of extended prices over all line items.
func (q *Quote) TotalPrice() Money {
	total := M(0, q.Currency)
	for _, it := range q.Items {
		total = total.Add(it.ExtendedPrice())
	}
	return total
}

// TotalCost returns the sum of extended costs, for margin reporting.
func (q *Quote) TotalCost() Money {
	total := M(0, q.Currency)
	for _, it := range q.Items {
		total = total.Add(it.ExtendedCost())
	}
	return total
}

// Margin returns the overall quote margin in percent.
func (q *Quote) Margin() (decimal.Decimal, bool) {
	return MarginPercent(q.TotalCost(), q.TotalPrice())
}

// SetSupplierExemption records the tax-exempt flag for a supplier and pushes
// it down to every line item sourced from it.
func (q *Quote) SetSupplierExemption(name string, exempt bool) {
	if q.Suppliers == nil {
		q.Suppliers = make(map[string]Supplier)
	}
	q.Suppliers[name] = Supplier{TaxExempt: exempt}
	for i := range q.Items {
		if q.Items[i].Source == name {
			q.Items[i].TaxExempt = exempt
		}
	}
	q.touch()
}

// applySupplier sets the item tax flag from a known supplier, the way the
// part dialog pre-checks the box when the source is recognized.
func (q *Quote) applySupplier(it *LineItem) {
	if s, ok := q.Suppliers[it.Source]; ok {
		it.TaxExempt = s.TaxExempt
	}
}

// SupplierNames returns the distinct sources appearing on line items or in
// the supplier settings, sorted.
func (q *Quote) SupplierNames() []string {
	seen := make(map[string]bool)
	for _, it := range q.Items {
		if it.Source != "" {
			seen[it.Source] = true
		}
	}
	for name := range q.Suppliers {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two quotes carry the same data, comparing monetary
// values by amount rather than by internal representation.
func (q *Quote) Equal(o *Quote) bool {
	if q == nil || o == nil {
		return q == o
	}
	if q.ID != o.ID || q.Name != o.Name || q.PONumber != o.PONumber ||
		q.Notes != o.Notes || q.Currency != o.Currency ||
		!q.CreatedAt.Equal(o.CreatedAt) || len(q.Items) != len(o.Items) {
		return false
	}
	for i := range q.Items {
		a, b := q.Items[i], o.Items[i]
		if a.PartNumber != b.PartNumber || a.Description != b.Description ||
			a.Source != b.Source || a.TaxExempt != b.TaxExempt ||
			!a.Quantity.Equal(b.Quantity) ||
			!a.UnitCost.Equal(b.UnitCost) || !a.ListPrice.Equal(b.ListPrice) {
			return false
		}
	}
	if len(q.Suppliers) != len(o.Suppliers) {
		return false
	}
	for name, s := range q.Suppliers {
		if o.Suppliers[name] != s {
			return false
		}
	}
	return true
}
