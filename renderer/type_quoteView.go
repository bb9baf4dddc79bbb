package renderer

import (
	"fmt"

	"github.com/arcsoftware/arcs"
	"github.com/shopspring/decimal"
)

// QuoteView is the render-ready form of a quote: every numeric field is
// already formatted, so templates only lay the values out.
type QuoteView struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	PONumber string `json:"po_number,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Created  string `json:"created_at"`

	Items []QuoteItemView `json:"items"`

	TotalPrice string `json:"total_price"`
	TotalCost  string `json:"total_cost"`
	Margin     string `json:"margin"`
}

// QuoteItemView is one formatted line-item row.
type QuoteItemView struct {
	No          int    `json:"no"`
	PartNumber  string `json:"part_number"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitCost    string `json:"unit_cost"`
	ListPrice   string `json:"list_price"`
	Margin      string `json:"margin"`
	Extended    string `json:"extended"`
	TaxExempt   string `json:"tax_exempt,omitempty"`
}

// NewQuoteView builds the render-ready view of a quote, recomputing every
// derived value.
func NewQuoteView(q *arcs.Quote) *QuoteView {
	v := &QuoteView{
		Name:       q.Name,
		ID:         q.ID,
		PONumber:   q.PONumber,
		Notes:      q.Notes,
		Created:    q.CreatedAt.Format("2006-01-02"),
		Items:      make([]QuoteItemView, 0, len(q.Items)),
		TotalPrice: q.TotalPrice().String(),
		TotalCost:  q.TotalCost().String(),
		Margin:     formatMargin(q.Margin()),
	}
	for i, it := range q.Items {
		iv := QuoteItemView{
			No:          i + 1,
			PartNumber:  it.PartNumber,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitCost:    it.UnitCost.String(),
			ListPrice:   it.ListPrice.String(),
			Margin:      formatMargin(it.Margin()),
			Extended:    it.ExtendedPrice().String(),
		}
		if it.TaxExempt {
			iv.TaxExempt = "TE"
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

func formatMargin(pct decimal.Decimal, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%s%%", pct.StringFixed(2))
}
