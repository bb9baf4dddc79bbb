package arcs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The quotes file is a single pretty-printed JSON array of quote objects,
// the format the desktop application reads and writes. Monetary fields are
// plain numbers in the quote's currency; stored line totals are never
// trusted: the extended prices are recomputed from quantity and prices on
// every read.

// jitem is the line item object read from the file using the json parser.
type jitem struct {
	PartNumber  string          `json:"part_number"`
	Description string          `json:"description"`
	Quantity    Quantity        `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	ListPrice   decimal.Decimal `json:"list_price"`
	Source      string          `json:"source"`
	TaxExempt   bool            `json:"tax_exempt,omitempty"`
	// line_total is accepted for compatibility and recomputed, never used.
	LineTotal decimal.Decimal `json:"line_total"`
}

// jsupplier mirrors the per-supplier settings object.
type jsupplier struct {
	TaxExempt bool `json:"tax_exempt"`
}

// jquote is the quote object read from the file using the json parser.
type jquote struct {
	ID        json.RawMessage      `json:"id"`
	Name      string               `json:"name"`
	PONumber  string               `json:"po_number"`
	Notes     string               `json:"notes"`
	Currency  string               `json:"currency"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
	Suppliers map[string]jsupplier `json:"suppliers"`
	Items     []jitem              `json:"items"`
}

// decodeID accepts both string ids and the numeric timestamp ids older
// versions of the desktop application wrote.
func decodeID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

// decodeTime parses a stored timestamp, tolerating the ISO variants the
// original wrote (with and without timezone offset).
func decodeTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// decodeQuote builds a Quote from its parsed json object. The currency
// defaults to 'currency' when the stored object carries none.
func decodeQuote(js jquote, currency string) (*Quote, error) {
	if js.Currency != "" {
		currency = js.Currency
	}
	q := &Quote{
		ID:        decodeID(js.ID),
		Name:      js.Name,
		PONumber:  js.PONumber,
		Notes:     js.Notes,
		Currency:  currency,
		CreatedAt: decodeTime(js.CreatedAt),
		UpdatedAt: decodeTime(js.UpdatedAt),
		Items:     make([]LineItem, 0, len(js.Items)),
	}
	if q.ID == "" {
		return nil, fmt.Errorf("quote %q has no id", js.Name)
	}
	for name, s := range js.Suppliers {
		if q.Suppliers == nil {
			q.Suppliers = make(map[string]Supplier)
		}
		q.Suppliers[name] = Supplier{TaxExempt: s.TaxExempt}
	}
	for _, ji := range js.Items {
		q.Items = append(q.Items, LineItem{
			PartNumber:  ji.PartNumber,
			Description: ji.Description,
			Quantity:    ji.Quantity,
			UnitCost:    M(ji.UnitCost, currency),
			ListPrice:   M(ji.ListPrice, currency),
			Source:      ji.Source,
			TaxExempt:   ji.TaxExempt,
		})
	}
	return q, nil
}

// DecodeStore decodes a whole quotes document from 'r'.
func DecodeStore(r io.Reader, currency string) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	var jquotes []jquote
	if err := json.Unmarshal(data, &jquotes); err != nil {
		return nil, parseErrorf(err, "not a json array of quotes")
	}

	store := NewStore()
	for _, js := range jquotes {
		q, err := decodeQuote(js, currency)
		if err != nil {
			return nil, parseErrorf(err, "invalid quote")
		}
		if err := store.Add(q); err != nil {
			return nil, parseErrorf(err, "invalid store")
		}
	}
	return store, nil
}

// encodeQuote marshals a single quote with a stable field order.
func encodeQuote(q *Quote) ([]byte, error) {
	items := make([]json.RawMessage, 0, len(q.Items))
	for _, it := range q.Items {
		var iw jsonObjectWriter
		iw.Append("part_number", it.PartNumber)
		iw.Append("description", it.Description)
		iw.Append("quantity", it.Quantity)
		iw.Append("unit_cost", it.UnitCost.Decimal())
		iw.Append("list_price", it.ListPrice.Decimal())
		iw.Append("source", it.Source)
		iw.Append("tax_exempt", it.TaxExempt)
		// line_total keeps the historical formula (quantity × unit cost) so
		// the desktop application displays the same numbers.
		iw.Append("line_total", it.ExtendedCost().Decimal())
		raw, err := iw.MarshalJSON()
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}

	var w jsonObjectWriter
	w.Append("id", q.ID)
	w.Append("name", q.Name)
	w.Optional("po_number", q.PONumber)
	w.Append("notes", q.Notes)
	w.Append("currency", q.Currency)
	w.Append("created_at", q.CreatedAt.UTC().Format(time.RFC3339Nano))
	w.Append("updated_at", q.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if len(q.Suppliers) > 0 {
		suppliers := make(map[string]jsupplier, len(q.Suppliers))
		for name, s := range q.Suppliers {
			suppliers[name] = jsupplier{TaxExempt: s.TaxExempt}
		}
		w.Append("suppliers", suppliers)
	}
	w.Append("items", items)
	return w.MarshalJSON()
}

// EncodeStore writes the whole store to 'w' as a pretty-printed JSON array,
// with a canonical field order inside each quote.
func EncodeStore(w io.Writer, store *Store) error {
	decimal.MarshalJSONWithoutQuotes = true

	raws := make([]json.RawMessage, 0, store.Len())
	for q := range store.Quotes() {
		raw, err := encodeQuote(q)
		if err != nil {
			return fmt.Errorf("cannot marshal quote %q: %w", q.ID, err)
		}
		raws = append(raws, raw)
	}

	compact, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("cannot marshal quotes: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", "    "); err != nil {
		return fmt.Errorf("cannot indent quotes: %w", err)
	}
	indented.WriteByte('\n')

	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write quotes: %w", err)
	}
	return nil
}
