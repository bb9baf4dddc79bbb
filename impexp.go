package arcs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"
)

// this file contains functions to handle the single-quote import/export
// format: one quote as an indented JSON object, importable back into a store.

// ExportQuote writes a single quote to 'w' in the import/export format.
func ExportQuote(w io.Writer, q *Quote) error {
	raw, err := encodeQuote(q)
	if err != nil {
		return fmt.Errorf("cannot marshal quote %q: %w", q.ID, err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "    "); err != nil {
		return fmt.Errorf("cannot indent quote %q: %w", q.ID, err)
	}
	indented.WriteByte('\n')
	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("cannot write quote: %w", err)
	}
	return nil
}

// ImportQuote reads a single quote from 'r'.
//
// The payload must be a JSON object carrying an items field, the check the
// desktop application applies before accepting a file.
func ImportQuote(r io.Reader, currency string) (*Quote, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, parseErrorf(err, "not a valid quote JSON")
	}
	if _, ok := probe["items"]; !ok {
		return nil, parseErrorf(nil, "file does not appear to be a valid quote (no items field)")
	}

	var js jquote
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, parseErrorf(err, "not a valid quote JSON")
	}
	q, err := decodeQuote(js, currency)
	if err != nil {
		return nil, parseErrorf(err, "invalid quote")
	}
	return q, nil
}

// ImportInto adds an imported quote to the store. A colliding id is
// regenerated, and the quote name is re-normalized from its metadata.
func ImportInto(store *Store, q *Quote) error {
	if q.ID == "" || store.Get(q.ID) != nil {
		q.ID = store.FreshID()
	}
	q.Name = NormalizeQuoteName(q)
	return store.Add(q)
}

// NormalizeQuoteName derives the display name from the quote metadata:
// "ARCS <created date>", with a " [PO:<po>]" suffix when a PO number is set.
func NormalizeQuoteName(q *Quote) string {
	day := q.CreatedAt
	if day.IsZero() {
		day = time.Now().UTC()
	}
	name := fmt.Sprintf("ARCS %s", day.Format("2006-01-02"))
	if q.PONumber != "" {
		name = fmt.Sprintf("%s [PO:%s]", name, q.PONumber)
	}
	return name
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SafeFilename turns a quote name into a portable file name.
func SafeFilename(name string) string {
	const maxLen = 120
	fname := unsafeFilenameChars.ReplaceAllString(name, "_")
	if len(fname) > maxLen {
		fname = fname[:maxLen]
	}
	return fname
}
