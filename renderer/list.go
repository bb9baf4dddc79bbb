package renderer

import (
	"fmt"
	"strings"

	"github.com/arcsoftware/arcs"
)

// QuoteListMarkdown renders the one-line-per-quote listing of a store.
func QuoteListMarkdown(s *arcs.Store) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Quotes\n\n")
	if s.Len() == 0 {
		fmt.Fprintln(&b, "No saved quotes found.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Name | PO | Items | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for q := range s.Quotes() {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			shortID(q.ID),
			q.Name,
			q.PONumber,
			len(q.Items),
			q.TotalPrice(),
		)
	}
	return b.String()
}

// shortID keeps listings readable; Find accepts id prefixes.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
