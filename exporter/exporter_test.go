package exporter

import (
	"bytes"
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
			},
		},
	}
}

func TestDetect(t *testing.T) {
	if _, ok := Detect().(*PDFExporter); !ok {
		t.Errorf("Detect() = %T, want *PDFExporter", Detect())
	}
}

func TestPDFExporter(t *testing.T) {
	e := &PDFExporter{}
	if e.Ext() != "pdf" {
		t.Errorf("Ext() = %q, want pdf", e.Ext())
	}

	var buf bytes.Buffer
	if err := e.Export(quoteFixture(), &buf); err != nil {
		t.Fatalf("Export() returned an unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("Export() output does not start with %%PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestPDFExporter_NoItems(t *testing.T) {
	q := quoteFixture()
	q.Items = nil

	var buf bytes.Buffer
	if err := (&PDFExporter{}).Export(q, &buf); err != nil {
		t.Fatalf("Export() of an empty quote returned an unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Export() of an empty quote wrote nothing")
	}
}

func TestHTMLExporter(t *testing.T) {
	e := &HTMLExporter{}
	if e.Ext() != "html" {
		t.Errorf("Ext() = %q, want html", e.Ext())
	}

	var buf bytes.Buffer
	if err := e.Export(quoteFixture(), &buf); err != nil {
		t.Fatalf("Export() returned an unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>ARCS 2025-08-01</title>",
		"<table>",
		"WDG-7",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Export() output missing %q", want)
		}
	}
}
