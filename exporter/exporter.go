// Package exporter renders quotes to printable documents.
//
// Two exporters exist: a structured PDF exporter and an HTML fallback meant
// to be opened in a browser for printing. Detect probes the PDF engine once
// at startup and picks the fallback only on probe failure, never as a retry
// after a real rendering error.
package exporter

import (
	"io"

	"github.com/arcsoftware/arcs"
)

// Exporter renders one quote to a single document.
type Exporter interface {
	// Export writes the rendered document for q to w.
	Export(q *arcs.Quote, w io.Writer) error
	// Ext returns the file extension of the produced documents, without dot.
	Ext() string
}

// Detect probes the PDF engine and returns the preferred exporter: PDF when
// the probe succeeds, HTML otherwise.
func Detect() Exporter {
	pdf := &PDFExporter{}
	if err := pdf.probe(); err != nil {
		return &HTMLExporter{}
	}
	return pdf
}

// exportErrorf wraps a rendering failure in the export error category.
func exportError(msg string, err error) error {
	return &arcs.Error{Kind: arcs.ErrExport, Msg: msg, Err: err}
}
