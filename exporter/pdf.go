package exporter

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/arcsoftware/arcs"
)

// PDFExporter renders a quote to a tabular PDF: app header, quote name, PO
// line, one table row per line item and a bold total row.
type PDFExporter struct{}

func (e *PDFExporter) Ext() string { return "pdf" }

// probe renders an empty document in memory to verify the engine works.
func (e *PDFExporter) probe() error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	return pdf.Output(io.Discard)
}

func (e *PDFExporter) Export(q *arcs.Quote, w io.Writer) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(q.Name, true)
	pdf.SetMargins(72, 72, 72)
	pdf.SetAutoPageBreak(true, 72)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 20, "ARCS", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 18, q.Name, "", 1, "L", false, 0, "")
	if q.PONumber != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 14, fmt.Sprintf("PO#: %s", q.PONumber), "", 1, "L", false, 0, "")
	}
	pdf.Ln(10)

	headers := []string{"No", "Part", "Description", "Qty", "Unit", "Line"}
	widths := []float64{30, 85, 185, 40, 60, 68}
	aligns := []string{"C", "L", "L", "R", "R", "R"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(211, 211, 211)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 16, h, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, it := range q.Items {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			it.PartNumber,
			it.Description,
			it.Quantity.String(),
			it.ListPrice.String(),
			it.ExtendedPrice().String(),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 14, c, "1", 0, aligns[j], false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3], 16, "", "1", 0, "L", false, 0, "")
	pdf.CellFormat(widths[4], 16, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 16, q.TotalPrice().String(), "1", 1, "R", false, 0, "")

	if err := pdf.Error(); err != nil {
		return exportError(fmt.Sprintf("cannot render quote %q", q.Name), err)
	}
	if err := pdf.Output(w); err != nil {
		return exportError(fmt.Sprintf("cannot write pdf for quote %q", q.Name), err)
	}
	return nil
}
