package exporter

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/arcsoftware/arcs"
	"github.com/arcsoftware/arcs/renderer"
)

// HTMLExporter writes a static standalone HTML page, for printing from a
// browser when the PDF engine is unavailable. The body is the markdown
// quote view converted with goldmark.
type HTMLExporter struct{}

func (e *HTMLExporter) Ext() string { return "html" }

func (e *HTMLExporter) Export(q *arcs.Quote, w io.Writer) error {
	md := renderer.QuoteMarkdown(renderer.NewQuoteView(q))

	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := converter.Convert([]byte(md), &body); err != nil {
		return exportError(fmt.Sprintf("cannot render quote %q", q.Name), err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n", html.EscapeString(q.Name))
	page.WriteString("<style>body{font-family:sans-serif;margin:2em}table{border-collapse:collapse}td,th{border:1px solid #999;padding:4px 8px}</style>\n")
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	if _, err := w.Write(page.Bytes()); err != nil {
		return exportError(fmt.Sprintf("cannot write html for quote %q", q.Name), err)
	}
	return nil
}
