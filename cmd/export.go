package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
	"github.com/arcsoftware/arcs/exporter"
)

type exportCmd struct {
	output string
	format string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a quote to a PDF, HTML or JSON document" }
func (*exportCmd) Usage() string {
	return `arcs export <quote> [-o <path>] [-format pdf|html|json]

  Renders one quote to a document. Without -format the exporter is picked by
  probing the PDF engine; json writes the import/export quote document.
  The output path defaults to a safe file name derived from the quote name.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file path.")
	f.StringVar(&c.format, "format", "", "Force the output format (pdf, html, json).")
}

// pickExporter resolves the -format flag, defaulting to the capability probe.
func (c *exportCmd) pickExporter() (exporter.Exporter, error) {
	switch c.format {
	case "":
		return exporter.Detect(), nil
	case "pdf":
		return &exporter.PDFExporter{}, nil
	case "html":
		return &exporter.HTMLExporter{}, nil
	case "json":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", c.format)
	}
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one quote to export.")
		return subcommands.ExitUsageError
	}
	store := loadStore(config())
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	exp, err := c.pickExporter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ext := "json"
	if exp != nil {
		ext = exp.Ext()
	}
	path := c.output
	if path == "" {
		path = fmt.Sprintf("%s.%s", arcs.SafeFilename(q.Name), ext)
	}

	out, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if exp != nil {
		err = exp.Export(q, out)
	} else {
		err = arcs.ExportQuote(out, q)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Remove(path)
		return subcommands.ExitFailure
	}

	fmt.Printf("Exported quote %q to %s\n", q.Name, path)
	return subcommands.ExitSuccess
}
