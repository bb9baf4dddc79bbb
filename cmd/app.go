// Package cmd implements the CLI application to manage sales quotes.
package cmd

import (
	"flag"
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "quotes")
	c.Register(&listCmd{}, "quotes")
	c.Register(&showCmd{}, "quotes")
	c.Register(&setCmd{}, "quotes")
	c.Register(&deleteCmd{}, "quotes")
	c.Register(&fmtCmd{}, "quotes")

	c.Register(&addCmd{}, "items")
	c.Register(&editCmd{}, "items")
	c.Register(&rmCmd{}, "items")
	c.Register(&suppliersCmd{}, "items")

	c.Register(&exportCmd{}, "exchange")
	c.Register(&importCmd{}, "exchange")

	c.Register(&purchaseCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var quotesFile = flag.String("quotes-file", "", "Path to the quotes file (JSON). Defaults to data/quotes.json, or quotes.json in the user data directory.")
var defaultCurrency = flag.String("currency", "USD", "Currency code for new quotes and legacy stores without one.")

// config materializes the global flags into the explicit configuration the
// library layers take.
func config() arcs.Config {
	cfg := arcs.DefaultConfig()
	if *quotesFile != "" {
		cfg.QuotesFile = *quotesFile
		cfg.BundledFile = ""
	}
	if *defaultCurrency != "" {
		cfg.DefaultCurrency = *defaultCurrency
	}
	return cfg
}

// loadStore reads the quote store. A malformed file is surfaced as a warning
// and an empty store, so a damaged file never blocks the tool.
func loadStore(cfg arcs.Config) *arcs.Store {
	store, err := arcs.LoadStore(cfg)
	if err != nil {
		log.Printf("warning: %v, starting with an empty store", err)
	}
	return store
}

// printMarkdown renders markdown to the terminal through glamour, falling
// back to the raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
