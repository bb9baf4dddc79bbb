package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/arcsoftware/arcs/renderer"
)

const assistModel = "gemini-2.5-flash"

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "draft a customer-facing cover note for a quote with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `arcs assist <quote> [instructions...]

  Drafts a short customer-facing summary of the quote, suitable as a cover
  note for the exported document. Extra arguments are passed to the model as
  instructions. Requires Gemini credentials in the environment.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: expected a quote to summarize.")
		return subcommands.ExitUsageError
	}
	store := loadStore(config())
	q, err := store.Find(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	var prompt strings.Builder
	prompt.WriteString("Write a short, professional cover note for the following sales quote. ")
	prompt.WriteString("Mention the total and the number of line items; do not invent prices or parts.\n")
	if f.NArg() > 1 {
		fmt.Fprintf(&prompt, "Additional instructions: %s\n", strings.Join(f.Args()[1:], " "))
	}
	prompt.WriteString("\n")
	prompt.WriteString(renderer.QuoteMarkdown(renderer.NewQuoteView(q)))

	resp, err := client.Models.GenerateContent(ctx, assistModel, genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
