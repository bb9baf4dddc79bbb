package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arcsoftware/arcs"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the quotes file" }
func (*queryCmd) Usage() string {
	return `arcs query <jsonpath>

  Evaluates a JSONPath expression against the persisted form of the store
  and prints the result as JSON, e.g.

    arcs query '$[*].name'
    arcs query "$[0].items[*].part_number"
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	store := loadStore(config())
	out, err := arcs.Query(store, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}
