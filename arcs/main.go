package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/arcsoftware/arcs/cmd"
)

// completion describes the command tree for shell completion. It must run
// before flag parsing: in completion mode it prints candidates and exits.
func completion() {
	sub := map[string]*complete.Command{
		"new":       {Flags: map[string]complete.Predictor{"name": predict.Something, "po": predict.Something}},
		"list":      {},
		"show":      {},
		"set":       {Flags: map[string]complete.Predictor{"po": predict.Something, "notes": predict.Something, "rename": predict.Nothing}},
		"delete":    {},
		"fmt":       {},
		"add":       {Flags: map[string]complete.Predictor{"part": predict.Something, "desc": predict.Something, "qty": predict.Something, "cost": predict.Something, "list": predict.Something, "source": predict.Something, "tax-exempt": predict.Nothing}},
		"edit":      {Flags: map[string]complete.Predictor{"i": predict.Something, "part": predict.Something, "desc": predict.Something, "qty": predict.Something, "cost": predict.Something, "list": predict.Something, "source": predict.Something, "tax-exempt": predict.Something}},
		"rm":        {Flags: map[string]complete.Predictor{"i": predict.Something}},
		"suppliers": {Flags: map[string]complete.Predictor{"exempt": predict.Something, "clear": predict.Something}},
		"export":    {Flags: map[string]complete.Predictor{"o": predict.Files("*"), "format": predict.Set{"pdf", "html", "json"}}},
		"import":    {Args: predict.Files("*.json")},
		"purchase":  {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
		"query":     {},
		"assist":    {},
		"topic":     {},
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"quotes-file": predict.Files("*.json"),
			"currency":    predict.Set{"USD", "EUR", "GBP", "CAD"},
		},
	}
	root.Complete("arcs")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
