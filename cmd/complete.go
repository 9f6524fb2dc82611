package cmd

import (
	"flag"

	"github.com/etnz/restaurant/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors gives completions for flag values, by flag name.
var flagPredictors = map[string]complete.Predictor{
	"menu-file":   predict.Files("*.txt"),
	"data-dir":    predict.Dirs("*"),
	"sqlite-path": predict.Files("*.db"),
	"store":       predict.Set{"file", "sqlite"},
	"unresolved":  predict.Set{"drop", "reject"},
	"currency":    predict.Set{"USD", "EUR", "GBP"},
	"status":      predict.Set{"active", "cancelled"},
}

// Completion describes the commander's subcommands and flags for shell
// completion. Install it with COMP_INSTALL=1 rms.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		f := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(f)
		cc := &complete.Command{Flags: predictFlags(f)}
		if sub.Name() == "topic" {
			topics, _ := docs.GetAllTopics()
			cc.Args = predict.Set(append(topics, "readme"))
		}
		root.Sub[sub.Name()] = cc
	})
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		p, ok := flagPredictors[fl.Name]
		switch {
		case ok:
		case isBoolFlag(fl):
			p = predict.Nothing
		default:
			p = predict.Something
		}
		flags[fl.Name] = p
	})
	return flags
}

func isBoolFlag(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
