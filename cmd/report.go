package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/restaurant"
	"github.com/etnz/restaurant/date"
	"github.com/etnz/restaurant/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the collection report of a day" }
func (*reportCmd) Usage() string {
	return `rms report <yyyy-MM-dd>

Displays the collection report recorded for the given day.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: report expects exactly one date argument")
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(strings.TrimSpace(f.Arg(0)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid date format. Please enter the date in yyyy-MM-dd format.")
		return subcommands.ExitUsageError
	}

	r, closeStore, err := OpenRestaurant()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening restaurant: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var found *restaurant.CollectionReport
	if report, ok := r.Collections.Lookup(day); ok {
		found = &report
	}
	printMarkdown(renderer.Report(day.String(), found))
	return subcommands.ExitSuccess
}
