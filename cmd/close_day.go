package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/restaurant/date"
	"github.com/etnz/restaurant/renderer"
	"github.com/google/subcommands"
)

type closeDayCmd struct {
	day string
}

func (*closeDayCmd) Name() string     { return "close-day" }
func (*closeDayCmd) Synopsis() string { return "record the collection report of a day" }
func (*closeDayCmd) Usage() string {
	return `rms close-day [-d <yyyy-MM-dd>]

Sums the active orders placed on the day and records the total in the
collection ledger. Closing a day again replaces its report.
`
}

func (c *closeDayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "day to close")
}

func (c *closeDayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, closeStore, err := OpenRestaurant()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening restaurant: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	report, err := r.CloseDay(day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, renderer.CollectionReport(report))
	return subcommands.ExitSuccess
}
