package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/restaurant/session"
	"github.com/google/subcommands"
)

// stdin feeds the interactive session.
var stdin io.Reader = os.Stdin

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run the interactive ordering session (default)" }
func (*sessionCmd) Usage() string {
	return `rms session

Runs the interactive menu to place orders, cancel orders and view daily
collection reports. The session ends on option 4 or at the end of the input,
and both ledgers are saved.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, closeStore, err := OpenRestaurant()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening restaurant: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := session.New(r, stdin, stdout).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
