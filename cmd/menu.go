package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/restaurant"
	"github.com/etnz/restaurant/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "display the menu" }
func (*menuCmd) Usage() string {
	return `rms menu

Displays the menu items loaded from the menu file.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := restaurant.LoadCatalog(config.MenuFile, config.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading menu: %v\n", err)
		if catalog.Len() == 0 {
			return subcommands.ExitFailure
		}
	}
	printMarkdown(renderer.Menu(catalog))
	return subcommands.ExitSuccess
}
