package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/restaurant/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	cmd.RegisterFlags(flag.CommandLine, config)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Completion(commander, flag.CommandLine).Complete(name)

	flag.Parse()
	if flag.NArg() == 0 {
		// without a subcommand, run the interactive session.
		flag.CommandLine.Parse(append(os.Args[1:], "session"))
	}
	os.Exit(int(commander.Execute(context.Background())))
}
