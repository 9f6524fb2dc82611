package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/restaurant/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the rms documentation" }
func (*topicCmd) Usage() string {
	return `rms topic [-list] [<topic>...]

Prints documentation topics: the menu file format, the ledgers, the
interactive session and the configuration. Without a topic, prints the readme
followed by the list of topics. "*" prints every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "only list the available topics")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	all, err := docs.GetAllTopics()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.list {
		fmt.Fprintln(stdout, strings.Join(all, "\n"))
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		readme, err := docs.GetTopic("readme")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(readme + "\n" + topicList(all))
		return subcommands.ExitSuccess
	}

	doc, err := docs.GetTopics(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available topics: %s\n", strings.Join(all, ", "))
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicList renders the topics as a markdown list.
func topicList(topics []string) string {
	var b strings.Builder
	b.WriteString("## Topics\n\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "- `rms topic %s`\n", t)
	}
	return b.String()
}
