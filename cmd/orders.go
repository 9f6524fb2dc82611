package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/restaurant"
	"github.com/etnz/restaurant/renderer"
	"github.com/google/subcommands"
)

type ordersCmd struct {
	status string
	query  string
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list orders" }
func (*ordersCmd) Usage() string {
	return `rms orders [-status active|cancelled] [-q <jsonpath>]

Lists the orders of the order ledger.

With -q, the orders are queried as a JSON array using a JSONPath expression,
and the result is printed as JSON. For instance:

  rms orders -q '$[?(@.status=="Active")].total'
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "status", "", "only list orders with this status: active or cancelled")
	f.StringVar(&c.query, "q", "", "JSONPath query on the orders")
}

func (c *ordersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, closeStore, err := OpenRestaurant()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening restaurant: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	accept := func(*restaurant.Order) bool { return true }
	if c.status != "" {
		s, err := restaurant.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		accept = restaurant.WithStatus(s)
	}

	orders := slices.Collect(r.Orders.All(accept))

	if c.query != "" {
		result, err := restaurant.QueryOrders(orders, c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying orders: %v\n", err)
			return subcommands.ExitFailure
		}
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(out))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Orders(orders))
	return subcommands.ExitSuccess
}
