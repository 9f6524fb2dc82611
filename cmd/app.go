// Package cmd implements the rms command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/restaurant"
	"github.com/etnz/restaurant/sqlite"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "")

	c.Register(&menuCmd{}, "reports")
	c.Register(&ordersCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&closeDayCmd{}, "collections")

	c.Register(&topicCmd{}, "help")
}

// Config holds the application settings. Defaults come from the environment,
// flags override them.
type Config struct {
	MenuFile   string `env:"RMS_MENU_FILE" envDefault:"menu.txt"`
	DataDir    string `env:"RMS_DATA_DIR" envDefault:"."`
	Store      string `env:"RMS_STORE" envDefault:"file"`
	SQLitePath string `env:"RMS_SQLITE_PATH" envDefault:"rms.db"`
	Currency   string `env:"RMS_CURRENCY" envDefault:"USD"`
	Unresolved string `env:"RMS_UNRESOLVED" envDefault:"drop"`
	Plain      bool   `env:"RMS_PLAIN"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var config Config

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// LoadConfig reads the environment, after loading a .env file from the
// working directory if there is one.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse environment: %w", err)
	}
	return c, nil
}

// RegisterFlags binds the global flags to the application configuration,
// using c for their defaults.
func RegisterFlags(f *flag.FlagSet, c Config) {
	config = c
	f.StringVar(&config.MenuFile, "menu-file", c.MenuFile, "Path to the menu file (id,name,price lines)")
	f.StringVar(&config.DataDir, "data-dir", c.DataDir, "Folder of the ledger snapshots when -store=file")
	f.StringVar(&config.Store, "store", c.Store, "Snapshot store: file or sqlite")
	f.StringVar(&config.SQLitePath, "sqlite-path", c.SQLitePath, "Path to the SQLite database when -store=sqlite")
	f.StringVar(&config.Currency, "currency", c.Currency, "Currency of the menu prices")
	f.StringVar(&config.Unresolved, "unresolved", c.Unresolved, "What to do with unknown item ids: drop or reject")
	f.BoolVar(&config.Plain, "plain", c.Plain, "Print markdown as is, without terminal rendering")
}

// OpenStore opens the configured snapshot store. The returned function closes it.
func OpenStore() (restaurant.Store, func() error, error) {
	switch config.Store {
	case "file":
		return restaurant.FileStore{Dir: config.DataDir}, func() error { return nil }, nil
	case "sqlite":
		s, err := sqlite.Open(config.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q, want file or sqlite", config.Store)
	}
}

// OpenRestaurant opens the store and loads the menu and both ledgers.
func OpenRestaurant() (*restaurant.Restaurant, func() error, error) {
	policy, err := restaurant.ParseUnresolvedPolicy(config.Unresolved)
	if err != nil {
		return nil, nil, err
	}
	store, closeStore, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}
	r := restaurant.Open(restaurant.Options{
		MenuFile:   config.MenuFile,
		Store:      store,
		Currency:   config.Currency,
		Unresolved: policy,
	})
	return r, closeStore, nil
}

// printMarkdown renders markdown for the terminal, or prints it as is with -plain.
func printMarkdown(md string) {
	if config.Plain {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
