package main

import (
	"fmt"
	"os"

	"agmtrack/internal/cli"
	"agmtrack/internal/config"
	"agmtrack/internal/fixture"
	"agmtrack/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	seed := fixture.Default()
	if cfg.Fixture != "" {
		seed, err = fixture.Load(cfg.Fixture)
		if err != nil {
			return fmt.Errorf("loading fixture %s: %w", cfg.Fixture, err)
		}
	}

	app := cli.NewApp(store.New(seed), cfg)
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
