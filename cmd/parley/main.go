package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"parley/internal/config"
	"parley/internal/console"
	"parley/internal/core"
)

const version = "0.3"

func main() {
	cmd := &cli.Command{
		Name:    "parley",
		Usage:   "talk, search, run",
		Version: version + " - http://github.com/pkdindustries/parley",
		Flags:   config.GetFlags(),
		Action:  run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	fmt.Printf("%s\n", console.GetBanner(version))

	cfg := config.NewConfiguration(c)
	core.InitLogger(cfg.Chat.Verbose)

	sys, err := console.NewSystem(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return console.Run(ctx, cfg, sys, version)
}
