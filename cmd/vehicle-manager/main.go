package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"vehicle-manager/internal/cli"
	"vehicle-manager/internal/config"
	"vehicle-manager/internal/inventory"

	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("vehicle-manager", pflag.ContinueOnError)
	flags.String("base-url", "http://localhost:8080", "inventory service base URL")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Uint("geohash-precision", 7, "geohash characters shown in tables")
	jsonOutput := flags.Bool("json", false, "print JSON instead of a table")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, cli.Usage+"\nflags:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Setup structured JSON logging; stdout carries command output
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	manager := inventory.NewManager(cfg.BaseURL)
	app := cli.New(manager, os.Stdout, cli.Options{
		JSON:             *jsonOutput,
		GeohashPrecision: cfg.GeohashPrecision,
	})

	if err := app.Run(context.Background(), flags.Args()); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			flags.Usage()
			os.Exit(2)
		}
		slog.Error("Command failed", "base_url", cfg.BaseURL, "error", err)
		os.Exit(1)
	}
}
