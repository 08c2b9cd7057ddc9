package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formstyle/internal/cli"
	"github.com/goliatone/go-formstyle/pkg/renderers/tui"
)

func main() {
	cfg, err := cli.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	ctx := context.Background()
	driver := tui.NewSurveyDriver()

	if cfg.Interactive {
		cfg, err = cli.Complete(ctx, driver, cfg, cli.FormIDs)
		if err != nil {
			if errors.Is(err, cli.ErrAborted) {
				fmt.Fprintln(os.Stderr, "Aborted.")
				os.Exit(130)
			}
			log.Fatalf("Failed to complete options: %v", err)
		}
	}
	if cfg.Renderer == "" {
		cfg.Renderer = cli.Renderers[0]
	}

	runner := cli.Runner{Driver: driver, Stdout: os.Stdout}
	if err := runner.Run(ctx, cfg); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(130)
		}
		log.Fatalf("Failed to generate form: %v", err)
	}
	if cfg.Output != "" {
		fmt.Printf("Form written to %s\n", cfg.Output)
	}
}
