// Package main checks localization tables against fixed string capacities.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pavanmanishd/fixedcore/internal/config"
	"github.com/pavanmanishd/fixedcore/internal/tools/locfit"
)

func main() {
	cfg, err := locfit.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := locfit.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
