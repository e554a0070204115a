package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/javiermolinar/atelier/internal/config"
	"github.com/javiermolinar/atelier/internal/ui"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		return err
	}

	app := ui.NewApp(cfg)
	return fang.Execute(
		context.Background(),
		app.Root(),
		fang.WithVersion(ui.Version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	)
}
