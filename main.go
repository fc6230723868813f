package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"

	"gridsplit/internal/applog"
	"gridsplit/internal/cli"
	"gridsplit/internal/config"
	"gridsplit/internal/tui"
	"gridsplit/ui"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applog.Init(applog.Options{Level: conf.Log.Level})

	cfg, err := cli.ParseFlags(conf)
	if err != nil {
		os.Exit(1) // ParseFlags already reported it
	}

	// No flags provided or help requested = use GUI
	if cfg == nil {
		if len(os.Args) > 1 {
			return // help was printed
		}
		a := app.NewWithID("com.gridsplit.gui")
		win := ui.BuildMainWindow(a, conf)
		win.ShowAndRun()
		return
	}

	// CLI mode
	if err := runCLI(conf, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCLI(conf config.Config, cfg *cli.RunnerConfig) error {
	s, err := cli.NewSession(*cfg)
	if err != nil {
		return err
	}

	// Let the user adjust the grid before anything is written
	if cfg.TUI {
		ok, err := tui.Run(s, cfg.MaxSplits)
		if err != nil {
			return fmt.Errorf("terminal dialog: %w", err)
		}
		if !ok {
			s.Confirm(false)
			fmt.Println("Grid split cancelled.")
			return nil
		}
	}

	layout, err := cli.Run(*cfg, s)
	if err != nil {
		return err
	}

	slog.Debug("layout written", slog.String("layout", layout.ID))
	cli.PrintLayout(layout)

	if cfg.SaveConfig {
		return cli.SaveDefaults(conf, *cfg, s)
	}
	return nil
}
