package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gridsplit/internal/config"
	"gridsplit/internal/partition"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags(defaults config.Config) (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Columns:    defaults.Split.Columns,
		Rows:       defaults.Split.Rows,
		MaxSplits:  defaults.Split.Max,
		PageWidth:  defaults.Page.Width,
		PageHeight: defaults.Page.Height,
	}
	if cfg.MaxSplits < 1 {
		cfg.MaxSplits = partition.MaxSplits
	}

	var widths, heights string

	fs := flag.NewFlagSet("gridsplit", flag.ContinueOnError)

	// Grid flags
	fs.IntVar(&cfg.Columns, "cols", cfg.Columns, "Number of columns (vertical splits)")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "Number of columns (vertical splits)")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Number of rows (horizontal splits)")
	fs.StringVar(&widths, "widths", "", "Column widths in percent, comma separated")
	fs.StringVar(&heights, "heights", "", "Row heights in percent, comma separated")
	fs.Float64Var(&cfg.PageWidth, "page-width", cfg.PageWidth, "Page width in points")
	fs.Float64Var(&cfg.PageHeight, "page-height", cfg.PageHeight, "Page height in points")

	// Output flags
	fs.StringVar(&cfg.OutputYAML, "o", "", "Output layout YAML file")
	fs.StringVar(&cfg.OutputYAML, "output", "", "Output layout YAML file")
	fs.StringVar(&cfg.OutputCSV, "csv", "", "Output tile CSV file")
	fs.StringVar(&cfg.OutputTXT, "txt", "", "Output text summary file")
	fs.StringVar(&cfg.Preview, "preview", "", "Output preview image (.svg or .png)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.SaveConfig, "save-config", false, "Store grid and page size as the new defaults")

	// Interactive terminal dialog
	fs.BoolVar(&cfg.TUI, "tui", false, "Edit the grid in an interactive terminal dialog")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var err error
	if cfg.Widths, err = parseShares(widths, "widths"); err != nil {
		return usageError(err)
	}
	if cfg.Heights, err = parseShares(heights, "heights"); err != nil {
		return usageError(err)
	}

	// Explicit shares fix the count
	if cfg.Widths != nil {
		if (set["cols"] || set["columns"]) && cfg.Columns != len(cfg.Widths) {
			return usageError(fmt.Errorf("-cols %d does not match %d widths", cfg.Columns, len(cfg.Widths)))
		}
		cfg.Columns = len(cfg.Widths)
	}
	if cfg.Heights != nil {
		if set["rows"] && cfg.Rows != len(cfg.Heights) {
			return usageError(fmt.Errorf("-rows %d does not match %d heights", cfg.Rows, len(cfg.Heights)))
		}
		cfg.Rows = len(cfg.Heights)
	}

	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	return cfg, nil
}

// usageError prints err followed by the usage text and returns it.
func usageError(err error) (*RunnerConfig, error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	PrintUsage()
	return nil, err
}

// parseShares parses a comma separated list of integer percentages.
// An empty string yields nil.
func parseShares(s, name string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	shares := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a whole percentage", name, p)
		}
		shares = append(shares, v)
	}
	return shares, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Grid Split Tool

Usage: gridsplit [flags]
       gridsplit help    (show this message)
       gridsplit         (no flags: open the desktop dialog)

GRID:
  -cols, -columns <n>      Number of equal columns, 1-20 (default: 1)
  -rows <n>                Number of equal rows, 1-20 (default: 1)
  -widths <a,b,...>        Manual column widths in percent, must sum to 100
  -heights <a,b,...>       Manual row heights in percent, must sum to 100
  -page-width <pt>         Page width in points (default: 595)
  -page-height <pt>        Page height in points (default: 842)

OUTPUT:
  -o, -output <file>       Save layout as YAML
  -csv <file>              Append tile crops to CSV
  -txt <file>              Save text summary
  -preview <file>          Save grid preview (.svg or .png)
  -v, -verbose             Verbose output
  -save-config             Store -cols/-rows/-page-* as defaults in the config file

INTERACTIVE:
  -tui                     Edit the grid in the terminal before saving

EXAMPLES:
  # Split into 2 columns and 2 rows
  gridsplit -cols 2 -rows 2 -o layout.yaml

  # Uneven columns for a booklet scan with a gutter
  gridsplit -widths 48,4,48 -preview grid.svg

  # Start from 3 columns and fine-tune in the terminal
  gridsplit -cols 3 -tui -o layout.yaml

`)
}
