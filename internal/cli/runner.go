package cli

import (
	"fmt"

	"gridsplit/internal/config"
	"gridsplit/internal/export"
	"gridsplit/internal/format"
	"gridsplit/internal/model"
	"gridsplit/internal/partition"
	"gridsplit/internal/session"
)

// RunnerConfig holds all CLI options for a layout run.
type RunnerConfig struct {
	// Grid
	Columns    int
	Rows       int
	Widths     []int // manual column shares; nil = even
	Heights    []int // manual row shares; nil = even
	MaxSplits  int
	PageWidth  float64
	PageHeight float64

	// Output
	OutputYAML string
	OutputCSV  string
	OutputTXT  string
	Preview    string
	Verbose    bool
	SaveConfig bool

	TUI bool
}

// Validate checks counts and page size. Share sums are checked when the
// shares are loaded into the partition model.
func (c *RunnerConfig) Validate() error {
	limit := c.MaxSplits
	if limit < 1 || limit > partition.MaxSplits {
		limit = partition.MaxSplits
	}
	if c.Columns < 1 || c.Columns > limit {
		return fmt.Errorf("columns must be between 1 and %d, got %d", limit, c.Columns)
	}
	if c.Rows < 1 || c.Rows > limit {
		return fmt.Errorf("rows must be between 1 and %d, got %d", limit, c.Rows)
	}
	if c.PageWidth < 0 || c.PageHeight < 0 {
		return fmt.Errorf("page size must not be negative, got %gx%g", c.PageWidth, c.PageHeight)
	}
	return nil
}

// NewSession builds a dialog session with the grid described by cfg applied.
func NewSession(cfg RunnerConfig) (*session.Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := session.New(cfg.PageWidth, cfg.PageHeight)
	s.MaxSplits = cfg.MaxSplits
	axes := []struct {
		dir    partition.Direction
		count  int
		shares []int
	}{
		{partition.Vertical, cfg.Columns, cfg.Widths},
		{partition.Horizontal, cfg.Rows, cfg.Heights},
	}
	for _, ax := range axes {
		st := session.AxisState{Count: ax.count, Even: ax.shares == nil, Shares: ax.shares}
		if err := s.Restore(ax.dir, st); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Run confirms the session and writes every requested output.
func Run(cfg RunnerConfig, s *session.Session) (*model.Layout, error) {
	layout := s.Confirm(true)

	if cfg.Verbose {
		for _, d := range partition.Directions {
			fmt.Println(format.FormatAxis(d, s.Model.Axis(d)))
		}
	}

	if err := WriteOutputs(cfg, layout); err != nil {
		return layout, err
	}
	return layout, nil
}

// WriteOutputs saves layout to every output path set in cfg.
func WriteOutputs(cfg RunnerConfig, layout *model.Layout) error {
	outputs := []struct {
		path  string
		write func(string) error
	}{
		{cfg.OutputYAML, func(p string) error { return export.WriteYAML(p, layout) }},
		{cfg.OutputCSV, func(p string) error { return export.WriteCSV(p, []model.Layout{*layout}) }},
		{cfg.OutputTXT, func(p string) error { return export.WriteTXT(p, []model.Layout{*layout}) }},
		{cfg.Preview, func(p string) error { return export.SavePreview(export.PreviewOptions{Path: p, Layout: layout}) }},
	}

	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := export.EnsureDir(o.path); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := o.write(o.path); err != nil {
			return fmt.Errorf("save %s: %w", o.path, err)
		}
		if cfg.Verbose {
			fmt.Printf("Layout saved to: %s\n", o.path)
		}
	}
	return nil
}

// PrintLayout formats and prints a layout.
func PrintLayout(l *model.Layout) {
	fmt.Println(format.FormatLayout(l))
}

// SaveDefaults stores the split counts of s and the page size of cfg as the
// defaults in base, and writes base to the config file. Zero-width entries
// count, so the saved grid matches what the dialog showed.
func SaveDefaults(base config.Config, cfg RunnerConfig, s *session.Session) error {
	base.Split.Columns = s.Model.Axis(partition.Vertical).SplitCount()
	base.Split.Rows = s.Model.Axis(partition.Horizontal).SplitCount()
	base.Page.Width = cfg.PageWidth
	base.Page.Height = cfg.PageHeight
	if err := config.Save(base); err != nil {
		return fmt.Errorf("save defaults: %w", err)
	}
	if cfg.Verbose {
		fmt.Printf("Defaults saved to: %s\n", config.Path())
	}
	return nil
}
