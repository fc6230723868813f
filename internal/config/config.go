package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Split  SplitConfig
	Page   PageConfig
	Export ExportConfig
	Log    LogConfig
}

// SplitConfig holds the initial split counts and the upper bound shells offer.
type SplitConfig struct {
	Columns int
	Rows    int
	Max     int
}

// PageConfig holds the default page size in points, used for tile sizes and previews.
type PageConfig struct {
	Width  float64
	Height float64
}

// ExportConfig holds where layout files are written.
type ExportConfig struct {
	Dir string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Path returns the config file location. GRIDSPLIT_CONFIG overrides the default.
func Path() string {
	if p := os.Getenv("GRIDSPLIT_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gridsplit", "config.toml")
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("split.columns", 1)
	v.SetDefault("split.rows", 1)
	v.SetDefault("split.max", 20)
	// A4 portrait
	v.SetDefault("page.width", 595.0)
	v.SetDefault("page.height", 842.0)
	v.SetDefault("export.dir", "layouts")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix GRIDSPLIT_.
func Load() (Config, error) {
	v := newViper()
	v.SetConfigFile(Path())

	v.SetEnvPrefix("GRIDSPLIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// missing file is fine, defaults apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.normalized(), nil
}

// Save writes cfg to Path(), creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := newViper()
	v.Set("split.columns", cfg.Split.Columns)
	v.Set("split.rows", cfg.Split.Rows)
	v.Set("split.max", cfg.Split.Max)
	v.Set("page.width", cfg.Page.Width)
	v.Set("page.height", cfg.Page.Height)
	v.Set("export.dir", cfg.Export.Dir)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// normalized clamps values the shells rely on.
func (c Config) normalized() Config {
	if c.Split.Max < 1 || c.Split.Max > 20 {
		c.Split.Max = 20
	}
	c.Split.Columns = clampCount(c.Split.Columns, c.Split.Max)
	c.Split.Rows = clampCount(c.Split.Rows, c.Split.Max)
	if c.Page.Width <= 0 {
		c.Page.Width = 595
	}
	if c.Page.Height <= 0 {
		c.Page.Height = 842
	}
	return c
}

func clampCount(n, limit int) int {
	if n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}
