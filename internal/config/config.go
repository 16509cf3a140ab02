package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/memtree/pkg/memtree"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "memtree.yaml"

// Color modes for listings written to a terminal.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables that override file settings.
const (
	EnvSeparator     = "MEMTREE_SEPARATOR"
	EnvReportMissing = "MEMTREE_REPORT_MISSING"
	EnvColor         = "MEMTREE_COLOR"
)

type Config struct {
	Separator     string `yaml:"separator"`
	ReportMissing bool   `yaml:"report_missing"`
	Color         string `yaml:"color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Separator: string(memtree.DefaultSeparator),
		Color:     ColorAuto,
	}
}

// Load reads memtree.yaml from dir on top of the defaults.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", memtree.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables found by lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeparator); ok {
		c.Separator = v
	}
	if v, ok := lookup(EnvColor); ok {
		c.Color = v
	}
	if v, ok := lookup(EnvReportMissing); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", memtree.ErrInvalidConfig, EnvReportMissing, v)
		}
		c.ReportMissing = b
	}
	return nil
}

// Validate checks that the separator is a single valid rune and the color mode is known.
func (c *Config) Validate() error {
	if !utf8.ValidString(c.Separator) {
		return fmt.Errorf("%w: separator is not valid UTF-8: %q", memtree.ErrInvalidConfig, c.Separator)
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: separator must be exactly one character, got %q", memtree.ErrInvalidConfig, c.Separator)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be one of auto, always, never, got %q", memtree.ErrInvalidConfig, c.Color)
	}
	return nil
}

// SeparatorRune returns the configured separator. Call Validate first.
func (c *Config) SeparatorRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// Options converts the configuration into FileSystem options.
func (c *Config) Options() []memtree.Option {
	return []memtree.Option{
		memtree.WithSeparator(c.SeparatorRune()),
		memtree.WithReportMissing(c.ReportMissing),
	}
}
