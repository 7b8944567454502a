// Package config loads runtime settings for the percolate command.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/ReblochonMasque/percolation/percolation"
)

// ErrInvalidConfig indicates a setting that cannot drive a percolation run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix for environment overrides, e.g. PERCOLATE_SIZE.
const EnvPrefix = "PERCOLATE"

// GlyphConfig holds the single-character glyphs used when drawing the grid.
type GlyphConfig struct {
	Blocked string `mapstructure:"blocked"`
	Open    string `mapstructure:"open"`
	Full    string `mapstructure:"full"`
}

// Config holds all runtime configuration for a percolate run.
// Values are populated from .percolate.yaml, PERCOLATE_* env vars, and CLI flags.
type Config struct {
	Size              int         `mapstructure:"size"`
	StopOnPercolation bool        `mapstructure:"stop_on_percolation"`
	ShowSteps         bool        `mapstructure:"show_steps"`
	Verbose           bool        `mapstructure:"verbose"`
	Glyphs            GlyphConfig `mapstructure:"glyphs"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	g := percolation.DefaultGlyphs()
	v.SetDefault("size", 5)
	v.SetDefault("stop_on_percolation", true)
	v.SetDefault("show_steps", false)
	v.SetDefault("verbose", false)
	v.SetDefault("glyphs.blocked", string(g.Blocked))
	v.SetDefault("glyphs.open", string(g.Open))
	v.SetDefault("glyphs.full", string(g.Full))
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the grid size is positive and every glyph is exactly one rune.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidConfig, c.Size)
	}
	for name, g := range map[string]string{
		"blocked": c.Glyphs.Blocked,
		"open":    c.Glyphs.Open,
		"full":    c.Glyphs.Full,
	} {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("%w: glyphs.%s must be a single character, got %q", ErrInvalidConfig, name, g)
		}
	}

	return nil
}

// RenderGlyphs converts the configured strings into percolation.Glyphs.
// Call only on a validated Config.
func (c Config) RenderGlyphs() percolation.Glyphs {
	first := func(s string) rune {
		r, _ := utf8.DecodeRuneInString(s)
		return r
	}

	return percolation.Glyphs{
		Blocked: first(c.Glyphs.Blocked),
		Open:    first(c.Glyphs.Open),
		Full:    first(c.Glyphs.Full),
	}
}
