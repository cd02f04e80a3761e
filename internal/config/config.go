package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"
	"strconv"

	"github.com/Mavwarf/mkicon/internal/icon"
	"github.com/Mavwarf/mkicon/internal/paths"
)

// Frame size limits. The ICO directory stores dimensions in one byte
// (0 = 256), and the waveform needs at least two inset bands.
const (
	MinSize = 16
	MaxSize = 256
)

// Colors holds "#rrggbb" strings for each palette slot.
type Colors struct {
	Fill   string `json:"fill,omitempty"`
	Accent string `json:"accent,omitempty"`
	Dot    string `json:"dot,omitempty"`
}

// Config describes one icon build. The zero-file default reproduces the
// stock icon.ico.
type Config struct {
	Output string `json:"output,omitempty"`
	Sizes  []int  `json:"sizes,omitempty"`
	Colors Colors `json:"colors,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: paths.DefaultOutput,
		Sizes:  slices.Clone(icon.Sizes),
		Colors: Colors{
			Fill:   hex(icon.DefaultPalette.Fill),
			Accent: hex(icon.DefaultPalette.Accent),
			Dot:    hex(icon.DefaultPalette.Dot),
		},
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Only values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads the build configuration. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. mkicon.json in the working directory
//  3. the built-in defaults
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}
	if _, err := os.Stat(paths.ConfigFileName); err == nil {
		return readConfig(paths.ConfigFileName)
	}
	return Default(), nil
}

// Validate reports the first problem with cfg.
func Validate(cfg Config) error {
	if cfg.Output == "" {
		return fmt.Errorf("output path is empty")
	}
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("no sizes configured")
	}
	for i, s := range cfg.Sizes {
		if s < MinSize || s > MaxSize {
			return fmt.Errorf("size %d out of range %d..%d", s, MinSize, MaxSize)
		}
		if i > 0 && s <= cfg.Sizes[i-1] {
			return fmt.Errorf("sizes must be strictly ascending (%d after %d)", s, cfg.Sizes[i-1])
		}
	}
	_, err := cfg.Palette()
	return err
}

// Palette parses the configured colors.
func (c Config) Palette() (icon.Palette, error) {
	var p icon.Palette
	var errs []error
	for _, f := range []struct {
		name string
		in   string
		out  *color.RGBA
	}{
		{"fill", c.Colors.Fill, &p.Fill},
		{"accent", c.Colors.Accent, &p.Accent},
		{"dot", c.Colors.Dot, &p.Dot},
	} {
		col, err := ParseHex(f.in)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f.name, err))
			continue
		}
		*f.out = col
	}
	return p, errors.Join(errs...)
}

// ParseHex parses an opaque "#rrggbb" color.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #rrggbb)", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
