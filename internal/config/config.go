// Package config handles generator configuration loading and management.
package config

import (
	"errors"

	"github.com/Faultbox/palettegen/pkg/gradient"
	"github.com/Faultbox/palettegen/pkg/palette"
)

// Config holds all generator settings.
type Config struct {
	Gradient GradientConfig `yaml:"gradient"`
	Palette  PaletteConfig  `yaml:"palette"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GradientConfig holds the colormap segments concatenated into the gradient.
type GradientConfig struct {
	Segments []gradient.Segment `yaml:"segments"`
}

// PaletteConfig holds the emitted palette settings.
type PaletteConfig struct {
	Name   string          `yaml:"name"`   // Base palette name
	Author string          `yaml:"author"` // Banner credit, omitted when empty
	Blocks []palette.Block `yaml:"blocks"` // Explicit variants; defaults derive from Name
}

// OutputConfig holds output destinations.
type OutputConfig struct {
	Path          string `yaml:"path"`    // Generated code file, stdout when empty
	Preview       string `yaml:"preview"` // PNG preview file, skipped when empty
	PreviewWidth  int    `yaml:"preview_width"`
	PreviewHeight int    `yaml:"preview_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config that reproduces the margulies palette.
func Default() *Config {
	return &Config{
		Gradient: GradientConfig{
			Segments: gradient.DefaultSegments(),
		},
		Palette: PaletteConfig{
			Name: "margulies",
		},
		Output: OutputConfig{
			PreviewWidth:  256,
			PreviewHeight: 32,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ResolvedBlocks returns the palette variants to emit.
func (p PaletteConfig) ResolvedBlocks() []palette.Block {
	if len(p.Blocks) > 0 {
		return p.Blocks
	}
	return palette.DefaultBlocks(p.Name)
}

// Validate checks settings that would otherwise produce unusable output.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Gradient.Segments) == 0 {
		errs = append(errs, errors.New("gradient: no segments"))
	}
	if c.Palette.Name == "" && len(c.Palette.Blocks) == 0 {
		errs = append(errs, errors.New("palette: name is empty"))
	}
	for _, b := range c.Palette.Blocks {
		if b.Name == "" || b.Prefix == "" {
			errs = append(errs, errors.New("palette: blocks need a name and a prefix"))
			break
		}
	}
	if c.Output.Preview != "" && (c.Output.PreviewWidth <= 0 || c.Output.PreviewHeight <= 0) {
		errs = append(errs, errors.New("output: preview size must be positive"))
	}
	return errors.Join(errs...)
}
