package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/Faultbox/palettegen/internal/config"
	"github.com/Faultbox/palettegen/internal/logger"
	"github.com/Faultbox/palettegen/internal/preview"
	"github.com/Faultbox/palettegen/pkg/gradient"
	"github.com/Faultbox/palettegen/pkg/palette"
)

// run generates code to the configured destination and writes the preview.
// Output is rendered in memory first, so a failed run leaves an existing
// file untouched.
func run(cfg *config.Config) error {
	var buf bytes.Buffer
	if err := generate(&buf, cfg); err != nil {
		return err
	}

	if cfg.Output.Path == "" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output.Path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0644); err != nil {
		return err
	}
	logger.Info("code written", zap.String("path", cfg.Output.Path))
	return nil
}

// generate builds the gradient, writes every palette block to w and renders
// the optional preview.
func generate(w io.Writer, cfg *config.Config) error {
	for _, seg := range cfg.Gradient.Segments {
		logger.Debug("sampling segment", zap.Stringer("segment", seg))
	}

	colors, err := gradient.Build(cfg.Gradient.Segments)
	if err != nil {
		return fmt.Errorf("building gradient: %w", err)
	}
	if err := gradient.Validate(colors); err != nil {
		return err
	}
	logger.Info("gradient built", zap.Int("colors", len(colors)))
	if len(colors) < gradient.MaxColors {
		logger.Warn("gradient shorter than the palette index range, scalars stop early",
			zap.Int("colors", len(colors)), zap.Int("max", gradient.MaxColors))
	}

	bw := bufio.NewWriter(w)
	if cfg.Palette.Author != "" {
		if err := palette.WriteBanner(bw, cfg.Palette.Author); err != nil {
			return err
		}
	}

	blocks := cfg.Palette.ResolvedBlocks()
	if err := palette.EmitAll(bw, colors, blocks); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	for _, b := range blocks {
		logger.Debug("palette emitted", zap.String("name", b.Name), zap.Stringer("scale", b.Scale))
	}

	if cfg.Output.Preview != "" {
		if err := writePreview(cfg, colors); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}

func writePreview(cfg *config.Config, colors []colorful.Color) error {
	cmap, err := gradient.Colormap(cfg.Palette.Name, colors)
	if err != nil {
		return err
	}
	img, err := preview.Render(cmap, cfg.Output.PreviewWidth, cfg.Output.PreviewHeight)
	if err != nil {
		return err
	}
	if err := preview.WritePNG(cfg.Output.Preview, img); err != nil {
		return err
	}
	logger.Info("preview written", zap.String("path", cfg.Output.Preview))
	return nil
}
