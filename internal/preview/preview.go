// Package preview renders a colormap as a horizontal strip image.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Faultbox/palettegen/pkg/colormap"
)

// Render draws cmap left to right across a width x height image. Every
// column takes the nearest lookup table entry.
func Render(cmap *colormap.Colormap, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		r, g, b := cmap.At(float64(x) / float64(width)).RGB255()
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// WritePNG encodes img as PNG at path, creating parent directories.
func WritePNG(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
