package preview

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/palettegen/pkg/colormap"
)

func blackWhite(t *testing.T) *colormap.Colormap {
	t.Helper()
	m, err := colormap.FromList("bw", []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}}, 256)
	if err != nil {
		t.Fatalf("FromList failed: %v", err)
	}
	return m
}

func TestRender(t *testing.T) {
	img, err := Render(blackWhite(t), 256, 8)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 8 {
		t.Fatalf("expected 256x8 image, got %dx%d", b.Dx(), b.Dy())
	}

	left := img.RGBAAt(0, 0)
	if left.R != 0 || left.A != 255 {
		t.Errorf("expected black left edge, got %v", left)
	}
	right := img.RGBAAt(255, 7)
	if right.R != 255 {
		t.Errorf("expected white right edge, got %v", right)
	}

	// Columns are uniform.
	for y := 1; y < 8; y++ {
		if img.RGBAAt(100, y) != img.RGBAAt(100, 0) {
			t.Fatalf("column 100 not uniform at row %d", y)
		}
	}
}

func TestRenderInvalidSize(t *testing.T) {
	if _, err := Render(blackWhite(t), 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := Render(blackWhite(t), 10, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Render(blackWhite(t), 64, 4)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "preview.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open written file: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 4 {
		t.Errorf("expected 64x4 PNG, got %dx%d", b.Dx(), b.Dy())
	}
}
