package palette

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var redGreen = []colorful.Color{
	{R: 1.0, G: 0.0, B: 0.0},
	{R: 0.0, G: 1.0, B: 0.0},
}

func TestHex8(t *testing.T) {
	tests := []struct {
		in       float64
		expected string
	}{
		{1.0, "0xff"},
		{0.0, "0x0"},
		{0.5, "0x7f"},
		{0.02, "0x5"},
		{0.999, "0xfe"},
	}

	for _, tt := range tests {
		if got := Hex8(tt.in); got != tt.expected {
			t.Errorf("Hex8(%v): expected %s, got %s", tt.in, tt.expected, got)
		}
	}
}

func TestScaleScalar(t *testing.T) {
	tests := []struct {
		scale Scale
		slope float64
	}{
		{Signed, 2.0 / 255},
		{Positive, 1.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.scale.String(), func(t *testing.T) {
			if got := tt.scale.Scalar(0); got != 1.0 {
				t.Errorf("expected scalar 1.0 at index 0, got %v", got)
			}
			prev := tt.scale.Scalar(0)
			for i := 1; i < 256; i++ {
				cur := tt.scale.Scalar(i)
				if cur >= prev {
					t.Fatalf("scalar not decreasing at index %d: %v >= %v", i, cur, prev)
				}
				if math.Abs((prev-cur)-tt.slope) > 1e-12 {
					t.Fatalf("unexpected step at index %d: %v", i, prev-cur)
				}
				prev = cur
			}
		})
	}

	if got := Signed.Scalar(255); got != -1.0 {
		t.Errorf("expected signed scalar -1 at index 255, got %v", got)
	}
	if got := Positive.Scalar(255); got != 0.0 {
		t.Errorf("expected positive scalar 0 at index 255, got %v", got)
	}
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		name     string
		expected Scale
	}{
		{"signed", Signed},
		{"signed_half", Signed},
		{"positive", Positive},
		{"", Signed},
	}
	for _, tt := range tests {
		got, err := ParseScale(tt.name)
		if err != nil {
			t.Errorf("ParseScale(%q) failed: %v", tt.name, err)
		}
		if got != tt.expected {
			t.Errorf("ParseScale(%q): expected %v, got %v", tt.name, tt.expected, got)
		}
	}

	if _, err := ParseScale("log"); !errors.Is(err, ErrUnknownScale) {
		t.Errorf("expected ErrUnknownScale, got %v", err)
	}
}

func TestScaleText(t *testing.T) {
	var s Scale
	if err := s.UnmarshalText([]byte("positive")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if s != Positive {
		t.Errorf("expected Positive, got %v", s)
	}
	text, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "positive" {
		t.Errorf("expected positive, got %s", text)
	}
}

func TestEmitTwoColors(t *testing.T) {
	var buf bytes.Buffer
	block := Block{Name: "test_pos", Prefix: "test", Var: "mymap", Scale: Positive}
	if err := Emit(&buf, redGreen, block); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	expected := `    int test0[3] = { 0xff, 0x0, 0x0 };
    this->addColor("_test0", test0);
    int test1[3] = { 0x0, 0xff, 0x0 };
    this->addColor("_test1", test1);
    if (this->getPaletteByName("test_pos") == NULL) {
        Palette mymap;
        mymap.setName("test_pos");
        mymap.addScalarAndColor( 1.000000f, "_test0");
        mymap.addScalarAndColor( 0.996078f, "_test1");
        addPalette(mymap);
    }
`
	if got := buf.String(); got != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestEmitVarDefaultsToPrefix(t *testing.T) {
	var buf bytes.Buffer
	block := Block{Name: "margulies", Prefix: "mymap", Scale: Signed}
	if err := Emit(&buf, redGreen, block); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"        Palette mymap;\n",
		`        mymap.setName("margulies");`,
		`        mymap.addScalarAndColor( 0.992157f, "_mymap1");`,
		"        addPalette(mymap);\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

var (
	declRe   = regexp.MustCompile(`(?m)^    int (\w+?)(\d+)\[3\] = \{ (0x[0-9a-f]+), (0x[0-9a-f]+), (0x[0-9a-f]+) \};$`)
	addRe    = regexp.MustCompile(`(?m)^    this->addColor\("_(\w+?)(\d+)", (\w+)\);$`)
	scalarRe = regexp.MustCompile(`(?m)^        \w+\.addScalarAndColor\( (-?\d+\.\d{6})f, "_(\w+?)(\d+)"\);$`)
)

func sampleColors(n int) []colorful.Color {
	colors := make([]colorful.Color, n)
	for i := range colors {
		f := float64(i) / float64(n)
		colors[i] = colorful.Color{R: f, G: 1 - f, B: math.Mod(f*3, 1)}
	}
	return colors
}

func TestEmitCountsMatch(t *testing.T) {
	colors := sampleColors(256)

	for _, block := range DefaultBlocks("margulies") {
		t.Run(block.Name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Emit(&buf, colors, block); err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
			out := buf.String()

			decls := declRe.FindAllStringSubmatch(out, -1)
			adds := addRe.FindAllStringSubmatch(out, -1)
			scalars := scalarRe.FindAllStringSubmatch(out, -1)

			if len(decls) != len(colors) || len(adds) != len(colors) || len(scalars) != len(colors) {
				t.Fatalf("expected %d of each line, got %d decls, %d adds, %d scalars",
					len(colors), len(decls), len(adds), len(scalars))
			}

			for i := range colors {
				idx := strconv.Itoa(i)
				if decls[i][1] != block.Prefix || decls[i][2] != idx {
					t.Errorf("declaration %d named %s%s", i, decls[i][1], decls[i][2])
				}
				if adds[i][2] != idx || adds[i][3] != block.Prefix+idx {
					t.Errorf("registration %d mismatched: %v", i, adds[i][0])
				}
				if scalars[i][3] != idx {
					t.Errorf("scalar mapping %d refers to index %s", i, scalars[i][3])
				}
			}
		})
	}
}

func TestEmitReverse(t *testing.T) {
	colors := sampleColors(16)

	var fwd, rev bytes.Buffer
	if err := Emit(&fwd, colors, Block{Name: "f", Prefix: "f"}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if err := Emit(&rev, colors, Block{Name: "r", Prefix: "r", Reverse: true}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	fwdDecls := declRe.FindAllStringSubmatch(fwd.String(), -1)
	revDecls := declRe.FindAllStringSubmatch(rev.String(), -1)
	if len(fwdDecls) != len(revDecls) {
		t.Fatalf("declaration counts differ: %d vs %d", len(fwdDecls), len(revDecls))
	}

	n := len(fwdDecls)
	for i := range fwdDecls {
		f, r := fwdDecls[i], revDecls[n-1-i]
		if f[3] != r[3] || f[4] != r[4] || f[5] != r[5] {
			t.Errorf("index %d: forward %v does not mirror reversed %v", i, f[3:], r[3:])
		}
	}

	// Scalars follow the emitted index, not the source color.
	if !strings.Contains(rev.String(), `r.addScalarAndColor( 1.000000f, "_r0");`) {
		t.Error("reversed block should still start at scalar 1.0")
	}
}

func TestEntriesDoesNotMutateInput(t *testing.T) {
	colors := sampleColors(4)
	orig := make([]colorful.Color, len(colors))
	copy(orig, colors)

	Entries(colors, Block{Reverse: true})

	for i := range colors {
		if colors[i] != orig[i] {
			t.Fatalf("input color %d modified", i)
		}
	}
}

func TestDefaultBlocks(t *testing.T) {
	blocks := DefaultBlocks("margulies")

	expected := []Block{
		{Name: "margulies", Prefix: "mymap", Scale: Signed},
		{Name: "margulies_inv", Prefix: "mymapInv", Reverse: true, Scale: Signed},
		{Name: "margulies_inv_pos", Prefix: "mymapInvPos", Reverse: true, Scale: Positive},
		{Name: "margulies_pos", Prefix: "mymapPos", Scale: Positive},
	}
	if len(blocks) != len(expected) {
		t.Fatalf("expected %d blocks, got %d", len(expected), len(blocks))
	}
	for i := range expected {
		if blocks[i] != expected[i] {
			t.Errorf("block %d: expected %+v, got %+v", i, expected[i], blocks[i])
		}
	}
}

func TestEmitAllOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EmitAll(&buf, redGreen, DefaultBlocks("margulies")); err != nil {
		t.Fatalf("EmitAll failed: %v", err)
	}
	out := buf.String()

	last := -1
	for _, name := range []string{`"margulies"`, `"margulies_inv"`, `"margulies_inv_pos"`, `"margulies_pos"`} {
		pos := strings.Index(out, "getPaletteByName("+name+")")
		if pos < 0 {
			t.Fatalf("missing palette %s", name)
		}
		if pos < last {
			t.Errorf("palette %s emitted out of order", name)
		}
		last = pos
	}
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBanner(&buf, "Daniel Margulies"); err != nil {
		t.Fatalf("WriteBanner failed: %v", err)
	}
	if !strings.Contains(buf.String(), "    // Palette by Daniel Margulies\n") {
		t.Errorf("unexpected banner:\n%s", buf.String())
	}
}
