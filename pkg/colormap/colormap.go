// Package colormap provides sampled color maps that map a normalized scalar
// in [0,1] to an RGB color.
package colormap

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultN is the lookup table size used by the standard maps.
const DefaultN = 256

// Colormap errors.
var (
	ErrUnknownColormap = errors.New("unknown colormap")
	ErrTooFewKeypoints = errors.New("colormap needs at least two keypoints")
	ErrKeypointRange   = errors.New("keypoint position outside [0,1]")
)

// Keypoint is a color anchored at a position along the map.
type Keypoint struct {
	Pos   float64
	Color colorful.Color
}

// Colormap is a named lookup table of N colors.
type Colormap struct {
	Name string
	lut  []colorful.Color
}

// FromKeypoints builds an n-entry colormap by linear RGB interpolation
// between keypoints. Entry i holds the interpolated color at i/(n-1); the
// first and last entries are the outer keypoints exactly.
func FromKeypoints(name string, keypoints []Keypoint, n int) (*Colormap, error) {
	if len(keypoints) < 2 {
		return nil, fmt.Errorf("%s: %w", name, ErrTooFewKeypoints)
	}
	if n < 2 {
		return nil, fmt.Errorf("%s: lookup table size %d too small", name, n)
	}

	kps := make([]Keypoint, len(keypoints))
	copy(kps, keypoints)
	sort.SliceStable(kps, func(i, j int) bool { return kps[i].Pos < kps[j].Pos })

	for _, kp := range kps {
		if kp.Pos < 0 || kp.Pos > 1 {
			return nil, fmt.Errorf("%s: %w: %v", name, ErrKeypointRange, kp.Pos)
		}
	}

	xs := Linspace(0, 1, n)
	lut := make([]colorful.Color, n)
	for i, x := range xs {
		lut[i] = interpolate(kps, x)
	}
	lut[0] = kps[0].Color
	lut[n-1] = kps[len(kps)-1].Color

	return &Colormap{Name: name, lut: lut}, nil
}

// FromList builds an n-entry colormap from colors spread evenly over [0,1].
func FromList(name string, colors []colorful.Color, n int) (*Colormap, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%s: %w", name, ErrTooFewKeypoints)
	}
	xs := Linspace(0, 1, len(colors))
	kps := make([]Keypoint, len(colors))
	for i, c := range colors {
		kps[i] = Keypoint{Pos: xs[i], Color: c}
	}
	return FromKeypoints(name, kps, n)
}

// Listed builds a colormap whose lookup table is colors, entry for entry.
func Listed(name string, colors []colorful.Color) (*Colormap, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%s: %w", name, ErrTooFewKeypoints)
	}
	lut := make([]colorful.Color, len(colors))
	copy(lut, colors)
	return &Colormap{Name: name, lut: lut}, nil
}

// interpolate returns the color at t. Keypoints must be sorted. A t that
// falls on a keypoint returns that keypoint's color unchanged.
func interpolate(kps []Keypoint, t float64) colorful.Color {
	if t <= kps[0].Pos {
		return kps[0].Color
	}
	for i := 1; i < len(kps); i++ {
		lo, hi := kps[i-1], kps[i]
		if t > hi.Pos {
			continue
		}
		if t == hi.Pos || hi.Pos == lo.Pos {
			return hi.Color
		}
		f := (t - lo.Pos) / (hi.Pos - lo.Pos)
		return colorful.Color{
			R: lerp(lo.Color.R, hi.Color.R, f),
			G: lerp(lo.Color.G, hi.Color.G, f),
			B: lerp(lo.Color.B, hi.Color.B, f),
		}.Clamped()
	}
	return kps[len(kps)-1].Color
}

// lerp returns a + f*(b-a). The explicit conversion keeps the product
// rounded before the add, so no fused multiply-add changes the result.
func lerp(a, b, f float64) float64 {
	return float64(f*(b-a)) + a
}

// N returns the number of entries in the lookup table.
func (m *Colormap) N() int {
	return len(m.lut)
}

// At returns the color for x. The lookup truncates x*N to an index, maps
// x == 1 onto the last entry and clamps everything outside [0,1] to the
// ends. NaN returns the first entry.
func (m *Colormap) At(x float64) colorful.Color {
	n := len(m.lut)
	if math.IsNaN(x) {
		return m.lut[0]
	}
	scaled := x * float64(n)
	switch {
	case scaled < 0:
		return m.lut[0]
	case scaled >= float64(n):
		return m.lut[n-1]
	}
	return m.lut[int(scaled)]
}

// Sample returns count colors taken at evenly spaced positions between
// start and stop, both inclusive.
func (m *Colormap) Sample(start, stop float64, count int) []colorful.Color {
	xs := Linspace(start, stop, count)
	out := make([]colorful.Color, len(xs))
	for i, x := range xs {
		out[i] = m.At(x)
	}
	return out
}

// Reversed returns a copy of the map running from its last color to its
// first, named with an "_r" suffix.
func (m *Colormap) Reversed() *Colormap {
	n := len(m.lut)
	lut := make([]colorful.Color, n)
	for i, c := range m.lut {
		lut[n-1-i] = c
	}
	return &Colormap{Name: m.Name + reversedSuffix, lut: lut}
}

// Colors returns a copy of the lookup table.
func (m *Colormap) Colors() []colorful.Color {
	out := make([]colorful.Color, len(m.lut))
	copy(out, m.lut)
	return out
}

// Linspace returns count evenly spaced values over [start, stop]. The last
// value is exactly stop.
func Linspace(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(count-1)
	out := make([]float64, count)
	for i := range out {
		// Rounded product first; a fused multiply-add can move a sample
		// across a lookup table boundary.
		out[i] = float64(float64(i)*step) + start
	}
	out[count-1] = stop
	return out
}
