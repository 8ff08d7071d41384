// Package gradient assembles a composite color gradient from sampled
// segments of standard color maps.
package gradient

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/palettegen/pkg/colormap"
)

// MaxColors is the largest sequence the 8-bit palette index range can address.
const MaxColors = 256

// Gradient errors.
var (
	ErrEmptySegment  = errors.New("segment has no samples")
	ErrTooManyColors = errors.New("gradient exceeds 256 colors")
)

// Segment selects Count evenly spaced samples of a named colormap between
// Start and Stop.
type Segment struct {
	Colormap string  `yaml:"colormap"`
	Start    float64 `yaml:"start"`
	Stop     float64 `yaml:"stop"`
	Count    int     `yaml:"count"`
}

// String returns the segment as "name[start:stop]xcount".
func (s Segment) String() string {
	return fmt.Sprintf("%s[%g:%g]x%d", s.Colormap, s.Start, s.Stop, s.Count)
}

// DefaultSplit is the share of the 8-bit range given to the first segment.
const DefaultSplit = 0.90

// SplitCounts divides MaxColors between two segments: the second receives
// 255*(1-split) samples rounded half to even, the first the rest. The
// arithmetic is float64, so DefaultSplit yields 231 and 25.
func SplitCounts(split float64) (first, second int) {
	second = int(math.RoundToEven(255 * (1 - split)))
	first = MaxColors - second
	return first, second
}

// DefaultSegments returns viridis over [0.1, 0.98] followed by YlOrBr over
// [0.25, 1].
func DefaultSegments() []Segment {
	first, second := SplitCounts(DefaultSplit)
	return []Segment{
		{Colormap: "viridis", Start: 0.1, Stop: 0.98, Count: first},
		{Colormap: "YlOrBr", Start: 0.25, Stop: 1.0, Count: second},
	}
}

// Build samples every segment in order and concatenates the results. The
// returned sequence has one color per requested sample.
func Build(segments []Segment) ([]colorful.Color, error) {
	var total int
	for _, seg := range segments {
		if seg.Count <= 0 {
			return nil, fmt.Errorf("%s: %w", seg, ErrEmptySegment)
		}
		total += seg.Count
	}

	colors := make([]colorful.Color, 0, total)
	for _, seg := range segments {
		cmap, err := colormap.Lookup(seg.Colormap)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", seg, err)
		}
		colors = append(colors, cmap.Sample(seg.Start, seg.Stop, seg.Count)...)
	}
	return colors, nil
}

// Validate reports whether a sequence fits the 8-bit index range that
// palette scalar positions are computed over.
func Validate(colors []colorful.Color) error {
	if len(colors) > MaxColors {
		return fmt.Errorf("%w: got %d", ErrTooManyColors, len(colors))
	}
	return nil
}

// Colormap builds a single piecewise-linear colormap through the sequence.
func Colormap(name string, colors []colorful.Color) (*colormap.Colormap, error) {
	return colormap.FromList(name, colors, colormap.DefaultN)
}
