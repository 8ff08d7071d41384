// Package palette emits wb_view palette registration code for a color
// sequence.
package palette

import (
	"errors"
	"fmt"
)

// ErrUnknownScale is returned when a scale name cannot be parsed.
var ErrUnknownScale = errors.New("unknown scale")

// Scale selects how a color's index maps to its scalar position.
type Scale int

// Scale constants.
const (
	// Signed spreads the palette over [-1, 1]: 1 - index*2/255.
	Signed Scale = iota
	// Positive spreads the palette over [0, 1]: 1 - index/255.
	Positive
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case Signed:
		return "signed"
	case Positive:
		return "positive"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// Scalar returns the scalar position of the color at index.
func (s Scale) Scalar(index int) float64 {
	if s == Positive {
		return 1 - float64(index)/255
	}
	return 1 - float64(index)/255*2
}

// ParseScale parses a scale name. "signed_half" is accepted as Signed.
func ParseScale(name string) (Scale, error) {
	switch name {
	case "signed", "signed_half", "":
		return Signed, nil
	case "positive":
		return Positive, nil
	}
	return Signed, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scale) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scale) UnmarshalText(text []byte) error {
	parsed, err := ParseScale(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Block describes one registered palette variant.
type Block struct {
	Name    string `yaml:"name"`    // palette name looked up by the application
	Prefix  string `yaml:"prefix"`  // color identifier prefix
	Var     string `yaml:"var"`     // C++ variable holding the Palette; defaults to Prefix
	Reverse bool   `yaml:"reverse"` // emit colors last to first
	Scale   Scale  `yaml:"scale"`
}

// variable returns the C++ palette variable name.
func (b Block) variable() string {
	if b.Var != "" {
		return b.Var
	}
	return b.Prefix
}

// DefaultBlocks returns the four variants registered for a gradient, in
// emission order: normal, inverted, inverted-positive, positive.
func DefaultBlocks(base string) []Block {
	return []Block{
		{Name: base, Prefix: "mymap", Scale: Signed},
		{Name: base + "_inv", Prefix: "mymapInv", Reverse: true, Scale: Signed},
		{Name: base + "_inv_pos", Prefix: "mymapInvPos", Reverse: true, Scale: Positive},
		{Name: base + "_pos", Prefix: "mymapPos", Scale: Positive},
	}
}

// Hex8 converts a channel in [0,1] to an 8-bit value by truncation and
// formats it as a C hex literal without padding (1.0 -> 0xff, 0.5 -> 0x7f).
func Hex8(v float64) string {
	return fmt.Sprintf("%#x", int(v*255))
}
