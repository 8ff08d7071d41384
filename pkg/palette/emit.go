package palette

import (
	"fmt"
	"io"
	"text/template"

	"github.com/lucasb-eyer/go-colorful"
)

const blockTemplate = `{{range .Entries}}    int {{$.Prefix}}{{.Index}}[3] = { {{.R}}, {{.G}}, {{.B}} };
    this->addColor("_{{$.Prefix}}{{.Index}}", {{$.Prefix}}{{.Index}});
{{end}}    if (this->getPaletteByName("{{.Name}}") == NULL) {
        Palette {{.Var}};
        {{.Var}}.setName("{{.Name}}");
{{range .Entries}}        {{$.Var}}.addScalarAndColor( {{.Scalar}}f, "_{{$.Prefix}}{{.Index}}");
{{end}}        addPalette({{.Var}});
    }
`

const bannerTemplate = `    //------------------------------------------------------------------------
    //
    // Palette by {{.}}
    //
`

var (
	blockTmpl  = template.Must(template.New("block").Parse(blockTemplate))
	bannerTmpl = template.Must(template.New("banner").Parse(bannerTemplate))
)

// Entry is one color of an emitted block. Declarations, registrations and
// scalar mappings are all rendered from the same entry slice.
type Entry struct {
	Index   int
	R, G, B string
	Scalar  string
}

type blockData struct {
	Name    string
	Prefix  string
	Var     string
	Entries []Entry
}

// Entries converts a color sequence into the entries of a block, reversing
// a copy of the sequence first when the block asks for it.
func Entries(colors []colorful.Color, block Block) []Entry {
	entries := make([]Entry, len(colors))
	n := len(colors)
	for i := range colors {
		c := colors[i]
		if block.Reverse {
			c = colors[n-1-i]
		}
		entries[i] = Entry{
			Index:  i,
			R:      Hex8(c.R),
			G:      Hex8(c.G),
			B:      Hex8(c.B),
			Scalar: fmt.Sprintf("%f", block.Scale.Scalar(i)),
		}
	}
	return entries
}

// Emit writes the color declarations, color registrations and guarded
// palette registration for one block.
func Emit(w io.Writer, colors []colorful.Color, block Block) error {
	data := blockData{
		Name:    block.Name,
		Prefix:  block.Prefix,
		Var:     block.variable(),
		Entries: Entries(colors, block),
	}
	if err := blockTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("emitting palette %s: %w", block.Name, err)
	}
	return nil
}

// EmitAll writes every block in order.
func EmitAll(w io.Writer, colors []colorful.Color, blocks []Block) error {
	for _, b := range blocks {
		if err := Emit(w, colors, b); err != nil {
			return err
		}
	}
	return nil
}

// WriteBanner writes the section comment that precedes a pasted palette.
func WriteBanner(w io.Writer, author string) error {
	if err := bannerTmpl.Execute(w, author); err != nil {
		return fmt.Errorf("emitting banner: %w", err)
	}
	return nil
}
