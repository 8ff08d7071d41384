package colormap

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

const reversedSuffix = "_r"

// ColorBrewer sequential schemes, listed light to dark and spread evenly.
var brewer = map[string][]string{
	"YlOrBr": {"#FFFFE5", "#FFF7BC", "#FEE391", "#FEC44F", "#FE9929", "#EC7014", "#CC4C02", "#993404", "#662506"},
	"YlOrRd": {"#FFFFCC", "#FFEDA0", "#FED976", "#FEB24C", "#FD8D3C", "#FC4E2A", "#E31A1C", "#BD0026", "#800026"},
	"YlGnBu": {"#FFFFD9", "#EDF8B1", "#C7E9B4", "#7FCDBB", "#41B6C4", "#1D91C0", "#225EA8", "#253494", "#081D58"},
	"PuBu":   {"#FFF7FB", "#ECE7F2", "#D0D1E6", "#A6BDDB", "#74A9CF", "#3690C0", "#0570B0", "#045A8D", "#023858"},
}

var (
	registryOnce sync.Once
	registry     map[string]*Colormap
)

// Lookup returns the standard colormap with the given name. Appending "_r"
// to any name returns the reversed map.
func Lookup(name string) (*Colormap, error) {
	registryOnce.Do(buildRegistry)

	if m, ok := registry[name]; ok {
		return m, nil
	}
	if base, ok := strings.CutSuffix(name, reversedSuffix); ok {
		if m, ok := registry[base]; ok {
			return m.Reversed(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// Names returns the registered base colormap names in sorted order.
func Names() []string {
	registryOnce.Do(buildRegistry)

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildRegistry() {
	registry = make(map[string]*Colormap, len(brewer)+1)

	viridis := make([]colorful.Color, len(viridisData))
	for i, rgb := range viridisData {
		viridis[i] = colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	registry["viridis"] = mustBuild(Listed("viridis", viridis))

	for name, hexes := range brewer {
		colors := make([]colorful.Color, len(hexes))
		for i, h := range hexes {
			colors[i] = mustParseHex(h)
		}
		registry[name] = mustBuild(FromList(name, colors, DefaultN))
	}
}

// mustParseHex parses a table literal into channels of exactly v/255, so
// that truncating channel*255 gives back the byte. colorful.Hex scales by
// 1/255 and lands one ulp low for some bytes.
func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func mustBuild(m *Colormap, err error) *Colormap {
	if err != nil {
		panic(err)
	}
	return m
}
