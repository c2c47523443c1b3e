// Package palette maps colour names to RGB triples. A Palette is immutable;
// extending one returns a new Palette.
package palette

import (
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
)

// Name identifies a palette entry.
type Name string

const (
	Red    Name = "red"
	Green  Name = "green"
	Blue   Name = "blue"
	Orange Name = "orange"
	Purple Name = "purple"
)

// Palette is an immutable mapping from Name to colour.
type Palette struct {
	colors map[Name]colorful.Color
}

// Default returns the built-in palette.
func Default() Palette {
	return Palette{colors: map[Name]colorful.Color{
		Red:    fromRGB(255, 0, 0),
		Green:  fromRGB(0, 255, 0),
		Blue:   fromRGB(51, 0, 255),
		Orange: fromRGB(255, 204, 0),
		Purple: fromRGB(255, 51, 255),
	}}
}

func fromRGB(r, g, b uint8) colorful.Color {
	c, _ := colorful.MakeColor(color.NRGBA{R: r, G: g, B: b, A: 255})
	return c
}

// With returns a copy of p with name set to c.
func (p Palette) With(name Name, c colorful.Color) Palette {
	colors := make(map[Name]colorful.Color, len(p.colors)+1)
	for k, v := range p.colors {
		colors[k] = v
	}
	colors[name] = c
	return Palette{colors: colors}
}

// WithRGB is With for a byte triple.
func (p Palette) WithRGB(name Name, r, g, b uint8) Palette {
	return p.With(name, fromRGB(r, g, b))
}

// Color looks up name.
func (p Palette) Color(name Name) (colorful.Color, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// RGB returns the byte triple for name.
func (p Palette) RGB(name Name) (r, g, b uint8, ok bool) {
	c, ok := p.colors[name]
	if !ok {
		return 0, 0, 0, false
	}
	r, g, b = c.RGB255()
	return r, g, b, true
}

// Hex returns name as "#rrggbb", or "" when it is not in the palette.
func (p Palette) Hex(name Name) string {
	c, ok := p.colors[name]
	if !ok {
		return ""
	}
	return c.Hex()
}

// Names lists the entries in sorted order.
func (p Palette) Names() []Name {
	names := make([]Name, 0, len(p.colors))
	for n := range p.colors {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
