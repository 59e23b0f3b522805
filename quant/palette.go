package quant

import (
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette is an immutable, ordered list of unique RGB triples. The CIE
// Lab coordinates of its entries are computed once, on first use, and
// shared by every copy of the value. Build a fresh Palette whenever the
// color list changes; there is no way to mutate one in place, so the
// memoized coordinates can never go stale.
type Palette struct {
	d *paletteData
}

type paletteData struct {
	colors []RGB
	once   sync.Once
	lab    [][3]float64
}

// NewPalette builds a palette from the given colors, dropping duplicate
// RGB triples while preserving first-seen order.
func NewPalette(colors ...color.Color) Palette {
	entries := make([]RGB, 0, len(colors))
	seen := make(map[RGB]bool, len(colors))
	for _, col := range colors {
		c := color.NRGBAModel.Convert(col).(color.NRGBA)
		e := RGB{R: c.R, G: c.G, B: c.B}
		if seen[e] {
			continue
		}
		seen[e] = true
		entries = append(entries, e)
	}
	return NewPaletteRGB(entries)
}

// NewPaletteRGB is NewPalette for callers that already hold RGB triples.
func NewPaletteRGB(entries []RGB) Palette {
	colors := make([]RGB, 0, len(entries))
	seen := make(map[RGB]bool, len(entries))
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		colors = append(colors, e)
	}
	return Palette{d: &paletteData{colors: colors}}
}

func (p Palette) Len() int {
	if p.d == nil {
		return 0
	}
	return len(p.d.colors)
}

// At returns a copy of entry i.
func (p Palette) At(i int) RGB {
	return p.d.colors[i]
}

// Colors returns the entries as a color.Palette for use with the
// standard image packages.
func (p Palette) Colors() color.Palette {
	if p.d == nil {
		return nil
	}
	out := make(color.Palette, len(p.d.colors))
	for i, e := range p.d.colors {
		out[i] = color.NRGBA{R: e.R, G: e.G, B: e.B, A: 0xFF}
	}
	return out
}

// labs returns the memoized CIE Lab coordinates of the palette entries.
func (p Palette) labs() [][3]float64 {
	p.d.once.Do(func() {
		p.d.lab = make([][3]float64, len(p.d.colors))
		for i, e := range p.d.colors {
			l, a, b := rgbToLab(e.R, e.G, e.B)
			p.d.lab[i] = [3]float64{l, a, b}
		}
	})
	return p.d.lab
}

func rgbToLab(r, g, b uint8) (float64, float64, float64) {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	return c.Lab()
}
