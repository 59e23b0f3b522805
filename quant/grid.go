// Package quant maps continuous-tone pixel grids onto a fixed palette,
// preserving perceived gradients through error diffusion or threshold
// patterns. It consumes a prepared pixel grid and a palette and produces
// a new grid; decoding, display and persistence belong to the caller.
package quant

import (
	"image"
	"image/color"
)

// Grid is a width x height buffer of 8-bit RGB triples, stored
// interleaved. The pixel at (x, y) occupies Pix[(y*W+x)*3 : (y*W+x)*3+3].
type Grid struct {
	W, H int
	Pix  []uint8
}

func NewGrid(w, h int) Grid {
	return Grid{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*3),
	}
}

// Offset returns the index of the first channel of the pixel at (x, y).
func (g Grid) Offset(x, y int) int {
	return (y*g.W + x) * 3
}

func (g Grid) RGB(x, y int) (r, gr, b uint8) {
	off := g.Offset(x, y)
	return g.Pix[off], g.Pix[off+1], g.Pix[off+2]
}

func (g Grid) SetRGB(x, y int, r, gr, b uint8) {
	off := g.Offset(x, y)
	g.Pix[off] = r
	g.Pix[off+1] = gr
	g.Pix[off+2] = b
}

func (g Grid) Clone() Grid {
	out := Grid{
		W:   g.W,
		H:   g.H,
		Pix: make([]uint8, len(g.Pix)),
	}
	copy(out.Pix, g.Pix)
	return out
}

// AlphaMask is a width x height grid of 8-bit alpha values running
// parallel to a Grid. It is read-only input for quantization. The zero
// mask is treated as fully opaque.
type AlphaMask struct {
	W, H int
	Pix  []uint8
}

func (m AlphaMask) At(x, y int) uint8 {
	if m.Pix == nil {
		return 0xFF
	}
	return m.Pix[y*m.W+x]
}

// FromImage splits an image into a pixel grid and its alpha mask.
// Channels are taken non-premultiplied so transparent pixels keep
// whatever color they carry.
func FromImage(img image.Image) (Grid, AlphaMask) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	g := NewGrid(w, h)
	mask := AlphaMask{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h),
	}
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			g.SetRGB(x, y, c.R, c.G, c.B)
			mask.Pix[y*w+x] = c.A
		}
	}
	return g, mask
}

// Image recomposites the grid with an alpha mask into an NRGBA image.
// A zero mask yields a fully opaque image.
func (g Grid) Image(mask AlphaMask) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	for y := range g.H {
		for x := range g.W {
			r, gr, b := g.RGB(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: gr, B: b, A: mask.At(x, y)})
		}
	}
	return img
}
