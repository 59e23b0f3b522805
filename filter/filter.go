// Package filter holds the per-pixel adjustments applied before
// quantization: brightness, contrast, saturation, sharpening, and a
// spline tone curve. All filters mutate the grid in place; run them on
// a working copy, not on the caller's original.
package filter

import (
	"math"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

// Brightness shifts every channel by delta.
func Brightness(g quant.Grid, delta int) {
	if delta == 0 {
		return
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = clamp(float64(i) + float64(delta))
	}
	applyLUT(g, &lut)
}

// Contrast scales channel distance from mid-gray. 1.0 is identity,
// 0.0 collapses to flat gray.
func Contrast(g quant.Grid, amount float64) {
	if amount == 1.0 {
		return
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = clamp((float64(i)-128)*amount + 128)
	}
	applyLUT(g, &lut)
}

// Saturation scales channel distance from the pixel's Rec. 601 luma.
// 1.0 is identity, 0.0 is grayscale.
func Saturation(g quant.Grid, amount float64) {
	if amount == 1.0 {
		return
	}
	for i := 0; i < len(g.Pix); i += 3 {
		r := float64(g.Pix[i])
		gr := float64(g.Pix[i+1])
		b := float64(g.Pix[i+2])
		luma := 0.299*r + 0.587*gr + 0.114*b
		g.Pix[i] = clamp(luma + (r-luma)*amount)
		g.Pix[i+1] = clamp(luma + (gr-luma)*amount)
		g.Pix[i+2] = clamp(luma + (b-luma)*amount)
	}
}

// Sharpen applies an unsharp cross kernel: center 1+4a, orthogonal
// neighbors -a. Border pixels reuse the nearest in-bounds neighbor.
func Sharpen(g quant.Grid, amount float64) {
	if amount == 0 {
		return
	}
	src := g.Clone()
	center := 1 + 4*amount
	for y := range g.H {
		for x := range g.W {
			for ch := range 3 {
				v := center * channelAt(src, x, y, ch)
				v -= amount * channelAt(src, x-1, y, ch)
				v -= amount * channelAt(src, x+1, y, ch)
				v -= amount * channelAt(src, x, y-1, ch)
				v -= amount * channelAt(src, x, y+1, ch)
				g.Pix[g.Offset(x, y)+ch] = clamp(v)
			}
		}
	}
}

func channelAt(g quant.Grid, x, y, ch int) float64 {
	x = min(max(x, 0), g.W-1)
	y = min(max(y, 0), g.H-1)
	return float64(g.Pix[g.Offset(x, y)+ch])
}

func applyLUT(g quant.Grid, lut *[256]uint8) {
	for i, v := range g.Pix {
		g.Pix[i] = lut[v]
	}
}

func clamp(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
