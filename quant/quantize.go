package quant

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned when quantization is requested against a
// palette with no entries. There is no fallback color; the check runs
// once, before any pixel is touched.
var ErrEmptyPalette = errors.New("palette has no colors")

// Quantize maps g onto the palette and returns a new grid of the same
// dimensions. The input grid is never modified; the alpha mask is
// read-only and pixels below cfg.AlphaThreshold pass through untouched.
// Alpha itself is not part of the result; recomposite it with
// Grid.Image or equivalent.
//
// The pass runs to completion synchronously on the calling goroutine.
// Cancellation via ctx is honored between rows, never mid-row.
func Quantize(ctx context.Context, g Grid, mask AlphaMask, pal Palette, cfg Config) (Grid, error) {
	if pal.Len() == 0 {
		return Grid{}, ErrEmptyPalette
	}
	if mask.Pix != nil && (mask.W != g.W || mask.H != g.H) {
		return Grid{}, fmt.Errorf("alpha mask is %dx%d, grid is %dx%d", mask.W, mask.H, g.W, g.H)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	out := g.Clone()
	m := newMatcher(pal, cfg.metric())

	var err error
	switch cfg.Method {
	case MethodNone, "":
		err = directPass(ctx, out, mask, m, cfg)
	case MethodBayer:
		err = orderedPass(ctx, out, mask, m, bayer4, cfg)
	case MethodHalftone:
		err = orderedPass(ctx, out, mask, m, halftone8, cfg)
	case MethodRandom:
		err = randomPass(ctx, out, mask, m, cfg)
	default:
		k, ok := kernels[cfg.Method]
		if !ok {
			return Grid{}, fmt.Errorf("unsupported dither method: %q", cfg.Method)
		}
		err = diffusePass(ctx, out, mask, m, k, cfg)
	}
	if err != nil {
		return Grid{}, err
	}
	return out, nil
}

// directPass is the no-dither pipeline: nearest color only, no offset,
// no error feedback.
func directPass(ctx context.Context, g Grid, mask AlphaMask, m *matcher, cfg Config) error {
	every := max(1, g.H/50)
	for y := range g.H {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := range g.W {
			if mask.At(x, y) < cfg.AlphaThreshold {
				continue
			}
			r, gr, b := g.RGB(x, y)
			chosen := m.Nearest(int(r), int(gr), int(b))
			g.SetRGB(x, y, chosen.R, chosen.G, chosen.B)
		}
		reportProgress(cfg, y+1, g.H, every)
	}
	return nil
}
