package quant

import (
	"context"
	"math"
)

// diffusePass runs weighted-kernel error diffusion over g in place.
//
// The grid is both the read source for not-yet-visited pixels and the
// write target: each pixel is read (with any error already folded in),
// snapped to its nearest palette color, and the residual is spread to
// unvisited neighbors. That read-before-write ordering makes the pass
// strictly sequential; parallelizing it would change the output.
func diffusePass(ctx context.Context, g Grid, mask AlphaMask, m *matcher, k Kernel, cfg Config) error {
	forward := k
	backward := k.mirrored()
	every := max(1, g.H/50)

	for y := range g.H {
		if err := ctx.Err(); err != nil {
			return err
		}
		ltr := !cfg.Serpentine || y%2 == 0
		taps := forward.taps
		if !ltr {
			taps = backward.taps
		}
		if ltr {
			for x := 0; x < g.W; x++ {
				diffuseStep(g, mask, m, taps, k.denom, cfg, x, y)
			}
		} else {
			for x := g.W - 1; x >= 0; x-- {
				diffuseStep(g, mask, m, taps, k.denom, cfg, x, y)
			}
		}
		reportProgress(cfg, y+1, g.H, every)
	}
	return nil
}

func diffuseStep(g Grid, mask AlphaMask, m *matcher, taps []kernelTap, denom int, cfg Config, x, y int) {
	if mask.At(x, y) < cfg.AlphaThreshold {
		return
	}

	r, gr, b := g.RGB(x, y)
	chosen := m.Nearest(int(r), int(gr), int(b))
	g.SetRGB(x, y, chosen.R, chosen.G, chosen.B)

	er := (float64(r) - float64(chosen.R)) * cfg.Strength
	eg := (float64(gr) - float64(chosen.G)) * cfg.Strength
	eb := (float64(b) - float64(chosen.B)) * cfg.Strength

	for _, t := range taps {
		tx, ty := x+t.dx, y+t.dy
		if tx < 0 || tx >= g.W || ty >= g.H {
			continue
		}
		// A masked-out target's share of the error is dropped, not
		// redistributed: energy is not conserved across alpha edges.
		if mask.At(tx, ty) < cfg.AlphaThreshold {
			continue
		}
		f := float64(t.weight) / float64(denom)
		off := g.Offset(tx, ty)
		g.Pix[off] = clampChannel(float64(g.Pix[off]) + er*f)
		g.Pix[off+1] = clampChannel(float64(g.Pix[off+1]) + eg*f)
		g.Pix[off+2] = clampChannel(float64(g.Pix[off+2]) + eb*f)
	}
}

func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func reportProgress(cfg Config, done, total, every int) {
	if cfg.Progress == nil {
		return
	}
	if done%every == 0 || done == total {
		cfg.Progress(done, total)
	}
}
