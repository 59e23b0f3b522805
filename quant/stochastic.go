package quant

import (
	"context"
	"math/rand/v2"
)

// randomPass perturbs each channel with independent uniform noise in
// [-intensity, +intensity] before the nearest-color lookup. With
// cfg.Rand unset the process-wide source is used and output is not
// reproducible; seed a generator for deterministic results.
func randomPass(ctx context.Context, g Grid, mask AlphaMask, m *matcher, cfg Config) error {
	sample := rand.Float64
	if cfg.Rand != nil {
		sample = cfg.Rand.Float64
	}
	amp := float64(cfg.Intensity)

	for y := range g.H {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := range g.W {
			if mask.At(x, y) < cfg.AlphaThreshold {
				continue
			}
			r, gr, b := g.RGB(x, y)
			chosen := m.Nearest(
				clampLookup(float64(r)+(sample()*2-1)*amp),
				clampLookup(float64(gr)+(sample()*2-1)*amp),
				clampLookup(float64(b)+(sample()*2-1)*amp),
			)
			g.SetRGB(x, y, chosen.R, chosen.G, chosen.B)
		}
		reportProgress(cfg, y+1, g.H, orderedRows)
	}
	return nil
}
