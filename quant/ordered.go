package quant

import "context"

// orderedRows is the progress cadence for the stateless passes.
const orderedRows = 25

// Threshold matrices in their classic integer form. They are tiled
// across the grid by (y mod N, x mod N) and normalized to [-0.5, 0.5)
// before use.
var (
	bayer4 = newDitherMatrix([][]int{
		{0, 8, 2, 10},
		{12, 4, 14, 6},
		{3, 11, 1, 9},
		{15, 7, 13, 5},
	})

	halftone8 = newDitherMatrix([][]int{
		{24, 10, 12, 26, 35, 47, 49, 37},
		{8, 0, 2, 14, 45, 59, 61, 51},
		{22, 6, 4, 16, 43, 57, 63, 53},
		{30, 20, 18, 28, 33, 41, 55, 39},
		{34, 46, 48, 36, 25, 11, 13, 27},
		{44, 58, 60, 50, 9, 1, 3, 15},
		{42, 56, 62, 52, 23, 7, 5, 17},
		{32, 40, 54, 38, 31, 21, 19, 29},
	})
)

type ditherMatrix struct {
	n    int
	cell [][]float64
}

func newDitherMatrix(m [][]int) ditherMatrix {
	n := len(m)
	span := float64(n * n)
	cell := make([][]float64, n)
	for y, row := range m {
		cell[y] = make([]float64, n)
		for x, v := range row {
			cell[y][x] = float64(v)/span - 0.5
		}
	}
	return ditherMatrix{n: n, cell: cell}
}

// offsetAt returns the channel offset for the pixel at absolute (x, y).
// It depends only on the coordinates, never on neighboring pixels.
func (dm ditherMatrix) offsetAt(x, y, intensity int) float64 {
	return dm.cell[y%dm.n][x%dm.n] * float64(intensity)
}

// orderedPass applies threshold-matrix dithering. Stateless per pixel:
// the offset is added before the nearest-color lookup and never written
// back, so only the matched palette color lands in the grid.
func orderedPass(ctx context.Context, g Grid, mask AlphaMask, m *matcher, dm ditherMatrix, cfg Config) error {
	for y := range g.H {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := range g.W {
			if mask.At(x, y) < cfg.AlphaThreshold {
				continue
			}
			r, gr, b := g.RGB(x, y)
			t := dm.offsetAt(x, y, cfg.Intensity)
			chosen := m.Nearest(
				clampLookup(float64(r)+t),
				clampLookup(float64(gr)+t),
				clampLookup(float64(b)+t),
			)
			g.SetRGB(x, y, chosen.R, chosen.G, chosen.B)
		}
		reportProgress(cfg, y+1, g.H, orderedRows)
	}
	return nil
}

// clampLookup bounds a perturbed channel for the nearest-color probe.
// Nothing is written back; this only keeps the Lab conversion sane.
func clampLookup(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}
