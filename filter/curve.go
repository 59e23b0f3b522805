package filter

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

// CurvePoint is one tone-curve control point, input and output both in
// [0, 255].
type CurvePoint struct {
	In, Out float64
}

// ToneCurve maps channel values through a monotone cubic spline fitted
// to its control points, baked into a 256-entry lookup table.
type ToneCurve struct {
	lut [256]uint8
}

// NewToneCurve fits a curve through the given control points. Points
// are sorted by input; at least two with distinct inputs are required.
// Endpoints (0 and 255) are pinned to identity when not supplied.
func NewToneCurve(points []CurvePoint) (*ToneCurve, error) {
	pts := make([]CurvePoint, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].In < pts[j].In })

	if len(pts) == 0 || pts[0].In > 0 {
		pts = append([]CurvePoint{{In: 0, Out: 0}}, pts...)
	}
	if pts[len(pts)-1].In < 255 {
		pts = append(pts, CurvePoint{In: 255, Out: 255})
	}

	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		if len(xs) > 0 && p.In == xs[len(xs)-1] {
			return nil, fmt.Errorf("duplicate curve input %g", p.In)
		}
		if p.In < 0 || p.In > 255 || p.Out < 0 || p.Out > 255 {
			return nil, fmt.Errorf("curve point (%g, %g) out of range", p.In, p.Out)
		}
		xs = append(xs, p.In)
		ys = append(ys, p.Out)
	}

	// Fritsch-Butland keeps the spline monotone between control
	// points, so the curve cannot overshoot the channel range.
	var spline interp.FritschButland
	if err := spline.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("could not fit tone curve: %w", err)
	}

	tc := &ToneCurve{}
	for i := range tc.lut {
		tc.lut[i] = clamp(spline.Predict(float64(i)))
	}
	return tc, nil
}

// Apply runs every channel of the grid through the curve.
func (tc *ToneCurve) Apply(g quant.Grid) {
	applyLUT(g, &tc.lut)
}
