package quant

import (
	"fmt"
	"math"
)

// Metric selects the color distance used for nearest-palette search.
type Metric string

const (
	// MetricRGB is squared Euclidean distance in raw RGB. Cheapest,
	// least perceptually accurate.
	MetricRGB Metric = "rgb"
	// MetricCompuphase is the redmean-weighted integer approximation
	// from compuphase.com; no floating point involved.
	MetricCompuphase Metric = "compuphase"
	// MetricLab is squared Euclidean distance in CIE L*a*b* (D65).
	// The default.
	MetricLab Metric = "lab"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricRGB, MetricCompuphase, MetricLab:
		return Metric(s), nil
	case "":
		return MetricLab, nil
	}
	return "", fmt.Errorf("unsupported color metric: %q", s)
}

// matcher performs nearest-palette-color search over a fixed palette.
// Palette Lab coordinates come from the palette's own memoization; the
// probed pixel is converted fresh on every call.
type matcher struct {
	pal    Palette
	metric Metric
	labs   [][3]float64
}

func newMatcher(pal Palette, metric Metric) *matcher {
	m := &matcher{pal: pal, metric: metric}
	if metric == MetricLab {
		m.labs = pal.labs()
	}
	return m
}

// Nearest returns a copy of the palette entry closest to (r, g, b).
// Ties resolve to the first entry in palette order. Inputs are expected
// in [0, 255].
func (m *matcher) Nearest(r, g, b int) RGB {
	switch m.metric {
	case MetricRGB:
		return m.pal.At(m.nearestRGB(r, g, b))
	case MetricCompuphase:
		return m.pal.At(m.nearestCompuphase(r, g, b))
	default:
		return m.pal.At(m.nearestLab(r, g, b))
	}
}

func (m *matcher) nearestRGB(r, g, b int) int {
	best, bestDist := 0, math.MaxInt
	for i := 0; i < m.pal.Len(); i++ {
		e := m.pal.At(i)
		dr := r - int(e.R)
		dg := g - int(e.G)
		db := b - int(e.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			if d == 0 {
				return i
			}
			best, bestDist = i, d
		}
	}
	return best
}

func (m *matcher) nearestCompuphase(r, g, b int) int {
	best, bestDist := 0, math.MaxInt
	for i := 0; i < m.pal.Len(); i++ {
		e := m.pal.At(i)
		rmean := (r + int(e.R)) / 2
		dr := r - int(e.R)
		dg := g - int(e.G)
		db := b - int(e.B)
		d := ((512+rmean)*dr*dr)>>8 + 4*dg*dg + ((767-rmean)*db*db)>>8
		if d < bestDist {
			if d == 0 {
				return i
			}
			best, bestDist = i, d
		}
	}
	return best
}

func (m *matcher) nearestLab(r, g, b int) int {
	l, a, bb := rgbToLab(uint8(r), uint8(g), uint8(b))
	best := 0
	bestDist := math.MaxFloat64
	for i, e := range m.labs {
		dl := l - e[0]
		da := a - e[1]
		db := bb - e[2]
		// Square root omitted, only the ordering matters.
		d := dl*dl + da*da + db*db
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
