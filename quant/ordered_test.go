package quant

import (
	"context"
	"testing"
)

func TestDitherMatrixNormalization(t *testing.T) {
	for _, tt := range []struct {
		name string
		dm   ditherMatrix
	}{
		{"bayer4", bayer4},
		{"halftone8", halftone8},
	} {
		span := float64(tt.dm.n * tt.dm.n)
		seen := map[float64]bool{}
		for _, row := range tt.dm.cell {
			for _, v := range row {
				if v < -0.5 || v >= 0.5 {
					t.Errorf("%s: cell %v outside [-0.5, 0.5)", tt.name, v)
				}
				seen[v] = true
			}
		}
		if len(seen) != tt.dm.n*tt.dm.n {
			t.Errorf("%s: %d distinct cells, want %d", tt.name, len(seen), tt.dm.n*tt.dm.n)
		}
		if !seen[-0.5] || !seen[(span-1)/span-0.5] {
			t.Errorf("%s: threshold range does not span 0..%d", tt.name, int(span)-1)
		}
	}
}

func TestOrderedStateless(t *testing.T) {
	// Each pixel's result must be a pure function of its own value and
	// coordinates. Recompute every pixel in isolation and compare with
	// the full-grid pass.
	vals := make([]uint8, 8*8)
	for i := range vals {
		vals[i] = uint8(i*3 + 20)
	}
	g := grayGrid(8, 8, vals)
	cfg := DefaultConfig()
	cfg.Method = MethodBayer
	cfg.Intensity = 48

	out, err := Quantize(context.Background(), g, AlphaMask{}, bwPalette(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	m := newMatcher(bwPalette(), cfg.Metric)
	for y := range g.H {
		for x := range g.W {
			r, gr, b := g.RGB(x, y)
			off := bayer4.offsetAt(x, y, cfg.Intensity)
			want := m.Nearest(
				clampLookup(float64(r)+off),
				clampLookup(float64(gr)+off),
				clampLookup(float64(b)+off),
			)
			gotR, gotG, gotB := out.RGB(x, y)
			if got := (RGB{R: gotR, G: gotG, B: gotB}); got != want {
				t.Fatalf("pixel (%d,%d) = %v, isolated lookup gives %v", x, y, got, want)
			}
		}
	}
}

func TestOrderedBreaksFlatRegion(t *testing.T) {
	// A flat mid gray must come out as a mix of black and white when the
	// threshold amplitude is large enough to tip the Lab decision both
	// ways across the tile.
	vals := make([]uint8, 4*4)
	for i := range vals {
		vals[i] = 118
	}
	g := grayGrid(4, 4, vals)
	cfg := DefaultConfig()
	cfg.Method = MethodBayer
	cfg.Intensity = 128

	out, err := Quantize(context.Background(), g, AlphaMask{}, bwPalette(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	var blacks, whites int
	for y := range out.H {
		for x := range out.W {
			if r, _, _ := out.RGB(x, y); r == 0 {
				blacks++
			} else {
				whites++
			}
		}
	}
	if blacks == 0 || whites == 0 {
		t.Errorf("flat region collapsed: %d black, %d white", blacks, whites)
	}
}
