package filter

import (
	"bytes"
	"testing"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

func testGrid() quant.Grid {
	g := quant.NewGrid(3, 2)
	vals := []uint8{0, 30, 60, 90, 120, 150, 180, 210, 240, 255, 10, 200, 5, 250, 128, 64, 32, 16}
	copy(g.Pix, vals)
	return g
}

func TestBrightnessShiftAndClamp(t *testing.T) {
	g := quant.NewGrid(2, 1)
	copy(g.Pix, []uint8{0, 100, 250, 10, 128, 255})
	Brightness(g, 20)
	want := []uint8{20, 120, 255, 30, 148, 255}
	if !bytes.Equal(g.Pix, want) {
		t.Errorf("Pix = %v, want %v", g.Pix, want)
	}

	Brightness(g, -40)
	want = []uint8{0, 80, 215, 0, 108, 215}
	if !bytes.Equal(g.Pix, want) {
		t.Errorf("after -40: Pix = %v, want %v", g.Pix, want)
	}
}

func TestContrastIdentity(t *testing.T) {
	g := testGrid()
	orig := g.Clone()
	Contrast(g, 1.0)
	if !bytes.Equal(g.Pix, orig.Pix) {
		t.Error("Contrast(1.0) changed pixels")
	}
}

func TestContrastCollapsesToGray(t *testing.T) {
	g := testGrid()
	Contrast(g, 0)
	for i, v := range g.Pix {
		if v != 128 {
			t.Fatalf("Pix[%d] = %d, want 128", i, v)
		}
	}
}

func TestContrastSpreads(t *testing.T) {
	g := quant.NewGrid(1, 1)
	copy(g.Pix, []uint8{100, 128, 200})
	Contrast(g, 2.0)
	want := []uint8{72, 128, 255}
	if !bytes.Equal(g.Pix, want) {
		t.Errorf("Pix = %v, want %v", g.Pix, want)
	}
}

func TestSaturationZeroIsGrayscale(t *testing.T) {
	g := testGrid()
	Saturation(g, 0)
	for i := 0; i < len(g.Pix); i += 3 {
		r, gr, b := g.Pix[i], g.Pix[i+1], g.Pix[i+2]
		if r != gr || gr != b {
			t.Fatalf("pixel %d = (%d,%d,%d), want gray", i/3, r, gr, b)
		}
	}
}

func TestSaturationIdentity(t *testing.T) {
	g := testGrid()
	orig := g.Clone()
	Saturation(g, 1.0)
	if !bytes.Equal(g.Pix, orig.Pix) {
		t.Error("Saturation(1.0) changed pixels")
	}
}

func TestSharpenFlatRegionUnchanged(t *testing.T) {
	g := quant.NewGrid(4, 4)
	for i := range g.Pix {
		g.Pix[i] = 90
	}
	Sharpen(g, 1.5)
	for i, v := range g.Pix {
		if v != 90 {
			t.Fatalf("Pix[%d] = %d, flat region should be untouched", i, v)
		}
	}
}

func TestSharpenIncreasesEdgeContrast(t *testing.T) {
	// Vertical step edge: dark left half, bright right half.
	g := quant.NewGrid(4, 1)
	copy(g.Pix, []uint8{
		50, 50, 50, 50, 50, 50,
		200, 200, 200, 200, 200, 200,
	})
	Sharpen(g, 0.5)
	dark, _, _ := g.RGB(1, 0)
	bright, _, _ := g.RGB(2, 0)
	if dark >= 50 {
		t.Errorf("dark side of edge = %d, want < 50", dark)
	}
	if bright <= 200 {
		t.Errorf("bright side of edge = %d, want > 200", bright)
	}
}

func TestToneCurveIdentity(t *testing.T) {
	tc, err := NewToneCurve([]CurvePoint{{0, 0}, {255, 255}})
	if err != nil {
		t.Fatal(err)
	}
	g := testGrid()
	orig := g.Clone()
	tc.Apply(g)
	if !bytes.Equal(g.Pix, orig.Pix) {
		t.Error("identity curve changed pixels")
	}
}

func TestToneCurvePinsEndpoints(t *testing.T) {
	// A single midpoint; 0 and 255 are pinned automatically.
	tc, err := NewToneCurve([]CurvePoint{{128, 180}})
	if err != nil {
		t.Fatal(err)
	}
	g := quant.NewGrid(3, 1)
	copy(g.Pix, []uint8{0, 128, 255, 0, 0, 0})
	tc.Apply(g)
	if g.Pix[0] != 0 || g.Pix[2] != 255 {
		t.Errorf("endpoints mapped to %d and %d, want 0 and 255", g.Pix[0], g.Pix[2])
	}
	if g.Pix[1] != 180 {
		t.Errorf("midpoint mapped to %d, want 180", g.Pix[1])
	}
}

func TestToneCurveMonotone(t *testing.T) {
	tc, err := NewToneCurve([]CurvePoint{{64, 32}, {192, 230}})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < 256; i++ {
		if tc.lut[i] < tc.lut[i-1] {
			t.Fatalf("lut not monotone at %d: %d -> %d", i, tc.lut[i-1], tc.lut[i])
		}
	}
}

func TestToneCurveRejectsBadPoints(t *testing.T) {
	if _, err := NewToneCurve([]CurvePoint{{64, 10}, {64, 200}}); err == nil {
		t.Error("expected error for duplicate inputs")
	}
	if _, err := NewToneCurve([]CurvePoint{{300, 10}}); err == nil {
		t.Error("expected error for out-of-range input")
	}
	if _, err := NewToneCurve([]CurvePoint{{100, -5}}); err == nil {
		t.Error("expected error for out-of-range output")
	}
}
