package quant

import (
	"fmt"
	"math/rand/v2"
)

// Method names a quantization pass.
type Method string

const (
	// MethodNone maps each pixel to its nearest palette color with no
	// dithering at all.
	MethodNone Method = "none"

	// Error diffusion methods.
	MethodFloydSteinberg Method = "floyd-steinberg"
	MethodJarvis         Method = "jarvis"
	MethodStucki         Method = "stucki"
	MethodBurkes         Method = "burkes"
	MethodAtkinson       Method = "atkinson"
	MethodSierraLite     Method = "sierra-lite"
	MethodSierra2        Method = "sierra2"
	MethodSierra3        Method = "sierra3"

	// Ordered (threshold matrix) methods.
	MethodBayer    Method = "bayer"
	MethodHalftone Method = "halftone"

	// MethodRandom adds uniform per-channel noise before matching.
	MethodRandom Method = "random"
)

// Methods lists every method name, diffusion kernels first.
func Methods() []string {
	return []string{
		string(MethodNone),
		string(MethodFloydSteinberg),
		string(MethodJarvis),
		string(MethodStucki),
		string(MethodBurkes),
		string(MethodAtkinson),
		string(MethodSierraLite),
		string(MethodSierra2),
		string(MethodSierra3),
		string(MethodBayer),
		string(MethodHalftone),
		string(MethodRandom),
	}
}

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if m == MethodNone || m == MethodBayer || m == MethodHalftone || m == MethodRandom {
		return m, nil
	}
	if _, ok := kernels[m]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unsupported dither method: %q", s)
}

// Config drives a quantization pass.
//
// Strength and Intensity are not range-checked: values outside their
// nominal ranges overshoot on purpose (only final channel writes are
// clamped), which is creative control rather than a defect.
type Config struct {
	// Method selects the pass; see the Method constants.
	Method Method
	// Metric selects the color distance; empty means MetricLab.
	Metric Metric
	// Strength multiplies the diffused error. Nominal 0.0 to 2.0.
	Strength float64
	// AlphaThreshold excludes pixels whose alpha is below it. Such
	// pixels are never read, written, or used as diffusion targets.
	AlphaThreshold uint8
	// Serpentine alternates scan direction per row.
	Serpentine bool
	// Intensity is the threshold/noise amplitude for the ordered and
	// random methods, in channel units.
	Intensity int
	// Rand supplies the noise source for MethodRandom. Nil uses the
	// process-wide source; seed one for reproducible output.
	Rand *rand.Rand
	// Progress, if set, is called with (rowsDone, totalRows) at a
	// throttled cadence. It must return quickly and must not touch the
	// grid being scanned.
	Progress func(done, total int)
}

// DefaultConfig is Floyd-Steinberg at full strength under the Lab
// metric, raster scan, with nothing skipped.
func DefaultConfig() Config {
	return Config{
		Method:    MethodFloydSteinberg,
		Metric:    MetricLab,
		Strength:  1.0,
		Intensity: 32,
	}
}

func (c Config) metric() Metric {
	if c.Metric == "" {
		return MetricLab
	}
	return c.Metric
}
