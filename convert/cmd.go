// Package convert implements the CLI command that turns ordinary
// images into palette-constrained pixel art: decode, optional resize
// and pre-filters, quantization with dithering, then encode.
package convert

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/Dawnology/WplacePixelConverter/filter"
	"github.com/Dawnology/WplacePixelConverter/palette"
	"github.com/Dawnology/WplacePixelConverter/parallel"
	"github.com/Dawnology/WplacePixelConverter/quant"
)

type CLICmd struct {
	Scan string `help:"Source folder to scan" default:"."`
	Dest string `help:"Destination folder for converted pictures. Relative to scan dir if not absolute." default:"converted"`

	Palette        string  `help:"Palette name (wplace, bw, gray16, vga16), RIFF .pal file, or hex color list file" default:"wplace" group:"quantize"`
	Method         string  `help:"Dither method" enum:"none,floyd-steinberg,jarvis,stucki,burkes,atkinson,sierra-lite,sierra2,sierra3,bayer,halftone,random" default:"floyd-steinberg" group:"quantize"`
	Metric         string  `help:"Color distance metric" enum:"rgb,compuphase,lab" default:"lab" group:"quantize"`
	Strength       float64 `help:"Error diffusion strength" default:"1.0" group:"quantize"`
	Intensity      int     `help:"Threshold/noise amplitude for bayer, halftone and random" default:"32" group:"quantize"`
	Serpentine     bool    `help:"Alternate scan direction per row" group:"quantize"`
	AlphaThreshold int     `help:"Pixels with alpha below this are left untouched" default:"1" group:"quantize"`

	Resize bool `help:"Fit images within --width x --height before converting" group:"prefilter"`
	Width  int  `help:"Max width" group:"prefilter"`
	Height int  `help:"Max height" group:"prefilter"`

	Brightness int     `help:"Brightness offset, -255..255" group:"prefilter"`
	Contrast   float64 `help:"Contrast factor, 1.0 = unchanged" default:"1.0" group:"prefilter"`
	Saturation float64 `help:"Saturation factor, 1.0 = unchanged" default:"1.0" group:"prefilter"`
	Sharpen    float64 `help:"Unsharp amount, 0 = off" group:"prefilter"`
	Curve      string  `help:"Tone curve control points, e.g. 0:0,96:80,255:255" group:"prefilter"`

	Format string `help:"Output format. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"png"`
	Zip    string `help:"If set, bundle all converted outputs into this ZIP archive"`

	pal   quant.Palette     `kong:"-"`
	cfg   quant.Config      `kong:"-"`
	curve *filter.ToneCurve `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		switch {
		case c.Width < 0:
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case c.Height < 0:
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case c.Width == 0 && c.Height == 0:
			return fmt.Errorf("no resize dimensions given")
		}
	}

	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		return fmt.Errorf("alpha threshold out of range: %d", c.AlphaThreshold)
	}

	if c.pal, err = palette.Load(c.Palette); err != nil {
		return err
	}

	c.cfg = quant.Config{
		Strength:       c.Strength,
		AlphaThreshold: uint8(c.AlphaThreshold),
		Serpentine:     c.Serpentine,
		Intensity:      c.Intensity,
	}
	if c.cfg.Method, err = quant.ParseMethod(c.Method); err != nil {
		return err
	}
	if c.cfg.Metric, err = quant.ParseMetric(c.Metric); err != nil {
		return err
	}

	if c.Curve != "" {
		points, err := parseCurve(c.Curve)
		if err != nil {
			return fmt.Errorf("invalid tone curve %q: %w", c.Curve, err)
		}
		if c.curve, err = filter.NewToneCurve(points); err != nil {
			return fmt.Errorf("invalid tone curve %q: %w", c.Curve, err)
		}
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				imgFile, err := os.Open(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not open image", "error", err)
					return
				}

				img, imgType, err := image.Decode(imgFile)
				if cerr := imgFile.Close(); cerr != nil {
					logger.Error("could not close image", "error", cerr)
				}
				if err != nil {
					errCount.Add(1)
					logger.Error("could not decode image", "error", err)
					return
				}

				out, err := c.process(logger, img)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not convert image", "error", err)
					return
				}

				if err = save(out, imgType, c.Format, c.Dest, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not save image", "dir", c.Dest, "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if c.Zip != "" && processed > 0 {
		if err := bundle(c.Dest, c.Zip); err != nil {
			return fmt.Errorf("could not bundle outputs: %w", err)
		}
		slog.Info("bundled outputs", "archive", c.Zip)
	}

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

// process runs the full per-image pipeline: resize, pre-filters,
// quantization, alpha recomposite.
func (c *CLICmd) process(logger *slog.Logger, img image.Image) (image.Image, error) {
	var err error
	if c.Resize {
		if img, err = resize(logger, img, c.Width, c.Height); err != nil {
			return nil, err
		}
	}

	grid, mask := quant.FromImage(img)

	filter.Brightness(grid, c.Brightness)
	filter.Contrast(grid, c.Contrast)
	filter.Saturation(grid, c.Saturation)
	filter.Sharpen(grid, c.Sharpen)
	if c.curve != nil {
		c.curve.Apply(grid)
	}

	cfg := c.cfg
	cfg.Progress = func(done, total int) {
		logger.Debug("quantizing", "rows", done, "total", total)
	}

	logger.Info("applying palette", "colors", c.pal.Len(), "method", cfg.Method)
	out, err := quant.Quantize(context.Background(), grid, mask, c.pal, cfg)
	if err != nil {
		return nil, err
	}
	return out.Image(mask), nil
}

func parseCurve(s string) ([]filter.CurvePoint, error) {
	var points []filter.CurvePoint
	for _, part := range strings.Split(s, ",") {
		in, out, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("point %q is not in:out", part)
		}
		x, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return nil, fmt.Errorf("bad input value %q: %w", in, err)
		}
		y, err := strconv.ParseFloat(out, 64)
		if err != nil {
			return nil, fmt.Errorf("bad output value %q: %w", out, err)
		}
		points = append(points, filter.CurvePoint{In: x, Out: y})
	}
	return points, nil
}
