package convert

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// resize scales an image to fit within width x height, preserving the
// aspect ratio. A zero dimension means unconstrained on that axis.
func resize(logger *slog.Logger, img image.Image, width, height int) (image.Image, error) {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	destWidth := float64(width)
	if destWidth == 0 {
		destWidth = srcWidth
	}
	destHeight := float64(height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	scale := min(destWidth/srcWidth, destHeight/srcHeight)
	if scale == 1 {
		return img, nil
	}

	destBounds := image.Rect(0, 0,
		int(math.Round(srcWidth*scale)),
		int(math.Round(srcHeight*scale)))

	logger.Info("resizing", "width", destBounds.Dx(), "height", destBounds.Dy())
	dest := image.NewNRGBA(destBounds)
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Src, nil)

	return dest, nil
}
