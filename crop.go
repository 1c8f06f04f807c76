package quiltscan

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/quiltscan/utils"
)

// CenteredRect returns the rectangle of a w x h frame which keeps the xcrop and ycrop
// fractions of the width and height, centered on the frame.
// The crop size is floored and the fractions are clamped to [0, 1].
func CenteredRect(w, h int, xcrop, ycrop float64) image.Rectangle {
	xcrop = utils.Clamp(xcrop, 0, 1)
	ycrop = utils.Clamp(ycrop, 0, 1)

	cw := int(math.Floor(float64(w) * xcrop))
	ch := int(math.Floor(float64(h) * ycrop))

	x0 := (w - cw) / 2
	y0 := (h - ch) / 2

	return image.Rect(x0, y0, x0+cw, y0+ch)
}

// Crop cuts out the centered region of img defined by the crop fractions.
// The returned image is an independent copy with its min-point at (0, 0).
func Crop(img image.Image, xcrop, ycrop float64) *image.NRGBA {
	b := img.Bounds()
	rect := CenteredRect(b.Dx(), b.Dy(), xcrop, ycrop).Add(b.Min)

	return imaging.Crop(img, rect)
}
