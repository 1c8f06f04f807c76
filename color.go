package quiltscan

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HLS holds a color in the 8-bit hue, lightness, saturation representation used by OpenCV:
// hue is in the [0, 180] range, lightness and saturation are in the [0, 255] range.
// The field order follows the channel order of the conversion.
type HLS struct {
	Hue        float64
	Lightness  float64
	Saturation float64
}

const (
	inv255 = float32(1.0 / 255.0)
	// fltEpsilon is the machine epsilon of float32.
	fltEpsilon = float32(1.1920929e-07)
)

// ToHLS converts a single 8-bit RGB pixel to HLS, reproducing the single precision
// arithmetic of OpenCV's BGR2HLS conversion so the results match it bit for bit.
// The explicit float32 conversions keep the compiler from fusing the multiply-adds.
func ToHLS(r, g, b uint8) HLS {
	fr := float32(float32(r) * inv255)
	fg := float32(float32(g) * inv255)
	fb := float32(float32(b) * inv255)

	vmax := max(fr, fg, fb)
	vmin := min(fr, fg, fb)
	diff := vmax - vmin
	l := float32((vmax + vmin) * 0.5)

	var h, s float32
	if diff > fltEpsilon {
		if l < 0.5 {
			s = diff / (vmax + vmin)
		} else {
			s = diff / (2 - vmax - vmin)
		}
		diff = 60 / diff

		switch vmax {
		case fr:
			h = float32((fg - fb) * diff)
		case fg:
			h = float32((fb-fr)*diff) + 120
		default:
			h = float32((fr-fg)*diff) + 240
		}
		if h < 0 {
			h += 360
		}
	}

	return HLS{
		Hue:        saturate8(float32(h * 0.5)),
		Lightness:  saturate8(float32(l * 255)),
		Saturation: saturate8(float32(s * 255)),
	}
}

// saturate8 rounds v half to even and clamps it to the 8-bit range.
func saturate8(v float32) float64 {
	return math.Min(math.Max(math.RoundToEven(float64(v)), 0), 255)
}

// Hex returns the sRGB hex notation of the color, e.g. #808080 for mid gray.
func (c HLS) Hex() string {
	return colorful.Hsl(c.Hue*2, c.Saturation/255, c.Lightness/255).Clamped().Hex()
}

// Summarize converts every pixel of img to HLS and returns the arithmetic mean of each channel.
// An empty image results in the zero value.
func Summarize(img image.Image) HLS {
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = imaging.Clone(img)
	}
	b := src.Bounds()
	n := b.Dx() * b.Dy()
	if n == 0 {
		return HLS{}
	}

	var sum HLS
	for y := 0; y < b.Dy(); y++ {
		i := src.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			px := ToHLS(src.Pix[i+0], src.Pix[i+1], src.Pix[i+2])
			sum.Hue += px.Hue
			sum.Lightness += px.Lightness
			sum.Saturation += px.Saturation
			i += 4
		}
	}

	return HLS{
		Hue:        sum.Hue / float64(n),
		Lightness:  sum.Lightness / float64(n),
		Saturation: sum.Saturation / float64(n),
	}
}
