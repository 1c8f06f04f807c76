package quiltscan

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_ToHLS(t *testing.T) {
	testCases := []struct {
		name    string
		r, g, b uint8
		want    HLS
	}{
		{"black", 0, 0, 0, HLS{Hue: 0, Lightness: 0, Saturation: 0}},
		{"white", 255, 255, 255, HLS{Hue: 0, Lightness: 255, Saturation: 0}},
		{"mid gray", 128, 128, 128, HLS{Hue: 0, Lightness: 128, Saturation: 0}},
		{"red", 255, 0, 0, HLS{Hue: 0, Lightness: 128, Saturation: 255}},
		{"yellow", 255, 255, 0, HLS{Hue: 30, Lightness: 128, Saturation: 255}},
		{"green", 0, 255, 0, HLS{Hue: 60, Lightness: 128, Saturation: 255}},
		{"teal", 0, 128, 128, HLS{Hue: 90, Lightness: 64, Saturation: 255}},
		{"blue", 0, 0, 255, HLS{Hue: 120, Lightness: 128, Saturation: 255}},
		{"hue wraps to 180", 255, 0, 1, HLS{Hue: 180, Lightness: 128, Saturation: 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHLS(tc.r, tc.g, tc.b))
		})
	}
}

// Reference values of OpenCV's COLOR_RGB2HLS conversion of uint8 pixels.
// Several of them differ by one from a double precision conversion.
func TestColor_ToHLSMatchesOpenCV(t *testing.T) {
	testCases := []struct {
		r, g, b uint8
		want    HLS
	}{
		{0, 0, 13, HLS{Hue: 120, Lightness: 7, Saturation: 255}},
		{0, 0, 25, HLS{Hue: 120, Lightness: 13, Saturation: 255}},
		{0, 0, 105, HLS{Hue: 120, Lightness: 53, Saturation: 255}},
		{0, 105, 180, HLS{Hue: 102, Lightness: 90, Saturation: 255}},
		{3, 0, 20, HLS{Hue: 124, Lightness: 10, Saturation: 255}},
		{3, 147, 15, HLS{Hue: 62, Lightness: 75, Saturation: 245}},
		{3, 7, 65, HLS{Hue: 118, Lightness: 34, Saturation: 233}},
		{17, 0, 0, HLS{Hue: 0, Lightness: 8, Saturation: 255}},
		{1, 1, 1, HLS{Hue: 0, Lightness: 1, Saturation: 0}},
		{3, 3, 3, HLS{Hue: 0, Lightness: 3, Saturation: 0}},
		{13, 13, 13, HLS{Hue: 0, Lightness: 13, Saturation: 0}},
		{200, 40, 90, HLS{Hue: 171, Lightness: 120, Saturation: 170}},
		{12, 180, 77, HLS{Hue: 72, Lightness: 96, Saturation: 223}},
		{250, 240, 230, HLS{Hue: 15, Lightness: 240, Saturation: 170}},
		{90, 140, 200, HLS{Hue: 106, Lightness: 145, Saturation: 128}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, ToHLS(tc.r, tc.g, tc.b), "rgb(%d, %d, %d)", tc.r, tc.g, tc.b)
	}
}

func TestColor_HLSHex(t *testing.T) {
	assert.Equal(t, "#000000", HLS{}.Hex())
	assert.Equal(t, "#ffffff", HLS{Lightness: 255}.Hex())
	assert.Equal(t, "#808080", ToHLS(128, 128, 128).Hex())
	assert.Equal(t, "#0000ff", HLS{Hue: 120, Lightness: 127.5, Saturation: 255}.Hex())
}

func TestColor_SummarizeUniform(t *testing.T) {
	colors := []color.RGBA{
		{R: 128, G: 128, B: 128, A: 255},
		{R: 200, G: 40, B: 90, A: 255},
		{R: 12, G: 180, B: 77, A: 255},
		{R: 250, G: 240, B: 230, A: 255},
	}

	for _, c := range colors {
		img := uniformRGBA(37, 23, c)
		assert.Equal(t, ToHLS(c.R, c.G, c.B), Summarize(img), "color %v", c)
	}
}

func TestColor_SummarizeMean(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	avg := Summarize(img)
	assert.Equal(t, 0.0, avg.Hue)
	assert.Equal(t, 127.5, avg.Lightness)
	assert.Equal(t, 0.0, avg.Saturation)
}

func TestColor_SummarizeSubImage(t *testing.T) {
	img := uniformRGBA(10, 10, color.RGBA{R: 255, A: 255})
	for y := 5; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.SetRGBA(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	avg := Summarize(img.SubImage(image.Rect(5, 5, 10, 10)))
	assert.Equal(t, HLS{Hue: 120, Lightness: 128, Saturation: 255}, avg)
}

func TestColor_SummarizeNRGBASubImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	img.SetNRGBA(2, 3, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(3, 3, color.NRGBA{G: 255, A: 255})

	avg := Summarize(img.SubImage(image.Rect(2, 3, 4, 4)))
	assert.Equal(t, HLS{Hue: 60, Lightness: 128, Saturation: 255}, avg)
}

func TestColor_SummarizeYCbCr(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio420)
	for i := range img.Y {
		img.Y[i] = 128
	}
	for i := range img.Cb {
		img.Cb[i] = 128
		img.Cr[i] = 128
	}

	assert.Equal(t, HLS{Hue: 0, Lightness: 128, Saturation: 0}, Summarize(img))
}

func TestColor_SummarizeEmpty(t *testing.T) {
	assert.Equal(t, HLS{}, Summarize(&image.NRGBA{}))
}

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
