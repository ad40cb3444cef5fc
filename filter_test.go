package ppmfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marprok/ppm-filter/ppm"
)

// uniformImage fills an image with a single gray value on all channels.
func uniformImage(width, height int, v float32) *ppm.Image {
	img := ppm.NewImage(width, height)
	for i := range img.Pixels {
		img.Pixels[i] = ppm.Pixel{R: v, G: v, B: v}
	}

	return img
}

func TestGrayscale_LuminanceWeights(t *testing.T) {
	img := ppm.NewImage(1, 1)
	img.Set(0, 0, ppm.Pixel{R: 0.2, G: 0.4, B: 0.6})

	Grayscale(img)

	// 0.2*0.216 + 0.4*0.7125 + 0.6*0.0722
	want := float32(0.37152)
	px := img.At(0, 0)
	assert.InDelta(t, want, px.R, 1e-5)
	assert.InDelta(t, want, px.G, 1e-5)
	assert.InDelta(t, want, px.B, 1e-5)
}

func TestGrayscale_CollapsesChannels(t *testing.T) {
	img := ppm.NewImage(3, 2)
	for i := range img.Pixels {
		img.Pixels[i] = ppm.Pixel{
			R: float32(i) / 6,
			G: float32(i) / 12,
			B: float32(i) / 3,
		}
	}

	Grayscale(img)

	for i, px := range img.Pixels {
		assert.Equal(t, px.R, px.G, "pixel %d", i)
		assert.Equal(t, px.R, px.B, "pixel %d", i)
	}
}

func TestGaussianBlur_PartialSumsAtImageEdges(t *testing.T) {
	const v = 0.4
	img := uniformImage(3, 3, v)

	GaussianBlur(img)

	// Effective kernel weight per position: out-of-bounds neighbors are
	// omitted without renormalization and the current-row left neighbor
	// is subtracted, so only the left column keeps the full 3/4 sum in
	// its middle row.
	weights := [3][3]float32{
		{9.0 / 16, 1.0 / 2, 5.0 / 16},
		{3.0 / 4, 3.0 / 4, 1.0 / 2},
		{9.0 / 16, 1.0 / 2, 5.0 / 16},
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.InDelta(t, weights[y][x]*v, img.At(x, y).R, 1e-6, "pixel (%d,%d)", x, y)
		}
	}
}

func TestGaussianBlur_ReadsFromSnapshot(t *testing.T) {
	img := ppm.NewImage(3, 1)
	img.Set(0, 0, ppm.Pixel{R: 0.8, G: 0.8, B: 0.8})

	GaussianBlur(img)

	// The middle pixel must see the pre-blur value of its left
	// neighbor, not the value the blur already wrote there.
	assert.InDelta(t, 0.8/4, img.At(0, 0).R, 1e-6)
	assert.InDelta(t, -0.8/8, img.At(1, 0).R, 1e-6)
	assert.InDelta(t, 0.0, img.At(2, 0).R, 1e-6)
}

func TestSobelFilter_FlatFieldInteriorIsZero(t *testing.T) {
	img := uniformImage(3, 3, 0.7)

	SobelFilter(img)

	// The opposing gradient terms cancel only up to float32 rounding,
	// so the interior magnitude is a residual on the order of 1e-8.
	center := img.At(1, 1)
	assert.InDelta(t, 0, center.R, 1e-6)
	assert.InDelta(t, 0, center.G, 1e-6)
	assert.InDelta(t, 0, center.B, 1e-6)

	// Border pixels lose part of their neighborhood, so their
	// gradients do not cancel out.
	assert.Greater(t, img.At(0, 0).R, float32(0))
	assert.Greater(t, img.At(2, 2).R, float32(0))
}

func TestSobelFilter_ClampsMagnitude(t *testing.T) {
	img := ppm.NewImage(2, 1)
	img.Set(0, 0, ppm.Pixel{R: 1, G: 1, B: 1})

	SobelFilter(img)

	// The raw horizontal gradient at x=1 is -2, the stored magnitude
	// is capped at 1.
	px := img.At(1, 0)
	assert.Equal(t, float32(1), px.R)
	assert.Equal(t, float32(1), px.G)
	assert.Equal(t, float32(1), px.B)
}

func TestFilters_PreserveDimensions(t *testing.T) {
	img := uniformImage(5, 4, 0.3)

	Grayscale(img)
	GaussianBlur(img)
	SobelFilter(img)

	assert.Equal(t, 5, img.Width)
	assert.Equal(t, 4, img.Height)
	assert.Len(t, img.Pixels, 20)
}
