package ppm

import (
	"image"

	"github.com/marprok/ppm-filter/utils"
)

// MaxValue is the only channel depth the P6 reader accepts.
const MaxValue = 255

// Pixel holds the three color channels of a single sample,
// each normalized to the [0, 1] range.
type Pixel struct {
	R, G, B float32
}

// Image is a row-major pixel buffer decoded from a P6 file.
// The invariant len(Pixels) == Width*Height holds after every mutation.
type Image struct {
	Width  int
	Height int
	Pixels []Pixel
}

// NewImage allocates a zeroed image of the requested dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Pixel, width*height),
	}
}

// At returns the pixel at position (x, y).
func (img *Image) At(x, y int) Pixel {
	return img.Pixels[y*img.Width+x]
}

// Set replaces the pixel at position (x, y).
func (img *Image) Set(x, y int, px Pixel) {
	img.Pixels[y*img.Width+x] = px
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	dst := &Image{
		Width:  img.Width,
		Height: img.Height,
		Pixels: make([]Pixel, len(img.Pixels)),
	}
	copy(dst.Pixels, img.Pixels)

	return dst
}

// ToNRGBA converts the image to a fully opaque *image.NRGBA,
// re-quantizing the normalized channels back to 8 bit values.
func (img *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))

	for i, px := range img.Pixels {
		dst.Pix[i*4+0] = quantize(px.R)
		dst.Pix[i*4+1] = quantize(px.G)
		dst.Pix[i*4+2] = quantize(px.B)
		dst.Pix[i*4+3] = 0xff
	}

	return dst
}

// FromImage converts any image type to the normalized pixel representation.
// The alpha channel is discarded.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()
	img := NewImage(dx, dy)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Pixels[y*dx+x] = Pixel{
				R: float32(r>>8) / MaxValue,
				G: float32(g>>8) / MaxValue,
				B: float32(b>>8) / MaxValue,
			}
		}
	}

	return img
}

// quantize converts a normalized channel back to a byte, saturating on both ends.
func quantize(c float32) uint8 {
	return uint8(utils.Max(0, utils.Min(c*MaxValue, MaxValue)))
}
