package ppmfilter

import (
	"math"

	"github.com/marprok/ppm-filter/ppm"
	"github.com/marprok/ppm-filter/utils"
)

// The filters below derive the per-pixel importance values the carver
// feeds into its dynamic program. Each one writes its result into all
// three channels, so after Grayscale the image carries a single channel
// in practice while keeping the three channel representation.
//
// The convolutions read from a snapshot of the pixel buffer and write
// into the live image. Out-of-bounds neighbors are omitted from the
// weighted sums: no padding and no renormalization, so border pixels
// receive a dimmer partial sum.

// Grayscale collapses the color channels to a single luminance value.
// The weights do not sum up to 1.0; they are kept as-is so that the
// produced energy values stay stable across releases.
func Grayscale(img *ppm.Image) {
	for i := range img.Pixels {
		px := &img.Pixels[i]
		lum := px.R*0.216 + px.G*0.7125 + px.B*0.0722
		px.R, px.G, px.B = lum, lum, lum
	}
}

// GaussianBlur smooths the red channel with a fixed 3x3 kernel:
// 1/4 center, 1/8 edge neighbors, 1/16 corner neighbors. Note that the
// current-row left neighbor is subtracted at weight 1/8, not added.
func GaussianBlur(img *ppm.Image) {
	pixels := make([]ppm.Pixel, len(img.Pixels))
	copy(pixels, img.Pixels)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var val float32

			// previous row
			if y >= 1 {
				if x >= 1 {
					val += pixels[(y-1)*img.Width+x-1].R / 16.0
				}
				val += pixels[(y-1)*img.Width+x].R / 8.0
				if x+1 < img.Width {
					val += pixels[(y-1)*img.Width+x+1].R / 16.0
				}
			}
			// current row
			if x >= 1 {
				val -= pixels[y*img.Width+x-1].R / 8.0
			}
			val += pixels[y*img.Width+x].R / 4.0
			if x+1 < img.Width {
				val += pixels[y*img.Width+x+1].R / 8.0
			}
			// next row
			if y+1 < img.Height {
				if x >= 1 {
					val += pixels[(y+1)*img.Width+x-1].R / 16.0
				}
				val += pixels[(y+1)*img.Width+x].R / 8.0
				if x+1 < img.Width {
					val += pixels[(y+1)*img.Width+x+1].R / 16.0
				}
			}

			img.Pixels[y*img.Width+x] = ppm.Pixel{R: val, G: val, B: val}
		}
	}
}

// SobelFilter detects image edges on the red channel and stores the
// gradient magnitude, clamped to 1.0, into all three channels.
// See https://en.wikipedia.org/wiki/Sobel_operator
func SobelFilter(img *ppm.Image) {
	pixels := make([]ppm.Pixel, len(img.Pixels))
	copy(pixels, img.Pixels)

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			var valx, valy float32

			// previous row
			if y >= 1 {
				if x >= 1 {
					valx -= pixels[(y-1)*img.Width+x-1].R
					valy += pixels[(y-1)*img.Width+x-1].R
				}
				valy += 2.0 * pixels[(y-1)*img.Width+x].R
				if x+1 < img.Width {
					valx += pixels[(y-1)*img.Width+x+1].R
					valy += pixels[(y-1)*img.Width+x+1].R
				}
			}
			// current row
			if x >= 1 {
				valx -= 2.0 * pixels[y*img.Width+x-1].R
			}
			if x+1 < img.Width {
				valx += 2.0 * pixels[y*img.Width+x+1].R
			}
			// next row
			if y+1 < img.Height {
				if x >= 1 {
					valx -= pixels[(y+1)*img.Width+x-1].R
					valy -= pixels[(y+1)*img.Width+x-1].R
				}
				valy -= 2.0 * pixels[(y+1)*img.Width+x].R
				if x+1 < img.Width {
					valx += pixels[(y+1)*img.Width+x+1].R
					valy -= pixels[(y+1)*img.Width+x+1].R
				}
			}

			grad := utils.Min(float32(math.Sqrt(float64(valx*valx+valy*valy))), 1.0)
			img.Pixels[y*img.Width+x] = ppm.Pixel{R: grad, G: grad, B: grad}
		}
	}
}
