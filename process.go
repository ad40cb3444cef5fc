package ppmfilter

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	_ "github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"

	"github.com/marprok/ppm-filter/ppm"
	"github.com/marprok/ppm-filter/utils"
)

var (
	// ErrInvalidRequest is returned when the requested column count is
	// not strictly smaller than the current image width.
	ErrInvalidRequest = errors.New("the number of columns to remove must be less than the image width")

	// ErrDegenerateGrid is returned when the image has a zero dimension.
	ErrDegenerateGrid = errors.New("the image width and height must be greater than zero")
)

// SeamCarver is an interface the Processor uses to implement the Resize function.
// It takes the source image as parameter and returns the carved image.
type SeamCarver interface {
	Resize(*ppm.Image) (*ppm.Image, error)
}

// Processor options.
type Processor struct {
	// Columns is the number of vertical seams to remove. When
	// Percentage is set it is interpreted as a percentage of the
	// image width instead.
	Columns int

	// Percentage reduces the image width by the given percentage.
	Percentage bool

	// PrescaleWidth rescales the image down to the given width before
	// the carving starts, preserving the aspect ratio. The seams are
	// removed from the remaining pixels only.
	PrescaleWidth int

	// Spinner holds the progress indicator used by the CLI.
	Spinner *utils.Spinner
}

var _ SeamCarver = (*Processor)(nil)

// Resize implements the Resize method of the SeamCarver interface.
func Resize(s SeamCarver, img *ppm.Image) (*ppm.Image, error) {
	return s.Resize(img)
}

// Resize removes the requested number of vertical seams from the image.
func (p *Processor) Resize(img *ppm.Image) (*ppm.Image, error) {
	if p.PrescaleWidth > 0 && p.PrescaleWidth < img.Width {
		res := imaging.Resize(img.ToNRGBA(), p.PrescaleWidth, 0, imaging.Lanczos)
		img = ppm.FromImage(res)
	}

	columns := p.Columns
	if p.Percentage {
		pw := img.Width - int(float64(img.Width)-(float64(p.Columns)/100*float64(img.Width)))
		columns = utils.Abs(pw)
	}

	return ResizeWidth(img, columns)
}

// ResizeWidth removes the given number of minimum-importance vertical
// seams from the image, shrinking its width by exactly one pixel per
// seam. The filter pipeline runs once; the dynamic program and the
// seam removal repeat on the shrinking grid, strictly in sequence,
// since each iteration operates on the grid as left by the previous one.
func ResizeWidth(img *ppm.Image, columns int) (*ppm.Image, error) {
	if img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDegenerateGrid, img.Width, img.Height)
	}
	if columns < 0 || columns >= img.Width {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrInvalidRequest, columns, img.Width)
	}
	if columns == 0 {
		return img.Clone(), nil
	}

	// The grid keeps the original colors while the filters collapse
	// the working copy to per-pixel importance values.
	filtered := img.Clone()
	Grayscale(filtered)
	GaussianBlur(filtered)
	SobelFilter(filtered)

	c := NewCarver(img, filtered)
	for i := 0; i < columns; i++ {
		c.resetCosts()
		c.computeCosts()
		c.removeSeam(c.findLowestCostSeam())
	}

	return c.Image(), nil
}

// Process reads an image from r, carves it and encodes the result into w.
// We are using the io package, since we can provide different input and
// output types, as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := decodeImage(r)
	if err != nil {
		return err
	}

	res, err := Resize(p, img)
	if err != nil {
		return err
	}

	return encodeImage(w, res)
}

// decodeImage reads a PPM image when the stream starts with the P6
// magic number, otherwise it falls back to the registered image codecs.
func decodeImage(r io.Reader) (*ppm.Image, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("could not read the image header: %w", err)
	}

	if string(magic) == "P6" {
		return ppm.Decode(br)
	}

	src, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}

	return ppm.FromImage(src), nil
}

// encodeImage encodes the image to a destination of type io.Writer.
// The output format is derived from the file extension; writers which
// are not files receive PPM output.
func encodeImage(w io.Writer, img *ppm.Image) error {
	f, ok := w.(*os.File)
	if !ok {
		return ppm.Encode(w, img)
	}

	switch ext := filepath.Ext(f.Name()); ext {
	case "", ".ppm":
		return ppm.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img.ToNRGBA(), &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(f, img.ToNRGBA())
	case ".bmp":
		return bmp.Encode(f, img.ToNRGBA())
	case ".webp":
		return nativewebp.Encode(f, img.ToNRGBA(), nil)
	default:
		return fmt.Errorf("unsupported output image format: %v", ext)
	}
}
