// Package ppm implements a minimal reader and writer for the binary
// portable pixmap format (P6), exposing the decoded samples as
// normalized float channels.
package ppm

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Header token delimiters: space, tab, carriage return, line feed and
// the comment marker.
var delims = []byte{0x20, 0x09, 0x0D, 0x0A, 0x23}

const comment = 0x23

var (
	// ErrBadMagic is returned when the file does not start with the P6 magic number.
	ErrBadMagic = errors.New("ppm: unknown magic number")

	// ErrBadMaxValue is returned when the maximum color value is not 255.
	ErrBadMaxValue = errors.New("ppm: maximum color value is not 255")

	// ErrCorruptHeader is returned on malformed or truncated headers.
	ErrCorruptHeader = errors.New("ppm: corrupt header")

	// ErrShortPixelData is returned when the raster section is truncated.
	ErrShortPixelData = errors.New("ppm: truncated pixel data")
)

// nextToken returns the next header token starting at *offset,
// skipping delimiters and comment lines.
func nextToken(data []byte, offset *int) (string, error) {
	for *offset < len(data) && isDelim(data[*offset]) {
		// Skip the entire line in case of comments.
		if data[*offset] == comment {
			*offset++
			for *offset < len(data) && data[*offset] != 0x0A {
				*offset++
			}
		}
		*offset++
	}

	from := *offset
	for *offset < len(data) && !isDelim(data[*offset]) {
		*offset++
	}

	if from == *offset {
		return "", ErrCorruptHeader
	}

	return string(data[from:*offset]), nil
}

func isDelim(b byte) bool {
	for _, d := range delims {
		if b == d {
			return true
		}
	}
	return false
}

// Decode reads a binary P6 image from r. Only a maximum color value
// of 255 is accepted; anything else is rejected here so that the
// resize engine never sees unnormalized samples.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ppm: could not read the input: %w", err)
	}

	if len(data) < 2 {
		return nil, fmt.Errorf("%w: file too small", ErrCorruptHeader)
	}

	var offset int

	magic, err := nextToken(data, &offset)
	if err != nil {
		return nil, err
	}

	width, err := headerValue(data, &offset, "width")
	if err != nil {
		return nil, err
	}
	height, err := headerValue(data, &offset, "height")
	if err != nil {
		return nil, err
	}
	maxVal, err := headerValue(data, &offset, "maximum color value")
	if err != nil {
		return nil, err
	}

	if magic != "P6" {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}
	if maxVal != MaxValue {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxValue, maxVal)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrCorruptHeader, width, height)
	}

	// The header must be terminated by a single whitespace byte.
	if offset >= len(data) || data[offset] == comment || !isDelim(data[offset]) {
		return nil, fmt.Errorf("%w: the header should end with a whitespace", ErrCorruptHeader)
	}
	offset++

	if len(data)-offset < width*height*3 {
		return nil, ErrShortPixelData
	}

	img := NewImage(width, height)
	for i := 0; i < width*height; i++ {
		img.Pixels[i] = Pixel{
			R: float32(data[offset+i*3+0]) / MaxValue,
			G: float32(data[offset+i*3+1]) / MaxValue,
			B: float32(data[offset+i*3+2]) / MaxValue,
		}
	}

	return img, nil
}

// headerValue parses the next header token as a decimal integer.
func headerValue(data []byte, offset *int, field string) (int, error) {
	token, err := nextToken(data, offset)
	if err != nil {
		return 0, fmt.Errorf("%w: missing %s", ErrCorruptHeader, field)
	}

	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number: %q", ErrCorruptHeader, field, token)
	}

	return v, nil
}

// Encode writes the image to w as a binary P6 file.
func Encode(w io.Writer, img *Image) error {
	if _, err := fmt.Fprintf(w, "P6\n%d\n%d\n%d\n", img.Width, img.Height, MaxValue); err != nil {
		return fmt.Errorf("ppm: could not write the header: %w", err)
	}

	data := make([]byte, len(img.Pixels)*3)
	for i, px := range img.Pixels {
		data[i*3+0] = quantize(px.R)
		data[i*3+1] = quantize(px.G)
		data[i*3+2] = quantize(px.B)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("ppm: could not write the pixel data: %w", err)
	}

	return nil
}
