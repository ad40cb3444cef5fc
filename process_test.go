package ppmfilter

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marprok/ppm-filter/ppm"
)

// grayP6 builds a uniform gray P6 stream.
func grayP6(width, height int, v byte) []byte {
	img := ppm.NewImage(width, height)
	for i := range img.Pixels {
		c := float32(v) / 255
		img.Pixels[i] = ppm.Pixel{R: c, G: c, B: c}
	}

	var buf bytes.Buffer
	if err := ppm.Encode(&buf, img); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

func TestProcessor_Process_ShrinksWidth(t *testing.T) {
	p := &Processor{Columns: 1}

	var out bytes.Buffer
	err := p.Process(bytes.NewReader(grayP6(4, 3, 200)), &out)
	assert.NoError(t, err)

	res, err := ppm.Decode(&out)
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Width)
	assert.Equal(t, 3, res.Height)
}

func TestProcessor_Process_ZeroColumnsRoundTrip(t *testing.T) {
	in := grayP6(4, 3, 128)
	p := &Processor{Columns: 0}

	var out bytes.Buffer
	err := p.Process(bytes.NewReader(in), &out)
	assert.NoError(t, err)

	assert.Equal(t, len(in), out.Len())
	for i, b := range out.Bytes() {
		diff := int(in[i]) - int(b)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, 1, "byte %d", i)
	}
}

func TestProcessor_PercentageColumns(t *testing.T) {
	img := uniformImage(10, 4, 0.5)
	p := &Processor{Columns: 30, Percentage: true}

	out, err := Resize(p, img)
	assert.NoError(t, err)
	assert.Equal(t, 7, out.Width)
	assert.Equal(t, 4, out.Height)
}

func TestProcessor_PrescaleRunsBeforeCarving(t *testing.T) {
	img := uniformImage(8, 4, 0.5)
	p := &Processor{Columns: 1, PrescaleWidth: 4}

	out, err := Resize(p, img)
	assert.NoError(t, err)

	// The Lanczos rescale halves the image to 4x2, the carver then
	// removes a single seam from the remaining pixels.
	assert.Equal(t, 3, out.Width)
	assert.Equal(t, 2, out.Height)
}

func TestProcessor_Process_EncodesPNG(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.png")
	f, err := os.Create(dst)
	assert.NoError(t, err)

	p := &Processor{Columns: 1}
	err = p.Process(bytes.NewReader(grayP6(4, 3, 90)), f)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	r, err := os.Open(dst)
	assert.NoError(t, err)
	defer r.Close()

	res, err := png.Decode(r)
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Bounds().Dx())
	assert.Equal(t, 3, res.Bounds().Dy())
}

func TestProcessor_Process_PropagatesInvalidRequest(t *testing.T) {
	p := &Processor{Columns: 10}

	var out bytes.Buffer
	err := p.Process(bytes.NewReader(grayP6(4, 3, 200)), &out)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, out.Len())
}

func TestProcessor_Process_RejectsGarbageInput(t *testing.T) {
	p := &Processor{Columns: 1}

	var out bytes.Buffer
	err := p.Process(bytes.NewReader([]byte("definitely not an image")), &out)
	assert.Error(t, err)
}
