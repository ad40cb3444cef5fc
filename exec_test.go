package ppmfilter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionSets(t *testing.T) {
	// GIF and TGA can be decoded but not encoded.
	for _, ext := range []string{".gif", ".tga"} {
		assert.True(t, isValidExtension(ext, srcExtensions), "%s as source", ext)
		assert.False(t, isValidExtension(ext, dstExtensions), "%s as destination", ext)
	}

	for _, ext := range []string{".ppm", ".jpg", ".jpeg", ".png", ".bmp", ".webp"} {
		assert.True(t, isValidExtension(ext, srcExtensions), "%s as source", ext)
		assert.True(t, isValidExtension(ext, dstExtensions), "%s as destination", ext)
	}

	assert.False(t, isValidExtension("", dstExtensions))
	assert.False(t, isValidExtension(".svg", srcExtensions))
}

func TestOutName(t *testing.T) {
	testCases := []struct {
		base string
		want string
	}{
		{base: "lena.png", want: "lena.png"},
		{base: "lena.ppm", want: "lena.ppm"},
		{base: "lena.gif", want: "lena.ppm"},
		{base: "lena.tga", want: "lena.ppm"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, outName(tc.base), tc.base)
	}
}

func TestDefaultOutName(t *testing.T) {
	assert.Equal(t, filepath.Join("testdata", "lena_new.ppm"), defaultOutName(filepath.Join("testdata", "lena.jpg")))
	assert.Equal(t, "lena_new.ppm", defaultOutName("lena.ppm"))
}
