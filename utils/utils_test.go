package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecorateText(t *testing.T) {
	assert.Equal(t, ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))
	assert.Equal(t, StatusColor+"work"+DefaultColor, DecorateText("work", StatusMessage))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

func TestFormatTime(t *testing.T) {
	testCases := []struct {
		duration time.Duration
		want     string
	}{
		{duration: 12340 * time.Millisecond, want: "12.34s"},
		{duration: 2*time.Minute + 5*time.Second, want: "2m 5.00s"},
		{duration: 3*time.Hour + 4*time.Minute + 5*time.Second, want: "3h 4m 5.00s"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatTime(tc.duration))
	}
}

func TestIsValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://example.com/lena.ppm"))
	assert.True(t, IsValidUrl("http://127.0.0.1:8080/img"))
	assert.False(t, IsValidUrl("/tmp/lena.ppm"))
	assert.False(t, IsValidUrl("lena.ppm"))
	assert.False(t, IsValidUrl(""))
}

func TestMinMaxAbs(t *testing.T) {
	assert.Equal(t, 2, Min(2, 7))
	assert.Equal(t, 7, Max(2, 7))
	assert.Equal(t, float32(0.5), Min(float32(0.5), float32(1)))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
}
