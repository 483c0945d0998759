package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOfSize(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		opts       Options
		wantW      int
		wantH      int
		wantMime   string
		wantResize bool
	}{
		{"small image kept", 40, 30, Options{}, 40, 30, "image/jpeg", false},
		{"wide image fitted", 400, 100, Options{MaxWidth: 200, MaxHeight: 200}, 200, 50, "image/jpeg", true},
		{"tall image fitted", 100, 400, Options{MaxWidth: 200, MaxHeight: 200}, 50, 200, "image/jpeg", true},
		{"png kept as png", 20, 20, Options{KeepFormat: true}, 20, 20, "image/png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Prepare(bytes.NewReader(pngOfSize(t, tt.w, tt.h)), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, res.Width)
			assert.Equal(t, tt.wantH, res.Height)
			assert.Equal(t, tt.wantMime, res.MimeType)
			assert.Equal(t, tt.wantResize, res.Resized)

			cfg, format, err := image.DecodeConfig(bytes.NewReader(res.Data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, cfg.Width)
			assert.Equal(t, strings.TrimPrefix(tt.wantMime, "image/"), format)
		})
	}
}

func TestPrepare_JPEGSource(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	res, err := Prepare(&buf, Options{Quality: 50})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", res.MimeType)
}

func TestPrepare_NotAnImage(t *testing.T) {
	_, err := Prepare(strings.NewReader("hello"), Options{})
	require.Error(t, err)
}
