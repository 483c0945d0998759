package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecms/internal/domain"
)

func bluePixelPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeURI(t *testing.T, uri string) []byte {
	t.Helper()
	data, err := DecodePayload(uri)
	require.NoError(t, err)
	return data
}

func TestCodec_RoundTrip(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(42))
	random := make([]byte, 4096)
	rng.Read(random)

	tests := []struct {
		name string
		raw  []byte
	}{
		{"blue pixel png", bluePixelPNG(t)},
		{"random bytes", random},
		{"single byte", []byte{0x00}},
		{"repetitive text", bytes.Repeat([]byte("abc"), 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, input := range []string{
				"data:image/png;base64," + base64.StdEncoding.EncodeToString(tt.raw),
				base64.StdEncoding.EncodeToString(tt.raw),
			} {
				compressed, err := c.Compress(input)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(compressed, "data:image/jpeg;base64,"))

				out, err := c.Decompress(compressed)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(out, "data:image/jpeg;base64,"))
				assert.Equal(t, tt.raw, decodeURI(t, out))
			}
		})
	}
}

func TestCodec_CompressedNotLargerThanDeflate(t *testing.T) {
	c := New()
	raw := bytes.Repeat(bluePixelPNG(t), 20)

	compressed, err := c.Compress(base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)

	var ref bytes.Buffer
	w := zlib.NewWriter(&ref)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.LessOrEqual(t, len(decodeURI(t, compressed)), ref.Len())
}

func TestCodec_ZlibHeader(t *testing.T) {
	compressed, err := New().Compress(base64.StdEncoding.EncodeToString([]byte("hello")))
	require.NoError(t, err)
	data := decodeURI(t, compressed)
	require.GreaterOrEqual(t, len(data), 2)
	assert.Equal(t, []byte{0x78, 0x9c}, data[:2])
}

func TestCodec_CompressWithMIME(t *testing.T) {
	out, err := New().CompressWithMIME(base64.StdEncoding.EncodeToString([]byte("x")), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
}

func TestCodec_DecompressErrors(t *testing.T) {
	c := New()
	valid, err := c.Compress(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte("payload"), 50)))
	require.NoError(t, err)
	validBytes := decodeURI(t, valid)

	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{"empty", "", ErrMalformedBase64},
		{"prefix only", "data:image/jpeg;base64,", ErrMalformedBase64},
		{"not base64", "data:image/jpeg;base64,@@@@", ErrMalformedBase64},
		{"not zlib", base64.StdEncoding.EncodeToString([]byte("plain bytes, not compressed")), ErrCorruptStream},
		{"truncated stream", base64.StdEncoding.EncodeToString(validBytes[:len(validBytes)/2]), ErrCorruptStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decompress(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.errIs)
			assert.ErrorIs(t, err, domain.ErrImageCodec)
		})
	}
}

func TestCodec_Validate(t *testing.T) {
	c := New()
	goodImage, err := c.Compress(base64.StdEncoding.EncodeToString(bluePixelPNG(t)))
	require.NoError(t, err)
	notImage, err := c.Compress(base64.StdEncoding.EncodeToString([]byte("definitely not an image")))
	require.NoError(t, err)

	assert.NoError(t, c.Validate(goodImage))

	err = c.Validate(notImage)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidImage)

	svg, err := c.Compress(base64.StdEncoding.EncodeToString([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)))
	require.NoError(t, err)
	assert.ErrorIs(t, c.Validate(svg), domain.ErrInvalidImage, "vector formats are outside the accepted set")

	err = c.Validate("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(bluePixelPNG(t)))
	require.Error(t, err, "uncompressed image must be rejected")
	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestStripDataURI(t *testing.T) {
	tests := []struct {
		in          string
		wantPayload string
		wantMIME    string
	}{
		{"data:image/png;base64,AAAA", "AAAA", "image/png"},
		{"data:image/jpeg;base64,QUJD", "QUJD", "image/jpeg"},
		{"QUJD", "QUJD", ""},
		{"data:broken", "", ""},
	}
	for _, tt := range tests {
		payload, mime := StripDataURI(tt.in)
		assert.Equal(t, tt.wantPayload, payload, tt.in)
		assert.Equal(t, tt.wantMIME, mime, tt.in)
	}
}

func TestDecodePayload_Unpadded(t *testing.T) {
	data, err := DecodePayload(base64.RawStdEncoding.EncodeToString([]byte("ab")))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), data)
}

func TestNewWithLevel(t *testing.T) {
	_, err := NewWithLevel(zlib.BestSpeed)
	require.NoError(t, err)
	_, err = NewWithLevel(42)
	require.Error(t, err)
}
