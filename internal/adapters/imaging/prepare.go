// Package imaging prepares picture files for upload: it decodes them, applies the EXIF
// orientation, shrinks them to fit the dashboard's display box and re-encodes them.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// Defaults applied by Prepare when Options leaves a field zero.
const (
	DefaultMaxWidth  = 1600
	DefaultMaxHeight = 1600
	DefaultQuality   = 85
)

// Options controls image preparation.
type Options struct {
	MaxWidth  int
	MaxHeight int
	// Quality is the JPEG quality (1-100).
	Quality int
	// KeepFormat re-encodes PNG and GIF sources in their own format instead of JPEG.
	KeepFormat bool
}

func (o Options) withDefaults() Options {
	if o.MaxWidth <= 0 {
		o.MaxWidth = DefaultMaxWidth
	}
	if o.MaxHeight <= 0 {
		o.MaxHeight = DefaultMaxHeight
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = DefaultQuality
	}
	return o
}

// Result describes a prepared image.
type Result struct {
	Data     []byte
	MimeType string
	Width    int
	Height   int
	Resized  bool
}

// Prepare decodes r, fits it inside the configured box and encodes it.
func Prepare(r io.Reader, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	_, srcFormat, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unsupported image: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := false
	b := img.Bounds()
	if b.Dx() > opts.MaxWidth || b.Dy() > opts.MaxHeight {
		img = imaging.Fit(img, opts.MaxWidth, opts.MaxHeight, imaging.Lanczos)
		resized = true
	}

	format, mime := imaging.JPEG, "image/jpeg"
	if opts.KeepFormat {
		switch strings.ToLower(srcFormat) {
		case "png":
			format, mime = imaging.PNG, "image/png"
		case "gif":
			format, mime = imaging.GIF, "image/gif"
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(opts.Quality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	out := img.Bounds()
	return &Result{
		Data:     buf.Bytes(),
		MimeType: mime,
		Width:    out.Dx(),
		Height:   out.Dy(),
		Resized:  resized,
	}, nil
}
