package codec

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"sitecms/internal/domain"
)

// Validate checks that compressed is a well-formed payload whose inflated bytes start
// with a known image header. It does not decode pixel data.
func (c *Codec) Validate(compressed string) error {
	data, err := c.inflatePayload(compressed)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	if _, _, err := ImageConfig(data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	return nil
}

// ImageConfig decodes the header of an image and returns its dimensions and format name.
func ImageConfig(data []byte) (image.Config, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, "", fmt.Errorf("image has no pixels (%dx%d)", cfg.Width, cfg.Height)
	}
	return cfg, format, nil
}
