// Package codec implements the image transport codec: zlib-compressed image bytes
// carried as base64 text inside data URIs.
package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"sitecms/internal/domain"
)

var _ domain.ImageCodec = (*Codec)(nil)

// DefaultMIME is attached to every decompressed image; the source MIME type is not preserved.
const DefaultMIME = "image/jpeg"

var (
	ErrMalformedBase64 = fmt.Errorf("%w: malformed base64", domain.ErrImageCodec)
	ErrCorruptStream   = fmt.Errorf("%w: corrupt compressed stream", domain.ErrImageCodec)
)

// Codec is the zlib/base64 ImageCodec.
type Codec struct {
	level int
}

// New returns a Codec using zlib at the default compression level,
// matching the framing produced by the dashboard's browser-side compressor.
func New() *Codec {
	return &Codec{level: zlib.DefaultCompression}
}

// NewWithLevel returns a Codec compressing at the given zlib level.
func NewWithLevel(level int) (*Codec, error) {
	if level < zlib.HuffmanOnly || level > zlib.BestCompression {
		return nil, fmt.Errorf("invalid compression level %d", level)
	}
	return &Codec{level: level}, nil
}

// Compress decodes raw (with or without a data URI prefix), deflates the bytes and
// returns them as a data URI with the default MIME type.
func (c *Codec) Compress(raw string) (string, error) {
	return c.CompressWithMIME(raw, DefaultMIME)
}

// CompressWithMIME is Compress with an explicit MIME type for the output prefix.
func (c *Codec) CompressWithMIME(raw, mime string) (string, error) {
	data, err := DecodePayload(raw)
	if err != nil {
		return "", err
	}
	packed, err := c.deflate(data)
	if err != nil {
		return "", err
	}
	return EncodeDataURI(packed, mime), nil
}

// Decompress inflates a compressed payload and returns it as a displayable JPEG data URI.
func (c *Codec) Decompress(compressed string) (string, error) {
	data, err := c.inflatePayload(compressed)
	if err != nil {
		return "", err
	}
	return EncodeDataURI(data, DefaultMIME), nil
}

func (c *Codec) inflatePayload(compressed string) ([]byte, error) {
	data, err := DecodePayload(compressed)
	if err != nil {
		return nil, err
	}
	return inflate(data)
}

func (c *Codec) deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("deflate: %w", err)
	}
	return buf.Bytes(), nil
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStream, err)
	}
	return out, nil
}

// StripDataURI removes a leading "data:<mime>;base64," marker and returns the payload and the MIME type.
// Text without the marker is returned unchanged with an empty MIME type.
func StripDataURI(s string) (payload, mime string) {
	if !strings.HasPrefix(s, "data:") {
		return s, ""
	}
	header, payload, ok := strings.Cut(s, ",")
	if !ok {
		return "", ""
	}
	mime = strings.TrimPrefix(header, "data:")
	mime, _, _ = strings.Cut(mime, ";")
	return payload, mime
}

// DecodePayload strips an optional data URI marker and base64-decodes the rest.
// Padded and unpadded standard encodings are accepted.
func DecodePayload(s string) ([]byte, error) {
	payload, _ := StripDataURI(strings.TrimSpace(s))
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedBase64)
	}
	enc := base64.StdEncoding
	if !strings.HasSuffix(payload, "=") && len(payload)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	data, err := enc.DecodeString(payload)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, fmt.Errorf("%w at offset %d", ErrMalformedBase64, int64(corrupt))
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBase64, err)
	}
	return data, nil
}

// EncodeDataURI base64-encodes data behind a "data:<mime>;base64," marker.
func EncodeDataURI(data []byte, mime string) string {
	if mime == "" {
		mime = DefaultMIME
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
