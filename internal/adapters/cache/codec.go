package cache

import (
	"context"
	"log/slog"

	"sitecms/internal/domain"
)

// CachingCodec wraps an ImageCodec and memoizes Decompress results in an ImageCache.
type CachingCodec struct {
	domain.ImageCodec
	cache  domain.ImageCache
	logger *slog.Logger
}

// NewCachingCodec returns codec with decompression results cached in c.
func NewCachingCodec(codec domain.ImageCodec, c domain.ImageCache, logger *slog.Logger) *CachingCodec {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachingCodec{ImageCodec: codec, cache: c, logger: logger}
}

// Decompress returns the cached data URI for compressed, or decompresses and stores it.
// Failures are never cached.
func (c *CachingCodec) Decompress(compressed string) (string, error) {
	return c.DecompressContext(context.Background(), compressed)
}

// DecompressContext is Decompress with a context for the cache round trips.
func (c *CachingCodec) DecompressContext(ctx context.Context, compressed string) (string, error) {
	key := KeyFor(compressed)
	if v, ok := c.cache.Get(ctx, key); ok {
		return v, nil
	}
	out, err := c.ImageCodec.Decompress(compressed)
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, out); err != nil {
		c.logger.WarnContext(ctx, "image cache set failed", "key", key, "err", err)
	}
	return out, nil
}
