package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	h "sitecms/internal/delivery/http/helpers"
	"sitecms/internal/i18n"
)

// maxTrackedClients bounds the limiter map; it is reset when exceeded.
const maxTrackedClients = 10000

// limiterCache holds one token-bucket limiter per key, with double-checked locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()
	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}
	if len(lc.limiters) >= maxTrackedClients {
		lc.limiters = make(map[K]*rate.Limiter)
	}
	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// LoginRateLimiter limits login attempts per client IP.
type LoginRateLimiter struct {
	cache   *limiterCache[string]
	catalog *i18n.Catalog
	logger  *slog.Logger
}

// NewLoginRateLimiter allows rps attempts per second per IP with the given burst.
// A non-positive rps disables limiting.
func NewLoginRateLimiter(rps float64, burst int, catalog *i18n.Catalog, logger *slog.Logger) *LoginRateLimiter {
	if burst < 1 {
		burst = 1
	}
	var cache *limiterCache[string]
	if rps > 0 {
		cache = newLimiterCache[string](rps, burst)
	}
	return &LoginRateLimiter{cache: cache, catalog: catalog, logger: logger}
}

// Limit wraps next, answering 429 once the client's bucket is empty.
func (l *LoginRateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if l.cache == nil {
			next(w, r)
			return
		}
		ip := ClientIP(r)
		if !l.cache.get(ip).Allow() {
			l.logger.WarnContext(r.Context(), "login rate limit exceeded", "ip", ip)
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, l.catalog.Tctx(r.Context(), "request.too_many"))
			return
		}
		next(w, r)
	}
}
