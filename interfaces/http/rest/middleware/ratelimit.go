package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"superviseme/pkg/common"
	"superviseme/pkg/ratelimit"
)

// RateLimit applies a per-client-IP token bucket to the API routes
func RateLimit(limiter ratelimit.RateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("Rate limiter failure", zap.Error(err))
				next.ServeHTTP(w, r) // fail open
				return
			}
			if !allowed {
				logger.Warn("Rate limit exceeded",
					zap.String("client", key),
					zap.String("path", r.URL.Path),
				)
				common.RespondError(w, http.StatusTooManyRequests, "RATE_LIMIT", "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP trusts RealIP middleware having rewritten RemoteAddr already
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
