package api

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

// rateLimiter decides whether a request may proceed.
type rateLimiter interface {
	Allow() bool
}

// retryHinter is implemented by limiters that know how long a client should
// back off. Others get a one second hint.
type retryHinter interface {
	RetryAfter() int
}

// tokenBucket wraps rate.Limiter. A nil bucket allows everything.
type tokenBucket struct {
	limiter *rate.Limiter
}

func newTokenBucketLimiter(ratePerSecond float64, burst int) *tokenBucket {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &tokenBucket{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), max(burst, 1))}
}

func (b *tokenBucket) Allow() bool {
	return b == nil || b.limiter == nil || b.limiter.Allow()
}

// RetryAfter is the whole number of seconds until one token refills.
func (b *tokenBucket) RetryAfter() int {
	if b == nil || b.limiter == nil || b.limiter.Limit() <= 0 {
		return 1
	}
	return max(int(math.Ceil(1/float64(b.limiter.Limit()))), 1)
}

func rateLimitMiddleware(limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			retry := 1
			if h, ok := limiter.(retryHinter); ok {
				retry = h.RetryAfter()
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
			return
		}
		next.ServeHTTP(w, r)
	})
}
