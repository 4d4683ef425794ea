// Package ratelimit caps how many mutating requests one client may send per
// fixed window. Counters live in Redis so every instance shares them.
package ratelimit

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "fyyur:ratelimit"

// New allows limit mutating requests per client address in each window.
// Safe methods pass through untouched. When Redis is unreachable requests are
// let through and the failure is logged. A non-positive limit or window
// disables the limiter.
func New(log *slog.Logger, rdb redis.Cmdable, limit int, window time.Duration) func(next http.Handler) http.Handler {
	return newMiddleware(log, rdb, limit, window, time.Now)
}

func newMiddleware(
	log *slog.Logger,
	rdb redis.Cmdable,
	limit int,
	window time.Duration,
	now func() time.Time,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/ratelimit"),
		)

		if limit <= 0 || window <= 0 {
			log.Warn("rate limiter disabled", slog.Int("limit", limit), slog.String("window", window.String()))
			return next
		}

		log.Info("rate limiter enabled", slog.Int("limit", limit), slog.String("window", window.String()))

		fn := func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			t := now()
			slot := t.UnixNano() / int64(window)
			key := fmt.Sprintf("%s:%s:%d", keyPrefix, clientAddr(r), slot)

			pipe := rdb.TxPipeline()
			incr := pipe.Incr(r.Context(), key)
			pipe.Expire(r.Context(), key, window)

			if _, err := pipe.Exec(r.Context()); err != nil {
				log.Warn("rate limiter unavailable", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			count := int(incr.Val())
			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > limit {
				reset := time.Unix(0, (slot+1)*int64(window))
				retry := int(reset.Sub(t).Seconds()) + 1

				log.Info("rate limit exceeded", slog.String("key", key), slog.Int("count", count))

				w.Header().Set("Retry-After", strconv.Itoa(retry))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))

				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
