package middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
	"github.com/sbilibin2017/gw-admin-auth/internal/responses"
	"golang.org/x/time/rate"
)

// storeErrorLogInterval bounds how often a failing throttle store is logged.
const storeErrorLogInterval = 10 * time.Second

//go:generate mockgen -source=throttle.go -destination=mock_throttle.go -package=middlewares

// Throttler counts hits per client key.
type Throttler interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// ThrottleMiddleware rejects clients that exceed the throttler budget with 429.
// Clients are keyed by headerName; without that header the first X-Forwarded-For
// address is used, then the remote IP.
func ThrottleMiddleware(throttler Throttler, headerName string) func(http.Handler) http.Handler {
	storeErrorLog := &rate.Sometimes{First: 1, Interval: storeErrorLogInterval}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := throttleKey(r, headerName)

			allowed, retryAfter, err := throttler.Allow(ctx, r.URL.Path+"|"+key)
			if err != nil {
				// Fail open when the store is unavailable.
				storeErrorLog.Do(func() {
					logger.Log.Errorw("throttle check failed, letting request through", "key", key, "error", err)
				})
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Log.Warnw("request throttled",
					"request_id", RequestIDFromContext(ctx),
					"key", key,
					"path", r.URL.Path,
					"retry_after", retryAfter,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				responses.Problem(w, r, http.StatusTooManyRequests, RequestIDFromContext(ctx),
					"You are requesting this endpoint too frequently.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func throttleKey(r *http.Request, headerName string) string {
	if headerName != "" {
		if v := strings.TrimSpace(r.Header.Get(headerName)); v != "" {
			return v
		}
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
