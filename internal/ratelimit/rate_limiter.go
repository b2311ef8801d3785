package ratelimit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/syncx"
	"github.com/zkpa/zkpa/pkg/log"
	"golang.org/x/time/rate"
)

type client struct {
	limiter *rate.Limiter
	// Unix nanoseconds of the last request
	lastSeen atomic.Int64
}

type RateLimiter struct {
	rate    rate.Limit
	burst   int
	clients syncx.Map[string, *client]
	now     func() time.Time
}

type GetClientKeyFunc func(r *http.Request) (string, error)

// RemoteIP identifies clients by the host part of the request remote address.
func RemoteIP(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse remote address '%s'", r.RemoteAddr)
	}

	return host, nil
}

func (l *RateLimiter) Middleware(getClientKey GetClientKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientKey, err := getClientKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve client key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.allow(clientKey) {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) allow(clientKey string) bool {
	c, loaded := l.clients.Load(clientKey)
	if !loaded {
		c, _ = l.clients.LoadOrStore(clientKey, &client{limiter: rate.NewLimiter(l.rate, l.burst)})
	}

	c.lastSeen.Store(l.now().UnixNano())

	return c.limiter.Allow()
}

// Evict drops the clients without request for longer than idle and returns
// how many were removed.
func (l *RateLimiter) Evict(idle time.Duration) int {
	deadline := l.now().Add(-idle).UnixNano()
	evicted := 0

	l.clients.Range(func(key string, c *client) bool {
		if c.lastSeen.Load() < deadline {
			l.clients.Delete(key)
			evicted++
		}

		return true
	})

	return evicted
}

// Run evicts idle clients every interval until ctx is done.
func (l *RateLimiter) Run(ctx context.Context, interval time.Duration, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := l.Evict(idle); evicted > 0 {
				slog.DebugContext(ctx, "evicted idle rate limited clients", slog.Int("clients", evicted))
			}
		}
	}
}

func New(rate rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate,
		burst: burst,
		now:   time.Now,
	}
}
