package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/textscanner/pkg/ctxutil"
)

// RateLimitedMessage is the plain-text body returned once a client's quota is spent.
const RateLimitedMessage = "Too many requests from this IP, please try again later."

// RateLimiter implements per-client sliding-window rate limiting: each client
// may make at most maxRequests requests within any window-long span.
type RateLimiter struct {
	window time.Duration
	limit  int
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*requestLog

	stop     chan struct{}
	stopOnce sync.Once
}

// requestLog holds the timestamps of a client's admitted requests, oldest first.
type requestLog struct {
	hits []time.Time
}

// RateLimiterOption customises a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) RateLimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(window time.Duration, maxRequests int, cleanupInterval time.Duration, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		window:  window,
		limit:   maxRequests,
		now:     time.Now,
		clients: make(map[string]*requestLog),
		stop:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rejects requests over the quota with 429.
func (rl *RateLimiter) Limit(logger *slog.Logger) Middleware {
	log := logger.With("middleware", "ratelimit")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			ok, retryAfter := rl.allow(key)
			if !ok {
				log.WarnContext(r.Context(), "rate limit exceeded", slog.String("client", key))
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				http.Error(w, RateLimitedMessage, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allow records a request for key if it fits in the window. When it does not,
// it reports how long until the oldest recorded request leaves the window.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.clients[key]
	if !ok {
		l = &requestLog{}
		rl.clients[key] = l
	}
	l.evict(cutoff)

	if len(l.hits) >= rl.limit {
		return false, l.hits[0].Sub(cutoff)
	}
	l.hits = append(l.hits, now)
	return true, 0
}

func (l *requestLog) evict(cutoff time.Time) {
	i := 0
	for i < len(l.hits) && !l.hits[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.hits = append(l.hits[:0], l.hits[i:]...)
	}
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops clients whose every request has aged out of the window.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, l := range rl.clients {
		l.evict(cutoff)
		if len(l.hits) == 0 {
			delete(rl.clients, key)
		}
	}
}

// tracked reports the number of clients currently held in memory.
func (rl *RateLimiter) tracked() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// clientKey identifies the caller by the host part of its address.
func clientKey(r *http.Request) string {
	if addr, ok := ctxutil.ClientAddrFromCtx(r.Context()); ok {
		return addr
	}
	return hostOf(r.RemoteAddr)
}

func hostOf(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
