package handler

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

// LoginLimiter throttles login attempts per client address with a token
// bucket. It is safe for concurrent use.
type LoginLimiter struct {
	mu       sync.Mutex
	clients  map[string]*tokens
	rate     float64 // refill per second
	capacity float64
	now      func() time.Time
}

type tokens struct {
	left float64
	last time.Time
}

// NewLoginLimiter allows burst attempts per client, refilling at rate per
// second. Idle clients are swept until ctx is done.
func NewLoginLimiter(ctx context.Context, rate float64, burst int) *LoginLimiter {
	return newLoginLimiter(ctx, rate, burst, time.Now)
}

func newLoginLimiter(ctx context.Context, rate float64, burst int, now func() time.Time) *LoginLimiter {
	l := &LoginLimiter{
		clients:  make(map[string]*tokens),
		rate:     rate,
		capacity: float64(burst),
		now:      now,
	}
	go l.sweep(ctx)
	return l
}

// Allow consumes one token for key and reports whether one was available.
func (l *LoginLimiter) Allow(key string) bool {
	ok, _ := l.take(key)
	return ok
}

// take consumes one token for key. When none is available it also returns
// the whole seconds until one will be, or 0 if the bucket never refills.
func (l *LoginLimiter) take(key string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	t, ok := l.clients[key]
	if !ok {
		t = &tokens{left: l.capacity, last: now}
		l.clients[key] = t
	}

	t.left = min(t.left+now.Sub(t.last).Seconds()*l.rate, l.capacity)
	t.last = now

	if t.left < 1 {
		if l.rate <= 0 {
			return false, 0
		}
		return false, max(1, int(math.Ceil((1-t.left)/l.rate)))
	}
	t.left--
	return true, 0
}

func (l *LoginLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

func (l *LoginLimiter) evictIdle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := l.now().Add(-limiterIdleTTL)
	for key, t := range l.clients {
		if t.last.Before(cutoff) {
			delete(l.clients, key)
		}
	}
}

// Limit rejects requests with 429 once the client's bucket is empty, setting
// Retry-After when the bucket refills. A nil limiter passes every request through.
func (l *LoginLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	if l == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		ok, retryAfter := l.take(ip)
		if !ok {
			slog.WarnContext(r.Context(), "login throttled",
				"client", ip,
				"retry_after", retryAfter,
				"request_id", RequestIDFromContext(r.Context()),
			)
			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			}
			writeError(w, http.StatusTooManyRequests, "too many login attempts")
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
