package main

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client may stay silent before its bucket
// is dropped.
const limiterIdleTTL = 10 * time.Minute

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// clientLimiter implements per-client rate limiting
type clientLimiter struct {
	limiters     map[string]*clientEntry
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
	idleTTL      time.Duration
	lastPrune    time.Time
	now          func() time.Time
}

// newClientLimiter allows requestsPerSecond per client address with the
// given burst.
func newClientLimiter(requestsPerSecond float64, burst int) *clientLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &clientLimiter{
		limiters:     make(map[string]*clientEntry),
		defaultRate:  rate.Limit(requestsPerSecond),
		defaultBurst: burst,
		idleTTL:      limiterIdleTTL,
		lastPrune:    time.Now(),
		now:          time.Now,
	}
}

// Allow reports whether the client may make a request now.
func (l *clientLimiter) Allow(client string) bool {
	return l.getLimiter(client).AllowN(l.now(), 1)
}

// getLimiter returns the rate limiter for a client
func (l *clientLimiter) getLimiter(client string) *rate.Limiter {
	now := l.now()

	l.mu.RLock()
	entry, exists := l.limiters[client]
	l.mu.RUnlock()

	if exists {
		entry.lastSeen.Store(now.UnixNano())
		return entry.limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if entry, exists := l.limiters[client]; exists {
		entry.lastSeen.Store(now.UnixNano())
		return entry.limiter
	}

	if now.Sub(l.lastPrune) >= l.idleTTL {
		l.prune(now)
	}
	entry = &clientEntry{limiter: rate.NewLimiter(l.defaultRate, l.defaultBurst)}
	entry.lastSeen.Store(now.UnixNano())
	l.limiters[client] = entry
	return entry.limiter
}

// prune drops clients idle for longer than idleTTL. Callers hold mu.
func (l *clientLimiter) prune(now time.Time) {
	cutoff := now.Add(-l.idleTTL).UnixNano()
	for client, entry := range l.limiters {
		if entry.lastSeen.Load() < cutoff {
			delete(l.limiters, client)
		}
	}
	l.lastPrune = now
}

// Middleware rejects requests over the client's rate with 429.
func (l *clientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientAddr(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddr extracts the client host from the request
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
