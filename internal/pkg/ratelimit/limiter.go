// Package ratelimit implements per-client sliding-window admission control.
// State is process-local; instances behind a load balancer each count
// independently.
package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type entry struct {
	ts    time.Time
	count int
}

type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets *cache.Cache
	now     func() time.Time
}

// New builds a limiter admitting at most limit requests per client within
// a sliding window. Buckets idle for a full window are evicted by the
// backing cache, so the client map cannot grow without bound.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		buckets: cache.New(window, 2*window),
		now:     time.Now,
	}
}

func (l *Limiter) Limit() int {
	return l.limit
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// Allow reports whether the client may proceed, and how much quota remains
// after this request. Entries older than the window are discarded before
// counting; an admitted request appends a fresh entry.
func (l *Limiter) Allow(clientID string) (allowed bool, remaining int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	var bucket []entry
	if cached, ok := l.buckets.Get(clientID); ok {
		bucket = cached.([]entry)
	}

	kept := bucket[:0]
	recent := 0
	for _, e := range bucket {
		if e.ts.After(cutoff) {
			kept = append(kept, e)
			recent += e.count
		}
	}

	if recent >= l.limit {
		l.buckets.Set(clientID, kept, cache.DefaultExpiration)
		return false, 0
	}

	kept = append(kept, entry{ts: now, count: 1})
	l.buckets.Set(clientID, kept, cache.DefaultExpiration)

	remaining = l.limit - recent - 1
	if remaining < 0 {
		remaining = 0
	}
	return true, remaining
}
