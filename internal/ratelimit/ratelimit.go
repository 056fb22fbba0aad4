// Package ratelimit throttles inbound datagrams per sending endpoint,
// defending the single-threaded event loop against a flooding client.
package ratelimit

import (
	"golang.org/x/time/rate"
)

// Limiter tracks one token bucket per endpoint key. It is accessed only
// from the event-loop goroutine, so unlike the teacher's concurrent
// per-connection limiter map, this one needs no mutex.
type Limiter struct {
	rps     rate.Limit
	burst   int
	buckets map[string]*rate.Limiter
}

// New creates a Limiter allowing rps messages per second per endpoint,
// with burst allowed instantaneously.
func New(rps float64, burst int) *Limiter {
	return &Limiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a datagram from key may be processed now,
// consuming a token if so. A new bucket is created for a key seen for
// the first time.
func (l *Limiter) Allow(key string) bool {
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(l.rps, l.burst)
		l.buckets[key] = b
	}
	return b.Allow()
}

// Forget drops the bucket for key, so a reconnecting endpoint starts
// fresh rather than growing the map without bound across a long-running
// server.
func (l *Limiter) Forget(key string) {
	delete(l.buckets, key)
}
