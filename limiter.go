package darkframe

import (
	"sync"
	"time"
)

// LoginLimiter rate-limits admin login attempts per IP address. Only failed
// attempts are recorded, so a legitimate admin can't lock themselves out by
// logging in and out repeatedly.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
}

// NewLoginLimiter creates a LoginLimiter that allows max failures per window.
func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	l := &LoginLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
	go l.cleanup()
	return l
}

func (l *LoginLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	for range ticker.C {
		cutoff := time.Now().Add(-l.window)
		l.mu.Lock()
		for ip, hits := range l.attempts {
			kept := hits[:0]
			for _, t := range hits {
				if t.After(cutoff) {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(l.attempts, ip)
			} else {
				l.attempts[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}

// Check returns true if the IP has not exceeded the rate limit. It does not
// record an attempt; call Record separately on failure.
func (l *LoginLimiter) Check(ip string) bool {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.attempts[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.attempts[ip] = kept
	return len(kept) < l.max
}

// Record registers a failed login attempt for the given IP.
func (l *LoginLimiter) Record(ip string) {
	l.mu.Lock()
	l.attempts[ip] = append(l.attempts[ip], time.Now())
	l.mu.Unlock()
}
