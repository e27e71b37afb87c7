package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-secure-api/internal/failure"
)

const rateLimitIdleTTL = 15 * time.Minute

// rateLimitStore keeps one token bucket per client address. Entries idle
// for longer than idleTTL are dropped on access.
type rateLimitStore struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	rps       rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
}

type rateLimitEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newRateLimitStore(rps float64, burst int) *rateLimitStore {
	if burst < 1 {
		burst = 1
	}
	return &rateLimitStore{
		entries:   make(map[string]*rateLimitEntry),
		rps:       rate.Limit(rps),
		burst:     burst,
		idleTTL:   rateLimitIdleTTL,
		lastSweep: time.Now(),
	}
}

// allow reports whether key may make a request now.
func (s *rateLimitStore) allow(key string) bool {
	return s.get(key, time.Now()).Allow()
}

func (s *rateLimitStore) get(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.idleTTL {
		s.sweep(now)
	}

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &rateLimitEntry{lim: lim, lastSeen: now}
	return lim
}

// sweep must be called with mu held.
func (s *rateLimitStore) sweep(now time.Time) {
	cutoff := now.Add(-s.idleTTL)
	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
	s.lastSweep = now
}

// withRateLimit rejects clients over their rate with 429. The client key is
// the remote IP; forwarding headers are not trusted.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientKey(r)) {
			failure.Respond(w, r, failure.New(failure.RateLimited, "rate limit exceeded"), "rate limit")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
