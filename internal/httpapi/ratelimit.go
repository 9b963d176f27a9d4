package httpapi

import (
	"net/http"
	"sync"
	"time"

	"text-analytics/server/internal/model"
)

// rateLimiter tracks request timestamps per key over a sliding
// one-minute window.
type rateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string][]time.Time
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		window: time.Minute,
		seen:   make(map[string][]time.Time),
	}
}

func (l *rateLimiter) allow(key string, limit int) bool {
	if limit <= 0 {
		return true
	}

	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	stamps := l.seen[key]
	kept := stamps[:0]
	for _, ts := range stamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= limit {
		l.seen[key] = kept
		return false
	}
	l.seen[key] = append(kept, now)
	return true
}

func (s *Server) planLimit(p model.Plan) int {
	switch p {
	case model.PlanUltra:
		if s.cfg.RateLimitUltra > 0 {
			return s.cfg.RateLimitUltra
		}
	case model.PlanPro:
		if s.cfg.RateLimitPro > 0 {
			return s.cfg.RateLimitPro
		}
	default:
		if s.cfg.RateLimitFree > 0 {
			return s.cfg.RateLimitFree
		}
	}
	return p.RequestsPerMinute()
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		caller := callerFromContext(r.Context())
		// The gateway and the operator key meter elsewhere.
		if caller == model.CallerMaster || caller == model.CallerRapidAPI {
			next.ServeHTTP(w, r)
			return
		}

		key := accountIDFromContext(r.Context())
		if key == "" {
			key = r.RemoteAddr
		}

		if !s.limiter.allow(key, s.planLimit(planFromContext(r.Context()))) {
			writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded, retry later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
