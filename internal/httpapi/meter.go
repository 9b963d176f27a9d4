package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"text-analytics/server/internal/model"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// meterMiddleware records a usage event for every authenticated
// analysis call. The account surface and open paths are not metered.
func (s *Server) meterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openPath(r.URL.Path) || strings.HasPrefix(r.URL.Path, "/v1/") {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		caller := callerFromContext(r.Context())
		if caller == "" {
			// Rejected before auth resolved; nothing to attribute.
			return
		}

		ev := model.UsageEvent{
			AccountID:  accountIDFromContext(r.Context()),
			Caller:     caller,
			Endpoint:   r.URL.Path,
			Status:     rec.status,
			DurationMs: time.Since(start).Milliseconds(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if _, err := s.store.RecordUsage(ctx, ev); err != nil {
			log.Printf("[meter] record usage: %v", err)
			return
		}
		s.bus.Publish(EventUsage, ev.AccountID)
	})
}
