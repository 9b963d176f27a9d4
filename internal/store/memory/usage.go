package memory

import (
	"context"
	"time"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"
)

func (s *Store) RecordUsage(_ context.Context, e model.UsageEvent) (model.UsageEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = newID()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	s.usage = append(s.usage, e)
	return e, nil
}

func (s *Store) ListUsage(_ context.Context, f store.UsageFilter) ([]model.UsageEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.UsageEvent, 0, len(s.usage))
	// newest first
	for i := len(s.usage) - 1; i >= 0; i-- {
		e := s.usage[i]
		if f.AccountID != "" && e.AccountID != f.AccountID {
			continue
		}
		if f.Endpoint != "" && e.Endpoint != f.Endpoint {
			continue
		}
		out = append(out, e)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) UsageSummary(_ context.Context, accountID string, since time.Time) (model.UsageSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := model.UsageSummary{
		ByEndpoint: make(map[string]int),
		ByStatus:   make(map[int]int),
	}
	for _, e := range s.usage {
		if accountID != "" && e.AccountID != accountID {
			continue
		}
		if e.CreatedAt.Before(since) {
			continue
		}
		sum.TotalRequests++
		sum.ByEndpoint[e.Endpoint]++
		sum.ByStatus[e.Status]++
	}
	return sum, nil
}

func (s *Store) PurgeUsageBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.usage[:0]
	var purged int64
	for _, e := range s.usage {
		if e.CreatedAt.Before(cutoff) {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	s.usage = kept
	return purged, nil
}
