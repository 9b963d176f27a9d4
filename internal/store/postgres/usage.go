package postgres

import (
	"context"
	"time"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"
)

func (s *Store) RecordUsage(ctx context.Context, e model.UsageEvent) (model.UsageEvent, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	var out model.UsageEvent
	err := s.pool.QueryRow(ctx, `
		insert into public.usage_events (account_id, caller, endpoint, status, duration_ms, created_at)
		values (nullif($1, '')::uuid, $2, $3, $4, $5, $6)
		returning id::text, coalesce(account_id::text, ''), caller, endpoint, status, duration_ms, created_at
	`, e.AccountID, e.Caller, e.Endpoint, e.Status, e.DurationMs, e.CreatedAt).Scan(
		&out.ID,
		&out.AccountID,
		&out.Caller,
		&out.Endpoint,
		&out.Status,
		&out.DurationMs,
		&out.CreatedAt,
	)
	if err != nil {
		return model.UsageEvent{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) ListUsage(ctx context.Context, f store.UsageFilter) ([]model.UsageEvent, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `
		select id::text, coalesce(account_id::text, ''), caller, endpoint, status, duration_ms, created_at
		from public.usage_events
		where ($1 = '' or account_id = nullif($1, '')::uuid)
		  and ($2 = '' or endpoint = $2)
		order by created_at desc
		limit $3
	`, f.AccountID, f.Endpoint, limit)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	out := []model.UsageEvent{}
	for rows.Next() {
		var e model.UsageEvent
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Caller, &e.Endpoint, &e.Status, &e.DurationMs, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) UsageSummary(ctx context.Context, accountID string, since time.Time) (model.UsageSummary, error) {
	rows, err := s.pool.Query(ctx, `
		select endpoint, status, count(*)
		from public.usage_events
		where ($1 = '' or account_id = nullif($1, '')::uuid)
		  and created_at >= $2
		group by endpoint, status
	`, accountID, since)
	if err != nil {
		return model.UsageSummary{}, mapPgErr(err)
	}
	defer rows.Close()

	sum := model.UsageSummary{
		ByEndpoint: make(map[string]int),
		ByStatus:   make(map[int]int),
	}
	for rows.Next() {
		var (
			endpoint string
			status   int
			count    int
		)
		if err := rows.Scan(&endpoint, &status, &count); err != nil {
			return model.UsageSummary{}, err
		}
		sum.TotalRequests += count
		sum.ByEndpoint[endpoint] += count
		sum.ByStatus[status] += count
	}
	return sum, rows.Err()
}

func (s *Store) PurgeUsageBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		delete from public.usage_events
		where created_at < $1
	`, cutoff)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return tag.RowsAffected(), nil
}
