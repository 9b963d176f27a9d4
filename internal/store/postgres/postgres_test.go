package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a PostgreSQL store for testing.
// It skips tests if DATABASE_URL is not set.
func setupTestDB(t *testing.T) (*Store, func()) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping PostgreSQL tests")
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	require.NoError(t, err)

	_, err = pool.Exec(context.Background(), `
		DROP SCHEMA public CASCADE;
		CREATE SCHEMA public;
		GRANT ALL ON SCHEMA public TO postgres;
		GRANT ALL ON SCHEMA public TO public;

		create extension if not exists pgcrypto;

		create or replace function set_updated_at()
		returns trigger as $$
		begin
		new.updated_at = now();
		return new;
		end;
		$$ language plpgsql;

		create table if not exists public.accounts (
		id uuid primary key default gen_random_uuid(),
		username text not null unique,
		password_hash text not null,
		api_key text not null unique,
		plan text not null default 'free',
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
		);

		create trigger trg_accounts_updated_at
		before update on public.accounts
		for each row execute function set_updated_at();

		create table if not exists public.usage_events (
		id uuid primary key default gen_random_uuid(),
		account_id uuid null references public.accounts(id) on delete cascade,
		caller text not null,
		endpoint text not null,
		status int not null,
		duration_ms bigint not null default 0,
		created_at timestamptz not null default now()
		);

		create index if not exists idx_usage_events_account_created
		on public.usage_events (account_id, created_at desc);
		create index if not exists idx_usage_events_created
		on public.usage_events (created_at);
	`)
	require.NoError(t, err)
	pool.Close()

	s, err := NewStore(databaseURL)
	require.NoError(t, err)

	return s, func() { s.Close() }
}

func TestAccountCRUD(t *testing.T) {
	s, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	a, err := s.CreateAccount(ctx, model.Account{
		Username:     "Alice",
		PasswordHash: "hash",
		APIKey:       "ta_key1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "alice", a.Username)
	assert.Equal(t, model.PlanFree, a.Plan)
	assert.NotZero(t, a.CreatedAt)

	_, err = s.CreateAccount(ctx, model.Account{Username: "alice", PasswordHash: "x", APIKey: "ta_key2"})
	assert.ErrorIs(t, err, store.ErrConflict)

	_, err = s.CreateAccount(ctx, model.Account{Username: "bob", PasswordHash: "x", APIKey: "ta_key1"})
	assert.ErrorIs(t, err, store.ErrConflict)

	got, err := s.GetAccountByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = s.GetAccountByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = s.GetAccountByAPIKey(ctx, "ta_key1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = s.GetAccountByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsageLifecycle(t *testing.T) {
	s, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	a, err := s.CreateAccount(ctx, model.Account{Username: "alice", PasswordHash: "x", APIKey: "ta_key1"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = s.RecordUsage(ctx, model.UsageEvent{
			AccountID:  a.ID,
			Caller:     model.CallerAccount,
			Endpoint:   "/analyze-sentiment",
			Status:     200,
			DurationMs: 12,
		})
		require.NoError(t, err)
	}
	// anonymous master-key call, no account
	_, err = s.RecordUsage(ctx, model.UsageEvent{
		Caller:   model.CallerMaster,
		Endpoint: "/detect-language",
		Status:   200,
	})
	require.NoError(t, err)

	events, err := s.ListUsage(ctx, store.UsageFilter{AccountID: a.ID})
	require.NoError(t, err)
	assert.Len(t, events, 3)

	events, err = s.ListUsage(ctx, store.UsageFilter{Endpoint: "/detect-language"})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Empty(t, events[0].AccountID)

	sum, err := s.UsageSummary(ctx, a.ID, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalRequests)
	assert.Equal(t, 3, sum.ByEndpoint["/analyze-sentiment"])
	assert.Equal(t, 3, sum.ByStatus[200])

	old := time.Now().UTC().Add(-48 * time.Hour)
	_, err = s.RecordUsage(ctx, model.UsageEvent{
		AccountID: a.ID,
		Caller:    model.CallerAccount,
		Endpoint:  "/debug",
		Status:    200,
		CreatedAt: old,
	})
	require.NoError(t, err)

	purged, err := s.PurgeUsageBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}
