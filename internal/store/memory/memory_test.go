package memory

import (
	"context"
	"testing"
	"time"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestCreateAccount(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a, err := s.CreateAccount(ctx, model.Account{
		Username:     "alice",
		PasswordHash: "hash",
		APIKey:       "ta_key1",
		Plan:         model.PlanFree,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "alice", a.Username)
	assert.NotZero(t, a.CreatedAt)
	assert.NotZero(t, a.UpdatedAt)

	// Duplicate username, case-insensitive
	_, err = s.CreateAccount(ctx, model.Account{Username: "Alice", APIKey: "ta_key2"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Duplicate API key
	_, err = s.CreateAccount(ctx, model.Account{Username: "bob", APIKey: "ta_key1"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Default plan applied when empty
	b, err := s.CreateAccount(ctx, model.Account{Username: "carol", APIKey: "ta_key3"})
	assert.NoError(t, err)
	assert.Equal(t, model.PlanFree, b.Plan)
}

func TestGetAccount(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a, err := s.CreateAccount(ctx, model.Account{Username: "alice", APIKey: "ta_key1"})
	assert.NoError(t, err)

	got, err := s.GetAccountByID(ctx, a.ID)
	assert.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = s.GetAccountByUsername(ctx, "ALICE")
	assert.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = s.GetAccountByAPIKey(ctx, "ta_key1")
	assert.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = s.GetAccountByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetAccountByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetAccountByAPIKey(ctx, "ta_other")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordAndListUsage(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.RecordUsage(ctx, model.UsageEvent{
			AccountID: "acct-1",
			Caller:    model.CallerAccount,
			Endpoint:  "/analyze-sentiment",
			Status:    200,
		})
		assert.NoError(t, err)
	}
	_, err := s.RecordUsage(ctx, model.UsageEvent{
		AccountID: "acct-2",
		Caller:    model.CallerAccount,
		Endpoint:  "/summarize-text",
		Status:    422,
	})
	assert.NoError(t, err)

	events, err := s.ListUsage(ctx, store.UsageFilter{AccountID: "acct-1"})
	assert.NoError(t, err)
	assert.Len(t, events, 3)
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, "/analyze-sentiment", e.Endpoint)
	}

	events, err = s.ListUsage(ctx, store.UsageFilter{Endpoint: "/summarize-text"})
	assert.NoError(t, err)
	assert.Len(t, events, 1)

	events, err = s.ListUsage(ctx, store.UsageFilter{AccountID: "acct-1", Limit: 2})
	assert.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestUsageSummary(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, _ = s.RecordUsage(ctx, model.UsageEvent{AccountID: "acct-1", Endpoint: "/detect-language", Status: 200})
	_, _ = s.RecordUsage(ctx, model.UsageEvent{AccountID: "acct-1", Endpoint: "/detect-language", Status: 200})
	_, _ = s.RecordUsage(ctx, model.UsageEvent{AccountID: "acct-1", Endpoint: "/extract-keywords", Status: 422})
	_, _ = s.RecordUsage(ctx, model.UsageEvent{AccountID: "acct-2", Endpoint: "/detect-language", Status: 200})

	sum, err := s.UsageSummary(ctx, "acct-1", time.Time{})
	assert.NoError(t, err)
	assert.Equal(t, 3, sum.TotalRequests)
	assert.Equal(t, 2, sum.ByEndpoint["/detect-language"])
	assert.Equal(t, 1, sum.ByEndpoint["/extract-keywords"])
	assert.Equal(t, 2, sum.ByStatus[200])
	assert.Equal(t, 1, sum.ByStatus[422])

	// since in the future excludes everything
	sum, err = s.UsageSummary(ctx, "acct-1", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, 0, sum.TotalRequests)
}

func TestPurgeUsageBefore(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	_, _ = s.RecordUsage(ctx, model.UsageEvent{AccountID: "acct-1", Endpoint: "/debug", Status: 200, CreatedAt: old})
	_, _ = s.RecordUsage(ctx, model.UsageEvent{AccountID: "acct-1", Endpoint: "/debug", Status: 200})

	purged, err := s.PurgeUsageBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	events, err := s.ListUsage(ctx, store.UsageFilter{AccountID: "acct-1"})
	assert.NoError(t, err)
	assert.Len(t, events, 1)
}
