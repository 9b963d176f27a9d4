package store

import (
	"context"
	"errors"
	"time"

	"text-analytics/server/internal/model"
)

var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
)

type UsageFilter struct {
	AccountID string
	Endpoint  string
	Limit     int
}

type Store interface {
	CreateAccount(ctx context.Context, a model.Account) (model.Account, error)
	GetAccountByID(ctx context.Context, id string) (model.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (model.Account, error)
	GetAccountByAPIKey(ctx context.Context, key string) (model.Account, error)

	RecordUsage(ctx context.Context, e model.UsageEvent) (model.UsageEvent, error)
	ListUsage(ctx context.Context, f UsageFilter) ([]model.UsageEvent, error)
	UsageSummary(ctx context.Context, accountID string, since time.Time) (model.UsageSummary, error)
	PurgeUsageBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
