package postgres

import (
	"context"
	"errors"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"

	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateAccount(ctx context.Context, a model.Account) (model.Account, error) {
	if a.Plan == "" {
		a.Plan = model.PlanFree
	}
	var out model.Account
	err := s.pool.QueryRow(ctx, `
		insert into public.accounts (username, password_hash, api_key, plan)
		values (lower($1), $2, $3, $4)
		returning id::text, username, password_hash, api_key, plan, created_at, updated_at
	`, a.Username, a.PasswordHash, a.APIKey, string(a.Plan)).Scan(
		&out.ID,
		&out.Username,
		&out.PasswordHash,
		&out.APIKey,
		&out.Plan,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.Account{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) GetAccountByID(ctx context.Context, id string) (model.Account, error) {
	return s.getAccount(ctx, `where id = $1::uuid`, id)
}

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (model.Account, error) {
	return s.getAccount(ctx, `where lower(username) = lower($1)`, username)
}

func (s *Store) GetAccountByAPIKey(ctx context.Context, key string) (model.Account, error) {
	return s.getAccount(ctx, `where api_key = $1`, key)
}

func (s *Store) getAccount(ctx context.Context, where string, arg any) (model.Account, error) {
	var a model.Account
	err := s.pool.QueryRow(ctx, `
		select id::text, username, password_hash, api_key, plan, created_at, updated_at
		from public.accounts
	`+where, arg).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.APIKey,
		&a.Plan,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, store.ErrNotFound
		}
		return model.Account{}, mapPgErr(err)
	}
	return a, nil
}
