package memory

import (
	"context"
	"strings"
	"time"

	"text-analytics/server/internal/model"
	"text-analytics/server/internal/store"
)

func (s *Store) CreateAccount(_ context.Context, a model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := strings.ToLower(strings.TrimSpace(a.Username))
	if _, ok := s.byUsername[username]; ok {
		return model.Account{}, store.ErrConflict
	}
	if _, ok := s.byAPIKey[a.APIKey]; ok {
		return model.Account{}, store.ErrConflict
	}

	now := time.Now().UTC()
	a.ID = newID()
	a.Username = username
	if a.Plan == "" {
		a.Plan = model.PlanFree
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	s.accounts[a.ID] = a
	s.byUsername[username] = a.ID
	s.byAPIKey[a.APIKey] = a.ID
	return a, nil
}

func (s *Store) GetAccountByID(_ context.Context, id string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[id]
	if !ok {
		return model.Account{}, store.ErrNotFound
	}
	return a, nil
}

func (s *Store) GetAccountByUsername(_ context.Context, username string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return model.Account{}, store.ErrNotFound
	}
	return s.accounts[id], nil
}

func (s *Store) GetAccountByAPIKey(_ context.Context, key string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byAPIKey[key]
	if !ok {
		return model.Account{}, store.ErrNotFound
	}
	return s.accounts[id], nil
}
