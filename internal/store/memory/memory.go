package memory

import (
	"sync"

	"text-analytics/server/internal/model"
)

type Store struct {
	mu sync.Mutex

	accounts map[string]model.Account
	usage    []model.UsageEvent

	byUsername map[string]string
	byAPIKey   map[string]string
}

func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]model.Account),
		byUsername: make(map[string]string),
		byAPIKey:   make(map[string]string),
	}
}
