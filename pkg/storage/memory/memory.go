// Package memory provides an in-memory storage.Storage. Records are kept in
// insertion order, which is also the order lookups see them in, so tests can
// pin which of several records sharing an email is returned.
package memory

import (
	"context"
	"sync"
	"userlookup/pkg/domain"
	"userlookup/pkg/storage"
)

// Store is an in-memory user store. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users []domain.User
}

var _ storage.Storage = (*Store)(nil)

// New returns a store holding users in the given order.
func New(users ...domain.User) *Store {
	s := &Store{}
	s.Add(users...)

	return s
}

// Add appends users after the existing records.
func (s *Store) Add(users ...domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, users...)
}

// FirstUserByEmail returns the earliest added user with the given email, or
// nil when there is none.
func (s *Store) FirstUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() error { return nil }
