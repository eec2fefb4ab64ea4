// Package storage defines the read-only user store the lookup depends on.
// Backends live in sub-packages (firestore, mongo, postgres, memory) and are
// chosen at startup.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"userlookup/pkg/domain"
)

// UsersCollection is the name of the collection (or table) holding user records.
const UsersCollection = "users"

// UserStorage queries user records.
type UserStorage interface {
	// FirstUserByEmail returns the first record whose email field equals email,
	// in the backend's default result order, or nil when nothing matches.
	// Query failures are returned as the backend reported them.
	FirstUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Storage is a user store handle with lifecycle management.
type Storage interface {
	UserStorage

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation. After
	// Close, the instance should not be used.
	Close() error
}
