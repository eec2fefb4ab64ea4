// Package firestore implements storage.Storage on a Cloud Firestore users
// collection. Setting FIRESTORE_EMULATOR_HOST points the client at the
// emulator instead of production.
package firestore

import (
	"context"
	"errors"
	"fmt"
	"userlookup/pkg/domain"
	"userlookup/pkg/storage"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Options configures the Firestore store.
type Options struct {
	// ProjectID is the Google Cloud project holding the database.
	ProjectID string
	// DatabaseID selects a named database. Empty means the default database.
	DatabaseID string
	// CredentialsFile is a service account key file. Empty means application
	// default credentials.
	CredentialsFile string
}

// Firestore is a storage.Storage backed by Cloud Firestore.
type Firestore struct {
	client *firestore.Client
}

var _ storage.Storage = (*Firestore)(nil)

// userDocument is the stored shape of a user record. Other fields are ignored.
type userDocument struct {
	Email string `firestore:"email"`
	UID   string `firestore:"uid"`
}

// New creates a Firestore client for the configured project and database.
func New(ctx context.Context, opts Options) (*Firestore, error) {
	if opts.ProjectID == "" {
		return nil, errors.New("firestore project id is required")
	}
	databaseID := opts.DatabaseID
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	client, err := firestore.NewClientWithDatabase(ctx, opts.ProjectID, databaseID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create firestore client: %w", err)
	}

	return NewWithClient(client), nil
}

// NewWithClient wraps an existing client. Close closes it.
func NewWithClient(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// FirstUserByEmail runs an equality query limited to one document. Firestore
// orders results by document ID when no order is given.
func (f *Firestore) FirstUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	iter := f.client.Collection(storage.UsersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, nil
	}
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &domain.User{UID: domain.UserID(doc.UID), Email: doc.Email}, nil
}

// Ping reads at most one document from the users collection.
func (f *Firestore) Ping(ctx context.Context) error {
	iter := f.client.Collection(storage.UsersCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("could not reach firestore: %w", err)
	}

	return nil
}

func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return fmt.Errorf("could not close firestore client: %w", err)
	}

	return nil
}
