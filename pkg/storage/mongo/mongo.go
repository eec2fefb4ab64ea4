// Package mongo implements storage.Storage on a MongoDB users collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"
	"userlookup/pkg/domain"
	"userlookup/pkg/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultConnectTimeout = 10 * time.Second

// Options configures the MongoDB store.
type Options struct {
	// URI is the MongoDB connection string.
	URI string
	// Database holds the users collection.
	Database string
	// ConnectTimeout bounds connecting and the initial ping.
	ConnectTimeout time.Duration
}

// Mongo is a storage.Storage backed by MongoDB.
type Mongo struct {
	client *mongodriver.Client
	users  *mongodriver.Collection
}

var _ storage.Storage = (*Mongo)(nil)

// userDocument is the stored shape of a user record. Other fields are ignored.
type userDocument struct {
	Email string `bson:"email"`
	UID   string `bson:"uid"`
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, opts Options) (*Mongo, error) {
	if opts.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if opts.Database == "" {
		return nil, errors.New("mongo database name is required")
	}
	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongodriver.Connect(ctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("could not ping mongo: %w", err)
	}

	return NewWithClient(client, opts.Database), nil
}

// NewWithClient wraps an already connected client. Close disconnects it.
func NewWithClient(client *mongodriver.Client, database string) *Mongo {
	return &Mongo{
		client: client,
		users:  client.Database(database).Collection(storage.UsersCollection),
	}
}

// FirstUserByEmail runs a FindOne without a sort, so the server's natural
// order decides among duplicates.
func (m *Mongo) FirstUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	if err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, nil
		}

		return nil, err //nolint: wrapcheck
	}

	return &domain.User{UID: domain.UserID(doc.UID), Email: doc.Email}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("could not ping mongo: %w", err)
	}

	return nil
}

func (m *Mongo) Close() error {
	if err := m.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("could not disconnect mongo: %w", err)
	}

	return nil
}
