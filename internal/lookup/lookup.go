// Package lookup resolves a user's internal identifier from an email address.
package lookup

import (
	"context"
	"userlookup/pkg/domain"
	"userlookup/pkg/logger"
	"userlookup/pkg/serrors"
	"userlookup/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Messages reported to callers.
const (
	MsgEmailRequired = "Email is required."
	MsgNoMatch       = "No matching user found."
	MsgNoUID         = "Matched user has no uid."
)

const tracerName = "userlookup/internal/lookup"

type lookup struct {
	storage storage.UserStorage
	tracer  trace.Tracer
}

// New returns a Lookup reading from the given store. Spans go to the global
// tracer provider.
func New(storage storage.UserStorage) Lookup {
	return &lookup{
		storage: storage,
		tracer:  otel.Tracer(tracerName),
	}
}

// UserIDByEmail returns the uid of the first user whose email equals email.
//
// Errors:
//   - serrors.ErrInvalidArgument when email is empty; the store is not queried.
//   - serrors.ErrNotFound when no record matches.
//   - serrors.ErrUnknown when the query fails, carrying the store's message
//     unchanged, or when the matched record has no uid.
func (l *lookup) UserIDByEmail(ctx context.Context, email string) (domain.UserID, error) {
	ctx, span := l.tracer.Start(ctx, "lookup.UserIDByEmail")
	defer span.End()

	if email == "" {
		span.SetStatus(codes.Error, MsgEmailRequired)

		return "", serrors.With(serrors.ErrInvalidArgument, MsgEmailRequired)
	}

	user, err := l.storage.FirstUserByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return "", serrors.Wrap(serrors.ErrUnknown, err, "")
	}
	if user == nil {
		logger.Debug(ctx, "no user matched email")

		return "", serrors.With(serrors.ErrNotFound, MsgNoMatch)
	}
	if user.UID == "" {
		span.SetStatus(codes.Error, MsgNoUID)

		return "", serrors.With(serrors.ErrUnknown, MsgNoUID)
	}

	logger.Debug(ctx, "user matched", zap.String("uid", user.UID.String()))

	return user.UID, nil
}
