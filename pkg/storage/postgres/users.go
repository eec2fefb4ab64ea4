package postgres

import (
	"context"
	"userlookup/pkg/domain"
	"userlookup/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

// FirstUserByEmail selects one row with a matching email. No ORDER BY is
// applied, so among duplicates the row returned is whichever PostgreSQL
// produces first.
func (p *PgSQL) FirstUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(storage.UsersCollection).
		Select(&PgUser{}).
		Where(goqu.I("email").Eq(email)).
		Limit(1).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
