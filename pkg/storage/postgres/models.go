package postgres

import "userlookup/pkg/domain"

// PgUser is a row of the users table as read by the lookup.
type PgUser struct {
	UID   string `db:"uid"`
	Email string `db:"email"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		UID:   domain.UserID(p.UID),
		Email: p.Email,
	}
}
