package lookup

import (
	"context"
	"userlookup/pkg/domain"
)

//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Lookup interface {
	UserIDByEmail(ctx context.Context, email string) (domain.UserID, error)
}
