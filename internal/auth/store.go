package auth

import (
	"context"
	"time"
)

// AdminStore persists administrator records. Username and email are each
// globally unique; Create reports a collision as ErrDuplicateIdentity.
type AdminStore interface {
	Create(ctx context.Context, admin *Admin) error
	Find(ctx context.Context, id string) (*Admin, error)
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
}

// Denylist records tokens invalidated before their natural expiry.
// Entries stop counting after the retention window; Revoke of an
// already-present token is a no-op.
type Denylist interface {
	Revoke(ctx context.Context, token string, insertedAt time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
