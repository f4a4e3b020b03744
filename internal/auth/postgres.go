package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"aureon.ai/internal/ids"
)

var _ AdminStore = (*PGAdminStore)(nil)
var _ Denylist = (*PGDenylist)(nil)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// PGAdminStore implements AdminStore using PostgreSQL.
type PGAdminStore struct {
	db *sql.DB
}

func NewPGAdminStore(db *sql.DB) *PGAdminStore {
	return &PGAdminStore{db: db}
}

func (s *PGAdminStore) Create(ctx context.Context, admin *Admin) error {
	if admin.ID == "" {
		admin.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into admins(id, username, email, password_hash) values($1,$2,$3,$4)`,
		admin.ID, admin.Username, admin.Email, admin.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func (s *PGAdminStore) Find(ctx context.Context, id string) (*Admin, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select id, username, email, password_hash, created_at from admins where id=$1`, id))
}

func (s *PGAdminStore) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select id, username, email, password_hash, created_at from admins where username=$1`, username))
}

func (s *PGAdminStore) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select id, username, email, password_hash, created_at from admins where email=$1`, email))
}

func (s *PGAdminStore) scanOne(row *sql.Row) (*Admin, error) {
	var a Admin
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// PGDenylist implements Denylist using PostgreSQL. Expiry is a passive
// read-side filter; token signature verification independently rejects
// anything older than the retention window, so no sweeper is needed.
type PGDenylist struct {
	db        *sql.DB
	retention time.Duration
}

func NewPGDenylist(db *sql.DB, retention time.Duration) *PGDenylist {
	if retention <= 0 {
		retention = 24 * time.Hour
	}
	return &PGDenylist{db: db, retention: retention}
}

func (d *PGDenylist) Revoke(ctx context.Context, token string, insertedAt time.Time) error {
	// on conflict do nothing: a second revoke of the same token is a no-op.
	_, err := d.db.ExecContext(ctx,
		`insert into revoked_tokens(token, inserted_at) values($1,$2) on conflict (token) do nothing`,
		token, insertedAt.UTC(),
	)
	return err
}

func (d *PGDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`select exists(select 1 from revoked_tokens where token=$1 and inserted_at > $2)`,
		token, time.Now().UTC().Add(-d.retention),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
