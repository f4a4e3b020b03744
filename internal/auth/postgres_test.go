package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGAdminStoreCreateMapsUniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("insert into admins").
		WithArgs(sqlmock.AnyArg(), "root", "root@x.com", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	store := NewPGAdminStore(db)
	err = store.Create(context.Background(), &Admin{Username: "root", Email: "root@x.com", PasswordHash: "hash"})
	if !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGAdminStoreCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("insert into admins").
		WithArgs(sqlmock.AnyArg(), "root", "root@x.com", "hash").
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewPGAdminStore(db)
	admin := &Admin{Username: "root", Email: "root@x.com", PasswordHash: "hash"}
	if err := store.Create(context.Background(), admin); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if admin.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestPGAdminStoreFindNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select id, username, email, password_hash, created_at from admins where username=").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	store := NewPGAdminStore(db)
	if _, err := store.FindByUsername(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGAdminStoreFindByEmailLowercasesInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow("id-1", "root", "root@x.com", "hash", time.Now())
	mock.ExpectQuery("select id, username, email, password_hash, created_at from admins where email=").
		WithArgs("root@x.com").
		WillReturnRows(rows)

	store := NewPGAdminStore(db)
	admin, err := store.FindByEmail(context.Background(), "  Root@X.com  ")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if admin.Username != "root" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
}

func TestPGDenylistRevokeIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("insert into revoked_tokens.*on conflict \\(token\\) do nothing").
		WithArgs("tok-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("insert into revoked_tokens.*on conflict \\(token\\) do nothing").
		WithArgs("tok-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	denylist := NewPGDenylist(db, 24*time.Hour)
	if err := denylist.Revoke(context.Background(), "tok-1", time.Now()); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if err := denylist.Revoke(context.Background(), "tok-1", time.Now()); err != nil {
		t.Fatalf("second Revoke must not fail: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGDenylistIsRevoked(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("select exists").
		WithArgs("tok-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	denylist := NewPGDenylist(db, 24*time.Hour)
	revoked, err := denylist.IsRevoked(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if !revoked {
		t.Fatal("expected token to be revoked")
	}
}
