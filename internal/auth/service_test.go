package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"aureon.ai/internal/validate"
)

// memAdminStore is an in-memory AdminStore for service tests.
type memAdminStore struct {
	mu     sync.Mutex
	admins map[string]*Admin
}

func newMemAdminStore() *memAdminStore {
	return &memAdminStore{admins: make(map[string]*Admin)}
}

func (s *memAdminStore) Create(_ context.Context, admin *Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Username == admin.Username || a.Email == admin.Email {
			return ErrDuplicateIdentity
		}
	}
	if admin.ID == "" {
		admin.ID = "mem-" + admin.Username
	}
	copied := *admin
	s.admins[admin.ID] = &copied
	return nil
}

func (s *memAdminStore) Find(_ context.Context, id string) (*Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.admins[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (s *memAdminStore) FindByUsername(_ context.Context, username string) (*Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memAdminStore) FindByEmail(_ context.Context, email string) (*Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// memDenylist is an in-memory Denylist honoring the retention window.
type memDenylist struct {
	mu        sync.Mutex
	entries   map[string]time.Time
	retention time.Duration
	now       func() time.Time
}

func newMemDenylist(now func() time.Time) *memDenylist {
	return &memDenylist{
		entries:   make(map[string]time.Time),
		retention: 24 * time.Hour,
		now:       now,
	}
}

func (d *memDenylist) Revoke(_ context.Context, token string, insertedAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.entries[token]; ok {
		return nil
	}
	d.entries[token] = insertedAt
	return nil
}

func (d *memDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	insertedAt, ok := d.entries[token]
	if !ok {
		return false, nil
	}
	return d.now().Sub(insertedAt) < d.retention, nil
}

func newTestService(t *testing.T, clock *time.Time) (*Service, *memAdminStore) {
	t.Helper()
	now := func() time.Time { return *clock }
	issuer, err := NewTokenIssuer("test-secret", WithTokenClock(now))
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	admins := newMemAdminStore()
	svc := NewService(admins, newMemDenylist(now), issuer, WithClock(now))
	return svc, admins
}

func TestCreateAdminAndLogin(t *testing.T) {
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &clock)
	ctx := context.Background()

	admin, err := svc.CreateAdmin(ctx, "root", "Root@X.com", "secret1")
	if err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if admin.Email != "root@x.com" {
		t.Fatalf("email was not case-folded: %s", admin.Email)
	}
	if admin.PasswordHash == "secret1" || admin.PasswordHash == "" {
		t.Fatalf("bad password hash: %q", admin.PasswordHash)
	}

	token, _, got, err := svc.Login(ctx, "root", "", "secret1")
	if err != nil {
		t.Fatalf("Login by username: %v", err)
	}
	if got.ID != admin.ID {
		t.Fatalf("login resolved wrong admin: %s", got.ID)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	if _, _, _, err := svc.Login(ctx, "", "root@x.com", "secret1"); err != nil {
		t.Fatalf("Login by email: %v", err)
	}
}

func TestCreateAdminValidation(t *testing.T) {
	clock := time.Now()
	svc, _ := newTestService(t, &clock)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, "ab", "not-an-email", "abc")
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %+v", verr.Fields)
	}

	// A 5-char password alone must also be rejected, leaving no record.
	_, err = svc.CreateAdmin(ctx, "valid", "valid@x.com", "abcde")
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for short password, got %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "valid", "", "abcde"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("record must not have been persisted, got %v", err)
	}
}

func TestCreateAdminDuplicateIdentity(t *testing.T) {
	clock := time.Now()
	svc, _ := newTestService(t, &clock)
	ctx := context.Background()

	if _, err := svc.CreateAdmin(ctx, "root", "root@x.com", "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	if _, err := svc.CreateAdmin(ctx, "root", "other@x.com", "secret1"); !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity for username, got %v", err)
	}
	if _, err := svc.CreateAdmin(ctx, "other", "root@x.com", "secret1"); !errors.Is(err, ErrDuplicateIdentity) {
		t.Fatalf("expected ErrDuplicateIdentity for email, got %v", err)
	}
}

func TestLoginFailuresAreGeneric(t *testing.T) {
	clock := time.Now()
	svc, _ := newTestService(t, &clock)
	ctx := context.Background()

	if _, err := svc.CreateAdmin(ctx, "root", "root@x.com", "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	cases := []struct {
		name               string
		username, email, p string
	}{
		{"unknown email", "", "nosuch@x.com", "whatever"},
		{"unknown username", "ghost", "", "whatever"},
		{"wrong password", "root", "", "wrong-password"},
		{"no identifier", "", "", "secret1"},
	}
	for _, tc := range cases {
		if _, _, _, err := svc.Login(ctx, tc.username, tc.email, tc.p); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthenticateAndRevocation(t *testing.T) {
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &clock)
	ctx := context.Background()

	if _, err := svc.CreateAdmin(ctx, "root", "root@x.com", "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	token, _, _, err := svc.Login(ctx, "root", "", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	identity, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if identity.Username != "root" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}

	// The raw token still carries a valid signature; only the denylist
	// makes the gate deny it.
	issuer, _ := NewTokenIssuer("test-secret", WithTokenClock(func() time.Time { return clock }))
	if _, err := issuer.Verify(token); err != nil {
		t.Fatalf("signature verification alone should still pass: %v", err)
	}

	// Second logout of the same token is a no-op, not an error.
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("repeated Logout: %v", err)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, &clock)
	ctx := context.Background()

	if _, err := svc.CreateAdmin(ctx, "root", "root@x.com", "secret1"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}
	token, _, _, err := svc.Login(ctx, "root", "", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	clock = clock.Add(24*time.Hour + time.Second)
	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
