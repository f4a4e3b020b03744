package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"aureon.ai/internal/validate"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Service ties the credential store, token issuer and denylist together.
// It owns the login/logout/authenticate flows the HTTP layer calls into.
type Service struct {
	admins   AdminStore
	denylist Denylist
	tokens   *TokenIssuer
	now      func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs a Service.
func NewService(admins AdminStore, denylist Denylist, tokens *TokenIssuer, opts ...ServiceOption) *Service {
	s := &Service{
		admins:   admins,
		denylist: denylist,
		tokens:   tokens,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateAdmin validates and provisions a new administrator. The plaintext
// password is hashed before it touches the store.
func (s *Service) CreateAdmin(ctx context.Context, username, email, password string) (*Admin, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var verr validate.Error
	verr.Length("username", username, 3, 20)
	if !emailPattern.MatchString(email) {
		verr.Add("email", "must be a valid email address")
	}
	if n := len(password); n < 6 {
		verr.Add("password", "must be at least 6 characters")
	} else if n > 100 {
		verr.Add("password", "must be at most 100 characters")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login verifies credentials against either username or email and mints
// a session token. Every failure is ErrInvalidCredentials; the caller
// must not learn whether the identifier exists.
func (s *Service) Login(ctx context.Context, username, email, password string) (string, time.Time, *Admin, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	var (
		admin *Admin
		err   error
	)
	switch {
	case email != "":
		admin, err = s.admins.FindByEmail(ctx, email)
	case username != "":
		admin, err = s.admins.FindByUsername(ctx, username)
	default:
		return "", time.Time{}, nil, ErrInvalidCredentials
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", time.Time{}, nil, ErrInvalidCredentials
		}
		return "", time.Time{}, nil, err
	}
	if err := VerifyPassword(admin.PasswordHash, password); err != nil {
		return "", time.Time{}, nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(admin.ID, admin.Username)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return token, expiresAt, admin, nil
}

// Authenticate runs the full gate check for a presented token: signature
// and expiry, denylist, then identity resolution against the store.
func (s *Service) Authenticate(ctx context.Context, token string) (Identity, error) {
	identity, err := s.tokens.Verify(token)
	if err != nil {
		return Identity{}, err
	}
	revoked, err := s.denylist.IsRevoked(ctx, token)
	if err != nil {
		return Identity{}, err
	}
	if revoked {
		return Identity{}, ErrTokenRevoked
	}
	if _, err := s.admins.Find(ctx, identity.AdminID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Identity{}, ErrInvalidToken
		}
		return Identity{}, err
	}
	return identity, nil
}

// Logout adds the token to the denylist. Revoking a token twice is a
// no-op: the second logout of the same session still succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}
	return s.denylist.Revoke(ctx, token, s.now().UTC())
}

// Profile loads the full administrator record behind a verified identity.
func (s *Service) Profile(ctx context.Context, adminID string) (*Admin, error) {
	return s.admins.Find(ctx, adminID)
}
