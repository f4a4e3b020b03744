package auth

import "errors"

var (
	ErrNotFound           = errors.New("auth: not found")
	ErrDuplicateIdentity  = errors.New("auth: username or email already exists")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrTokenExpired       = errors.New("auth: token expired")
	ErrTokenRevoked       = errors.New("auth: token revoked")
)
