package auth

import (
	"context"
	"strings"
)

type ctxKey string

const (
	identityKey ctxKey = "auth_identity"
	tokenKey    ctxKey = "auth_token"
)

// ContextWithIdentity stores the authenticated admin identity in the context.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey).(Identity)
	if !ok || strings.TrimSpace(v.AdminID) == "" {
		return Identity{}, false
	}
	return v, true
}

// ContextWithToken stores the raw presented token so logout can revoke it.
func ContextWithToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext returns the raw token presented with the request.
func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tokenKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
