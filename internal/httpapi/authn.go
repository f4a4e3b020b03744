package httpapi

import (
	"net/http"
	"strings"

	"aureon.ai/internal/auth"
	"aureon.ai/internal/obs"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

var publicPaths = []string{
	"/",
	"/healthz",
	"/readyz",
	"/metrics",
	"/v1/info",
	"/admin/create",
	"/admin/login",
	"/contact/create",
	"/feedback/create",
	"/feedback/approved",
	"/chatbot/message",
}

var publicPrefixes = []string{
	"/content/",
}

// withAuth is the gate for the back office. Everything outside the
// public surface needs a live session token; every failure collapses
// to the same generic 401 so callers cannot probe for token state.
func (a *API) withAuth(next http.Handler) http.Handler {
	if a == nil || a.auth == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token := a.extractToken(r)
		if token == "" {
			a.rejectUnauthorized(w, r)
			return
		}

		identity, err := a.auth.Authenticate(r.Context(), token)
		if err != nil {
			a.rejectUnauthorized(w, r)
			return
		}

		ctx := auth.ContextWithIdentity(r.Context(), identity)
		ctx = auth.ContextWithToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken prefers the session cookie over the Authorization header
// when both are present.
func (a *API) extractToken(r *http.Request) string {
	if c, err := r.Cookie(a.cfg.CookieName); err == nil {
		if token := strings.TrimSpace(c.Value); token != "" {
			return token
		}
	}
	header := strings.TrimSpace(r.Header.Get(authHeader))
	if header == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return ""
	}
	return strings.TrimSpace(header[len(bearer):])
}

func (a *API) rejectUnauthorized(w http.ResponseWriter, r *http.Request) {
	obs.CountAuthFailure()
	writeError(w, r, http.StatusUnauthorized, "unauthorized")
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// setSessionCookie installs the token cookie the way the frontend
// expects it: HttpOnly, scoped to the whole site, lifetime matching
// the token's.
func (a *API) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.cfg.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
