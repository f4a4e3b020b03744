package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"aureon.ai/internal/audit"
	"aureon.ai/internal/auth"
	"aureon.ai/internal/obs"
)

type createAdminRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	Admin     *auth.Admin `json:"admin"`
}

func (a *API) handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req createAdminRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := a.auth.CreateAdmin(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "admin.created", map[string]any{
		"admin_id": admin.ID,
		"username": admin.Username,
	})
	writeJSON(w, http.StatusCreated, admin)
}

func (a *API) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Username) == "" && strings.TrimSpace(req.Email) == "" {
		writeError(w, r, http.StatusBadRequest, "username or email is required")
		return
	}

	token, expiresAt, admin, err := a.auth.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			obs.CountAuthFailure()
			writeError(w, r, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "admin.login", map[string]any{
		"admin_id": admin.ID,
		"username": admin.Username,
	})

	a.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, loginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		Admin:     admin,
	})
}

func (a *API) handleAdminProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		a.rejectUnauthorized(w, r)
		return
	}
	admin, err := a.auth.Profile(r.Context(), identity.AdminID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}

// handleAdminLogout revokes the presented token and clears the cookie.
// Both always happen; a repeat logout of the same session still gets a 201.
func (a *API) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		a.rejectUnauthorized(w, r)
		return
	}
	if err := a.auth.Logout(r.Context(), token); err != nil {
		writeServiceError(w, r, err)
		return
	}

	_ = audit.LogEvent(r.Context(), "admin.logout", nil)

	a.clearSessionCookie(w)
	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "logged_out",
	})
}
