package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aureon.ai/internal/auth"
	"aureon.ai/internal/chatbot"
	"aureon.ai/internal/config"
	"aureon.ai/internal/contact"
	"aureon.ai/internal/content"
	"aureon.ai/internal/feedback"
	"aureon.ai/internal/obs"
	"aureon.ai/internal/validate"
)

// ReadyProbe reports whether the process can serve traffic (DB ping).
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API is the HTTP layer. It owns the mux and translates service errors
// into status codes; it holds no business rules of its own.
type API struct {
	mux        *http.ServeMux
	readyProbe ReadyProbe
	version    string
	cfg        config.Config

	auth     *auth.Service
	contacts *contact.Service
	feedback *feedback.Service
	content  *content.Service
	chatbot  *chatbot.Service
}

func New(cfg config.Config, rp ReadyProbe, version string,
	authSvc *auth.Service, contacts *contact.Service, fb *feedback.Service,
	contentSvc *content.Service, bot *chatbot.Service) *API {

	a := &API{
		mux:        http.NewServeMux(),
		readyProbe: rp,
		version:    version,
		cfg:        cfg,
		auth:       authSvc,
		contacts:   contacts,
		feedback:   fb,
		content:    contentSvc,
		chatbot:    bot,
	}

	// health/ready/info
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.HandleFunc("/v1/info", a.Info)

	// Prometheus metrics
	a.mux.Handle("/metrics", obs.Handler())

	// admin session lifecycle
	a.mux.HandleFunc("/admin/create", a.handleAdminCreate)
	a.mux.HandleFunc("/admin/login", a.handleAdminLogin)
	a.mux.HandleFunc("/admin/profile", a.handleAdminProfile)
	a.mux.HandleFunc("/admin/logout", a.handleAdminLogout)

	// public surface
	a.mux.HandleFunc("/contact/create", a.handleContactCreate)
	a.mux.HandleFunc("/feedback/create", a.handleFeedbackCreate)
	a.mux.HandleFunc("/feedback/approved", a.handleFeedbackApproved)
	a.mux.HandleFunc("/chatbot/message", a.handleChatbotMessage)
	a.mux.HandleFunc("/content/posts", a.handlePublicPosts)
	a.mux.HandleFunc("/content/posts/category/", a.handlePublicPostsByCategory)
	a.mux.HandleFunc("/content/solutions", a.handlePublicSolutions)
	a.mux.HandleFunc("/content/industries", a.handlePublicIndustries)
	a.mux.HandleFunc("/content/projects", a.handlePublicProjects)
	a.mux.HandleFunc("/content/gallery", a.handlePublicGallery)
	a.mux.HandleFunc("/content/gallery/featured", a.handlePublicGalleryFeatured)
	a.mux.HandleFunc("/content/gallery/category/", a.handlePublicGalleryByCategory)

	// back office (behind the gate)
	a.mux.HandleFunc("/admin/contacts", a.handleContactsCollection)
	a.mux.HandleFunc("/admin/contacts/", a.handleContactResource)
	a.mux.HandleFunc("/admin/feedback", a.handleFeedbackCollection)
	a.mux.HandleFunc("/admin/feedback/", a.handleFeedbackResource)
	a.mux.HandleFunc("/admin/posts", a.handlePostsCollection)
	a.mux.HandleFunc("/admin/posts/", a.handlePostResource)
	a.mux.HandleFunc("/admin/solutions", a.handleSolutionsCollection)
	a.mux.HandleFunc("/admin/solutions/", a.handleSolutionResource)
	a.mux.HandleFunc("/admin/industries", a.handleIndustriesCollection)
	a.mux.HandleFunc("/admin/industries/", a.handleIndustryResource)
	a.mux.HandleFunc("/admin/projects", a.handleProjectsCollection)
	a.mux.HandleFunc("/admin/projects/", a.handleProjectResource)
	a.mux.HandleFunc("/admin/gallery", a.handleGalleryCollection)
	a.mux.HandleFunc("/admin/gallery/", a.handleGalleryResource)
	a.mux.HandleFunc("/admin/chatbot/rules", a.handleChatbotRulesCollection)
	a.mux.HandleFunc("/admin/chatbot/rules/", a.handleChatbotRuleResource)

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler assembles the middleware chain around the mux.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = Logging(h)
	h = RequestID(h)
	h = MaxBodyBytes(h, a.cfg.MaxBodyBytes)
	h = RateLimit(h, a.cfg.RateLimitBurst, a.cfg.RateLimitPerSec)
	h = CORS(h, a.cfg.CORSOrigin)
	h = SecurityHeaders(h)
	return obs.Instrument(h)
}

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "aureon-api",
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (a *API) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "aureon-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": a.version,
	})
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	payload := map[string]any{
		"error": msg,
	}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		payload["request_id"] = rid
	}
	writeJSON(w, code, payload)
}

// writeServiceError maps a domain error to a status code. Validation
// failures come back as 422 with one entry per rejected field.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		payload := map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		}
		if rid := RequestIDFromContext(r.Context()); rid != "" {
			payload["request_id"] = rid
		}
		writeJSON(w, http.StatusUnprocessableEntity, payload)
		return
	}
	switch {
	case errors.Is(err, auth.ErrDuplicateIdentity),
		errors.Is(err, contact.ErrDuplicate):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotFound),
		errors.Is(err, contact.ErrNotFound),
		errors.Is(err, feedback.ErrNotFound),
		errors.Is(err, content.ErrNotFound),
		errors.Is(err, chatbot.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "resource not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func parsePositiveInt(raw string, def, min, max int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit must be an integer")
	}
	if val < min || val > max {
		return 0, fmt.Errorf("limit must be between %d and %d", min, max)
	}
	return val, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	reader := http.MaxBytesReader(w, r.Body, 1<<20)
	defer reader.Close()
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}
