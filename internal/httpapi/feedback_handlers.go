package httpapi

import (
	"net/http"
	"strings"

	"aureon.ai/internal/audit"
	"aureon.ai/internal/feedback"
)

func (a *API) handleFeedbackCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var fb feedback.Feedback
	if err := decodeJSON(w, r, &fb); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	fb.ID = ""

	created, err := a.feedback.Create(r.Context(), &fb)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleFeedbackApproved(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.feedback.ListApproved(r.Context())
		return collection(items), err
	})
}

func (a *API) handleFeedbackCollection(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.feedback.List(r.Context())
		return collection(items), err
	})
}

func (a *API) handleFeedbackResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/feedback/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	switch {
	case path == "recent":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r, http.MethodGet)
			return
		}
		limit, err := parsePositiveInt(r.URL.Query().Get("limit"), 5, 1, 100)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		items, err := a.feedback.Recent(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case strings.HasPrefix(path, "name/"):
		name := pathValue(strings.TrimPrefix(path, "name/"))
		a.requireGet(w, r, func() (any, error) {
			items, err := a.feedback.ListByName(r.Context(), name)
			return collection(items), err
		})
	case strings.HasPrefix(path, "company/"):
		company := pathValue(strings.TrimPrefix(path, "company/"))
		a.requireGet(w, r, func() (any, error) {
			items, err := a.feedback.ListByCompany(r.Context(), company)
			return collection(items), err
		})
	case strings.Contains(path, "/"):
		writeError(w, r, http.StatusNotFound, "resource not found")
	default:
		a.feedbackByID(w, r, path)
	}
}

func (a *API) feedbackByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		fb, err := a.feedback.Find(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, fb)
	case http.MethodPut:
		var fb feedback.Feedback
		if err := decodeJSON(w, r, &fb); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		fb.ID = id
		updated, err := a.feedback.Update(r.Context(), &fb)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		event := "feedback.updated"
		if updated.Approved {
			event = "feedback.approved"
		}
		_ = audit.LogEvent(r.Context(), event, map[string]any{"feedback_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		deleted, err := a.feedback.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "feedback.deleted", map[string]any{"feedback_id": id})
		writeJSON(w, http.StatusOK, deleted)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
