package httpapi

import (
	"net/http"
	"net/url"
	"strings"

	"aureon.ai/internal/audit"
	"aureon.ai/internal/contact"
)

func (a *API) handleContactCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req contact.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = ""

	created, err := a.contacts.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleContactsCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	items, err := a.contacts.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, collection(items))
}

func (a *API) handleContactResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/contacts/")
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
		limit, err := parsePositiveInt(r.URL.Query().Get("limit"), 10, 1, 100)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		items, err := a.contacts.Recent(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case path == "search":
		a.requireGet(w, r, func() (any, error) {
			items, err := a.contacts.Search(r.Context(), r.URL.Query().Get("q"))
			return collection(items), err
		})
	case path == "count":
		a.requireGet(w, r, func() (any, error) {
			count, err := a.contacts.Count(r.Context())
			return map[string]any{"count": count}, err
		})
	case path == "stats":
		a.requireGet(w, r, func() (any, error) {
			return a.contacts.Stats(r.Context())
		})
	case strings.HasPrefix(path, "email/"):
		email := pathValue(strings.TrimPrefix(path, "email/"))
		a.requireGet(w, r, func() (any, error) {
			return a.contacts.FindByEmail(r.Context(), email)
		})
	case strings.HasPrefix(path, "phone/"):
		phone := pathValue(strings.TrimPrefix(path, "phone/"))
		a.requireGet(w, r, func() (any, error) {
			return a.contacts.FindByPhone(r.Context(), phone)
		})
	case strings.HasPrefix(path, "by/"):
		a.contactsByField(w, r, strings.TrimPrefix(path, "by/"))
	case strings.Contains(path, "/"):
		writeError(w, r, http.StatusNotFound, "resource not found")
	default:
		a.contactByID(w, r, path)
	}
}

func (a *API) contactsByField(w http.ResponseWriter, r *http.Request, rest string) {
	name, value, ok := strings.Cut(rest, "/")
	if !ok || value == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	var field contact.Field
	switch name {
	case "name":
		field = contact.FieldName
	case "company":
		field = contact.FieldCompany
	case "country":
		field = contact.FieldCountry
	case "job":
		field = contact.FieldJob
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	value = pathValue(value)
	a.requireGet(w, r, func() (any, error) {
		items, err := a.contacts.ListByField(r.Context(), field, value)
		return collection(items), err
	})
}

func (a *API) contactByID(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		req, err := a.contacts.Find(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	case http.MethodPut:
		var req contact.Request
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		req.ID = id
		updated, err := a.contacts.Update(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "contact.updated", map[string]any{"contact_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		deleted, err := a.contacts.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "contact.deleted", map[string]any{"contact_id": id})
		writeJSON(w, http.StatusOK, deleted)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// requireGet runs fn for GET requests and writes the result, mapping
// errors through writeServiceError.
func (a *API) requireGet(w http.ResponseWriter, r *http.Request, fn func() (any, error)) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	v, err := fn()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// collection keeps empty list responses as [] instead of null.
func collection[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func pathValue(raw string) string {
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}
