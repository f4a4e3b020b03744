package httpapi

import (
	"net/http"
	"strings"

	"aureon.ai/internal/audit"
	"aureon.ai/internal/content"
)

// --- public surface ---

func (a *API) handlePublicPosts(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.PublishedPosts(r.Context())
		return collection(items), err
	})
}

func (a *API) handlePublicPostsByCategory(w http.ResponseWriter, r *http.Request) {
	category := pathValue(strings.TrimPrefix(r.URL.Path, "/content/posts/category/"))
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.PostsByCategory(r.Context(), content.PostCategory(category), true)
		return collection(items), err
	})
}

func (a *API) handlePublicSolutions(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.ActiveSolutions(r.Context())
		return collection(items), err
	})
}

func (a *API) handlePublicIndustries(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.ActiveIndustries(r.Context())
		return collection(items), err
	})
}

func (a *API) handlePublicProjects(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.ActiveProjects(r.Context())
		return collection(items), err
	})
}

func (a *API) handlePublicGallery(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.PublishedGallery(r.Context())
		return collection(items), err
	})
}

func (a *API) handlePublicGalleryFeatured(w http.ResponseWriter, r *http.Request) {
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.FeaturedGallery(r.Context())
		return collection(items), err
	})
}

func (a *API) handlePublicGalleryByCategory(w http.ResponseWriter, r *http.Request) {
	category := pathValue(strings.TrimPrefix(r.URL.Path, "/content/gallery/category/"))
	a.requireGet(w, r, func() (any, error) {
		items, err := a.content.GalleryByCategory(r.Context(), content.GalleryCategory(category), true)
		return collection(items), err
	})
}

// --- back office: posts ---

func (a *API) handlePostsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := a.content.ListPosts(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case http.MethodPost:
		var p content.Post
		if err := decodeJSON(w, r, &p); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		p.ID = ""
		created, err := a.content.CreatePost(r.Context(), &p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.post.created", map[string]any{"post_id": created.ID})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handlePostResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r, "/admin/posts/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := a.content.FindPost(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		var p content.Post
		if err := decodeJSON(w, r, &p); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		p.ID = id
		updated, err := a.content.UpdatePost(r.Context(), &p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.post.updated", map[string]any{"post_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.content.DeletePost(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.post.deleted", map[string]any{"post_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// --- back office: solutions ---

func (a *API) handleSolutionsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := a.content.ListSolutions(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case http.MethodPost:
		var sol content.Solution
		if err := decodeJSON(w, r, &sol); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		sol.ID = ""
		created, err := a.content.CreateSolution(r.Context(), &sol)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.solution.created", map[string]any{"solution_id": created.ID})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleSolutionResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r, "/admin/solutions/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		sol, err := a.content.FindSolution(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sol)
	case http.MethodPut:
		var sol content.Solution
		if err := decodeJSON(w, r, &sol); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		sol.ID = id
		updated, err := a.content.UpdateSolution(r.Context(), &sol)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.solution.updated", map[string]any{"solution_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.content.DeleteSolution(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.solution.deleted", map[string]any{"solution_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// --- back office: industries ---

func (a *API) handleIndustriesCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := a.content.ListIndustries(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case http.MethodPost:
		var ind content.Industry
		if err := decodeJSON(w, r, &ind); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		ind.ID = ""
		created, err := a.content.CreateIndustry(r.Context(), &ind)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.industry.created", map[string]any{"industry_id": created.ID})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleIndustryResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r, "/admin/industries/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		ind, err := a.content.FindIndustry(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ind)
	case http.MethodPut:
		var ind content.Industry
		if err := decodeJSON(w, r, &ind); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		ind.ID = id
		updated, err := a.content.UpdateIndustry(r.Context(), &ind)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.industry.updated", map[string]any{"industry_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.content.DeleteIndustry(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.industry.deleted", map[string]any{"industry_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// --- back office: projects ---

func (a *API) handleProjectsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := a.content.ListProjects(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case http.MethodPost:
		var p content.Project
		if err := decodeJSON(w, r, &p); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		p.ID = ""
		created, err := a.content.CreateProject(r.Context(), &p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.project.created", map[string]any{"project_id": created.ID})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleProjectResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r, "/admin/projects/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		p, err := a.content.FindProject(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case http.MethodPut:
		var p content.Project
		if err := decodeJSON(w, r, &p); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		p.ID = id
		updated, err := a.content.UpdateProject(r.Context(), &p)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.project.updated", map[string]any{"project_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.content.DeleteProject(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.project.deleted", map[string]any{"project_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// --- back office: gallery ---

func (a *API) handleGalleryCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := a.content.ListGallery(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, collection(items))
	case http.MethodPost:
		var g content.GalleryItem
		if err := decodeJSON(w, r, &g); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		g.ID = ""
		created, err := a.content.CreateGalleryItem(r.Context(), &g)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.gallery.created", map[string]any{"gallery_id": created.ID})
		writeJSON(w, http.StatusCreated, created)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleGalleryResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(w, r, "/admin/gallery/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodGet:
		g, err := a.content.FindGalleryItem(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, g)
	case http.MethodPut:
		var g content.GalleryItem
		if err := decodeJSON(w, r, &g); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		g.ID = id
		updated, err := a.content.UpdateGalleryItem(r.Context(), &g)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.gallery.updated", map[string]any{"gallery_id": id})
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.content.DeleteGalleryItem(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "content.gallery.deleted", map[string]any{"gallery_id": id})
		writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

// resourceID extracts the trailing id segment; nested paths are 404s.
func resourceID(w http.ResponseWriter, r *http.Request, prefix string) (string, bool) {
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return "", false
	}
	return id, true
}
