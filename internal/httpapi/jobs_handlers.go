package httpapi

import (
	"net/http"
	"sort"
	"strings"
)

type JobsHandler struct {
	Deps Deps
}

// List returns every normalized listing as {"jobs": [...]}.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	repo := h.Deps.NewRepo(h.Deps.cfg())
	jobs, err := repo.Jobs(r.Context())
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"jobs": jobs})
}

// GetByPath serves /jobs/{id}. A missing id is a 404, not a pipeline error.
func (h JobsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	repo := h.Deps.NewRepo(h.Deps.cfg())
	job, err := repo.JobByID(r.Context(), id)
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}
	if job == nil {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
		return
	}
	writeJSON(w, job)
}

// Categories returns the distinct category list, sorted for display.
func (h JobsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	repo := h.Deps.NewRepo(h.Deps.cfg())
	cats, err := repo.Categories(r.Context())
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}

	seen := map[string]bool{}
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	writeJSON(w, map[string]any{"categories": out})
}
