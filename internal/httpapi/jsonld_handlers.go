package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"jobboard-engine/internal/jsonld"
)

type JSONLDHandler struct {
	Deps Deps
}

// GetByPath serves /jobs/{id}/jsonld: the schema.org JobPosting document the
// rendering layer embeds in the detail page.
func (h JSONLDHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id = strings.TrimSuffix(id, "/jsonld")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return
	}

	cfg := h.Deps.cfg()
	repo := h.Deps.NewRepo(cfg)
	job, err := repo.JobByID(r.Context(), id)
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}
	if job == nil {
		WriteError(w, r, http.StatusNotFound, "not_found", "no such job")
		return
	}

	w.Header().Set("Content-Type", "application/ld+json")
	_ = json.NewEncoder(w).Encode(jsonld.FromJob(*job, cfg.App.SiteURL))
}
