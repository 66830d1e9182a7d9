package httpapi

import (
	"net/http"

	"jobboard-engine/internal/seo"
)

type SEOHandler struct {
	Deps Deps
}

func (h SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	cfg := h.Deps.cfg()
	repo := h.Deps.NewRepo(cfg)
	jobs, err := repo.Jobs(r.Context())
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}

	b, err := seo.Sitemap(cfg.App.SiteURL, jobs)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "sitemap_render", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write(b)
}

func (h SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(seo.Robots(h.Deps.cfg().App.SiteURL)))
}
