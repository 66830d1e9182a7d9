package httpapi

import (
	"net/http"
	"strings"
)

// NewMux wires the read surface: jobs, categories, JSON-LD, SEO, debug,
// config, SSE events, health.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{Deps: d}
	lh := JSONLDHandler{Deps: d}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/jsonld") {
				lh.GetByPath(w, r)
				return
			}
			jh.GetByPath(w, r)
		},
	}))
	mux.HandleFunc("/categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Categories,
	}))

	// SEO
	sh := SEOHandler{Deps: d}
	mux.HandleFunc("/sitemap.xml", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Sitemap,
	}))
	mux.HandleFunc("/robots.txt", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Robots,
	}))

	// Debug
	dh := DebugHandler{Deps: d}
	mux.HandleFunc("/debug/rows", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Rows,
	}))
	mux.HandleFunc("/debug/source", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Source,
	}))

	// Config
	ch := ConfigHandler{Deps: d}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	hh := HealthHandler{Deps: d}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
