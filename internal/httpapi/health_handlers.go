package httpapi

import "net/http"

type HealthHandler struct {
	Deps Deps
}

// Health reports liveness plus whether a feed URL is configured, so a probe
// can tell "engine up" apart from "engine up but /jobs will 500".
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":             true,
		"feedConfigured": h.Deps.cfg().Feed.URL != "",
	})
}
