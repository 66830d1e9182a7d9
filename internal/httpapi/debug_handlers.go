package httpapi

import "net/http"

type DebugHandler struct {
	Deps Deps
}

// Rows returns the decoded rows before any normalization, for checking what
// the sheet actually exports.
func (h DebugHandler) Rows(w http.ResponseWriter, r *http.Request) {
	f := h.Deps.NewFetcher(h.Deps.cfg())
	rows, err := f.Rows(r.Context())
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"count": len(rows), "rows": rows})
}

// Source reports the raw upstream response (status, content type, head) so a
// misconfigured URL can be diagnosed without decoding anything.
func (h DebugHandler) Source(w http.ResponseWriter, r *http.Request) {
	f := h.Deps.NewFetcher(h.Deps.cfg())
	probe, err := f.ProbeSource(r.Context())
	if err != nil {
		WriteFeedError(w, r, err)
		return
	}
	writeJSON(w, probe)
}
