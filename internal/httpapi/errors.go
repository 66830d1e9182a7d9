package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobboard-engine/internal/feed"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// WriteFeedError maps pipeline failures onto the error envelope. A missing
// feed URL is our misconfiguration (500); everything else means the upstream
// handed us something unusable (502).
func WriteFeedError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *feed.FormatError
	switch {
	case errors.Is(err, feed.ErrNotConfigured):
		WriteError(w, r, http.StatusInternalServerError, "feed_not_configured", err.Error())
	case errors.As(err, &fe):
		WriteError(w, r, http.StatusBadGateway, "upstream_format", err.Error())
	default:
		WriteError(w, r, http.StatusBadGateway, "upstream_decode", err.Error())
	}
}
