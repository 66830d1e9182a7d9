package events

import (
	"encoding/json"
	"time"
)

// Event types published by the ingestion pipeline.
const (
	TypeFeedOK    = "feed_ok"
	TypeFeedError = "feed_error"
	TypePing      = "ping"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// FeedOK describes one successful ingestion pass.
func FeedOK(rows, jobs int, elapsed time.Duration) string {
	return MakeEvent("", TypeFeedOK, 1, map[string]any{
		"rows":       rows,
		"jobs":       jobs,
		"elapsed_ms": elapsed.Milliseconds(),
	})
}

// FeedError describes a failed ingestion pass.
func FeedError(err error) string {
	return MakeEvent("", TypeFeedError, 1, map[string]any{
		"error": err.Error(),
	})
}
