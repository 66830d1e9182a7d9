package feed

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no feed URL has been configured.
var ErrNotConfigured = errors.New("feed: no feed url configured")

// FormatError means the upstream returned something that is not a data feed,
// typically a web page instead of a CSV/JSON export URL.
type FormatError struct {
	ContentType string
	Reason      string
}

func (e *FormatError) Error() string {
	if e.ContentType != "" {
		return fmt.Sprintf("feed: %s (content-type %q); provide a direct CSV or JSON URL", e.Reason, e.ContentType)
	}
	return fmt.Sprintf("feed: %s; provide a direct CSV or JSON URL", e.Reason)
}
