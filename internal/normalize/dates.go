package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ToISO coerces free-form date text into an RFC 3339 UTC instant. Text the
// parser cannot make sense of yields "" rather than an error; a bad date in
// one cell should never fail the row.
func ToISO(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
