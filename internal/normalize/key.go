package normalize

import (
	"regexp"
	"strings"

	"jobboard-engine/internal/feed"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Key canonicalizes a feed header: trim, lower-case, and collapse every run
// of non-alphanumeric characters to a single underscore. "Job Title",
// "job-title" and "JOB_TITLE " all become "job_title". Applying Key to its
// own output is a no-op.
func Key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return nonAlnumRun.ReplaceAllString(s, "_")
}

// Row is a feed row after header canonicalization. Key order follows the
// source header order; when two headers collapse to the same canonical key
// the last value wins but the first position is kept.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow canonicalizes every header of a raw feed row.
func NewRow(raw feed.Row) Row {
	r := Row{values: make(map[string]string, raw.Len())}
	for _, k := range raw.Keys() {
		ck := Key(k)
		if _, seen := r.values[ck]; !seen {
			r.keys = append(r.keys, ck)
		}
		r.values[ck] = raw.Get(k)
	}
	return r
}

// Get returns the trimmed value for a canonical key, or "".
func (r Row) Get(key string) string { return strings.TrimSpace(r.values[key]) }

// Has reports whether the key is present with a non-blank value.
func (r Row) Has(key string) bool { return r.Get(key) != "" }

// Keys lists canonical keys in source order.
func (r Row) Keys() []string { return r.keys }
