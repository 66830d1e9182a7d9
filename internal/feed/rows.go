package feed

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Row is one loosely-typed feed record: original header text mapped to a
// string value. Key order is preserved so downstream header matching has a
// deterministic tie-break.
type Row struct {
	keys   []string
	values map[string]string
}

// Set stores a value under the original header text. Repeated headers
// overwrite the value but keep the first position.
func (r *Row) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for the original header text, or "".
func (r *Row) Get(key string) string { return r.values[key] }

// Keys returns the headers in their original order.
func (r *Row) Keys() []string { return r.keys }

// Len reports the number of distinct headers.
func (r *Row) Len() int { return len(r.keys) }

// Map returns a plain map copy, used by the debug API.
func (r *Row) Map() map[string]string {
	m := make(map[string]string, len(r.keys))
	for _, k := range r.keys {
		m[k] = r.values[k]
	}
	return m
}

func (r Row) MarshalJSON() ([]byte, error) { return json.Marshal(r.Map()) }

// rowsFromObjects converts decoded JSON items into rows. Non-object items
// become empty rows so positional identifier fallbacks stay aligned with the
// source. Object keys are sorted: JSON decoding loses declaration order and
// header matching needs a stable one.
func rowsFromObjects(items []any) []Row {
	out := make([]Row, 0, len(items))
	for _, item := range items {
		var row Row
		obj, ok := item.(map[string]any)
		if ok {
			keys := make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				row.Set(k, stringifyCell(obj[k]))
			}
		}
		out = append(out, row)
	}
	return out
}

// stringifyCell renders a decoded JSON value the way the feed's consumers
// expect to see cell text. Floats drop the trailing ".0" on whole numbers.
func stringifyCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
