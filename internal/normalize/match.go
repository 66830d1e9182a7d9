package normalize

import "regexp"

// FindBest scans candidate patterns in descending priority order and returns
// the first row key matching any pattern at that level. Ties among keys
// matching the same pattern go to the earliest key in row order. Patterns are
// case-insensitive regular expressions; plain words act as substring tests.
//
// This is best-effort header inference for vocabularies the exact fallback
// chains don't know. The tie-break rules above are the whole contract; no
// scoring beyond priority order happens.
func FindBest(r Row, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		for _, k := range r.Keys() {
			if p.MatchString(k) && r.Has(k) {
				return k, true
			}
		}
	}
	return "", false
}

// mustPatterns compiles a priority-ordered pattern list, case-insensitive.
func mustPatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}
