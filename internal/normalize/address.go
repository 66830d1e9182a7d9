package normalize

import "regexp"

// addressRe matches "<street>, <city>, <ST> <ZIP>" with a two-letter region
// code and an optional 5-digit or ZIP+4 postal code.
var addressRe = regexp.MustCompile(`^\s*(.+?)\s*,\s*([^,]+?)\s*,\s*([A-Za-z]{2})(?:\s+(\d{5}(?:-\d{4})?))?\s*$`)

// SplitAddress splits one composite address string into its parts. When the
// pattern does not match, the whole string is kept as the street and the
// other parts come back empty.
func SplitAddress(s string) (street, city, state, zip string) {
	m := addressRe.FindStringSubmatch(s)
	if m == nil {
		return CleanText(s), "", "", ""
	}
	return m[1], m[2], m[3], m[4]
}
