package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var numberToken = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Amount extracts the first numeric token from raw compensation text.
// "$52,000/year" becomes 52000; a range like "$18.50 - $22.75" yields its
// lower bound 18.5. Text with no digits yields ok=false.
func Amount(s string) (float64, bool) {
	tok := numberToken.FindString(s)
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Unit maps a free-text pay period onto one of the canonical unit tokens
// by substring match. Unmatched text yields "".
func Unit(s string) string {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "hour") || strings.Contains(l, "/hr"):
		return "hour"
	case strings.Contains(l, "day") || strings.Contains(l, "daily"):
		return "day"
	case strings.Contains(l, "week"):
		return "week"
	case strings.Contains(l, "month"):
		return "month"
	case strings.Contains(l, "year") || strings.Contains(l, "annual") || strings.Contains(l, "/yr"):
		return "year"
	default:
		return ""
	}
}
