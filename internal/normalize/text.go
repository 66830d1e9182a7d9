package normalize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses whitespace runs (including non-breaking spaces) to
// single spaces and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripHTML flattens markup embedded in a cell down to its text content.
// Sheet descriptions pasted from rich-text editors arrive full of tags.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CleanText(s)
	}
	return CleanText(doc.Text())
}

// CanonLocationType maps an explicit location-type cell to Remote, Hybrid or
// Onsite. Boolean-ish values come from sheets with a bare "Remote" checkbox
// column. Anything unrecognized returns "" so inference can take over.
func CanonLocationType(s string) string {
	switch Key(s) {
	case "remote", "yes", "true", "y", "1":
		return "Remote"
	case "hybrid":
		return "Hybrid"
	case "onsite", "on_site", "in_person", "no", "false", "n", "0":
		return "Onsite"
	default:
		return ""
	}
}

// InferLocationType guesses Remote/Hybrid/Onsite from free text when the
// feed has no explicit location-type column. Returns "" when nothing matches.
func InferLocationType(location, title, desc string) string {
	blob := strings.ToLower(strings.Join([]string{location, title, desc}, " "))

	switch {
	case strings.Contains(blob, "remote"):
		return "Remote"
	case strings.Contains(blob, "hybrid"):
		return "Hybrid"
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") || strings.Contains(blob, "on site"):
		return "Onsite"
	default:
		return ""
	}
}
