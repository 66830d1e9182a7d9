package seo

import "strings"

// Robots renders robots.txt: allow everything, point at the sitemap.
func Robots(base string) string {
	base = strings.TrimRight(base, "/")
	return "User-agent: *\nAllow: /\n\nSitemap: " + base + "/sitemap.xml\n"
}
