// Package seo renders the sitemap and robots surface from the job list.
package seo

import (
	"encoding/xml"
	"strings"

	"jobboard-engine/internal/domain"
)

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Sitemap renders sitemap.xml: the listing page refreshed hourly, one daily
// entry per job with lastmod taken from the posting date.
func Sitemap(base string, jobs []domain.Job) ([]byte, error) {
	base = strings.TrimRight(base, "/")

	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []urlEntry{
			{Loc: base + "/", ChangeFreq: "hourly", Priority: "1.0"},
		},
	}
	for _, j := range jobs {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        base + "/job/" + j.ID,
			LastMod:    j.DatePosted,
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}

	b, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), b...), nil
}
