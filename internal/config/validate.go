package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims the config and checks it. A missing feed URL is
// a warning, not an error: the engine starts and reports the problem on the
// first read instead of refusing to boot.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Feed.URL = strings.TrimSpace(out.Feed.URL)
	out.App.SiteURL = strings.TrimRight(strings.TrimSpace(out.App.SiteURL), "/")

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Feed.URL == "" {
		res.addWarn("feed.url is empty; /jobs will fail until SHEET_URL or feed.url is set")
	} else {
		u, err := url.Parse(out.Feed.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			res.addErr("feed.url must be an http(s) URL, got %q", out.Feed.URL)
		}
	}

	if out.Feed.TimeoutSeconds < 0 {
		res.addErr("feed.timeout_seconds must be >= 0")
	}
	if out.Feed.HostReqPerSec < 0 {
		res.addErr("feed.host_req_per_sec must be >= 0")
	}
	if out.Feed.HostReqPerSec > 0 && out.Feed.HostBurst <= 0 {
		res.addWarn("feed.host_burst is 0 with a rate set; burst defaults to 1")
	}

	if out.App.SiteURL == "" {
		res.addWarn("app.site_url is empty; sitemap and JSON-LD fall back URLs will be relative")
	}

	return out, res
}
