package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// Config holds everything the fetcher needs; the feed URL is injected here
// instead of being read from the environment at call time.
type Config struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// Fetcher retrieves the configured feed and decodes it into raw rows.
// It holds no state between calls beyond the shared politeness limiter.
type Fetcher struct {
	cfg     Config
	hc      *http.Client
	limiter *HostLimiter
}

// New builds a Fetcher. limiter may be nil; callers that rebuild fetchers on
// config reload should pass a shared one so limiter state survives.
func New(cfg Config, limiter *HostLimiter) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "JobBoard/1.0 (+local)"
	}
	if limiter == nil {
		limiter = NewHostLimiter(2, 4)
	}
	return &Fetcher{
		cfg:     cfg,
		hc:      &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
	}
}

// Rows performs one uncached retrieval of the feed and decodes it.
func (f *Fetcher) Rows(ctx context.Context) ([]Row, error) {
	text, ct, _, err := f.fetchText(ctx)
	if err != nil {
		return nil, err
	}
	return DecodeRows(text, ct)
}

// Probe describes the raw upstream response, for the debug API.
type Probe struct {
	URL         string `json:"url"`
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Bytes       int    `json:"bytes"`
	Head        string `json:"head"`
}

// ProbeSource fetches the feed and reports what came back without decoding it.
func (f *Fetcher) ProbeSource(ctx context.Context) (Probe, error) {
	text, ct, status, err := f.fetchText(ctx)
	if err != nil {
		return Probe{}, err
	}
	head := text
	if len(head) > 500 {
		head = head[:500]
	}
	return Probe{
		URL:         f.cfg.URL,
		Status:      status,
		ContentType: ct,
		Bytes:       len(text),
		Head:        head,
	}, nil
}

func (f *Fetcher) fetchText(ctx context.Context) (body, contentType string, status int, err error) {
	u := strings.TrimSpace(f.cfg.URL)
	if u == "" {
		return "", "", 0, ErrNotConfigured
	}
	if err := f.limiter.WaitURL(ctx, u); err != nil {
		return "", "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", "", 0, fmt.Errorf("feed: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Cache-Control", "no-cache")

	res, err := f.hc.Do(req)
	if err != nil {
		return "", "", 0, fmt.Errorf("feed: get feed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", "", res.StatusCode, fmt.Errorf("feed: upstream status %d", res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", "", res.StatusCode, fmt.Errorf("feed: read body: %w", err)
	}
	b = stripBOM(b)

	ct := strings.ToLower(strings.TrimSpace(res.Header.Get("Content-Type")))
	return string(b), ct, res.StatusCode, nil
}

var (
	doctypeRe = regexp.MustCompile(`(?i)^<!doctype html`)
	htmlTagRe = regexp.MustCompile(`(?i)<html`)
)

// DecodeRows routes feed text to the right decoder: JSON array (or an object
// wrapping one under "data"), then the visualization-query shape, then CSV.
// The first applicable decoder wins. HTML means the URL points at a page,
// not a data export, and is rejected outright.
func DecodeRows(text, contentType string) ([]Row, error) {
	if isHTML(text, contentType) {
		return nil, &FormatError{ContentType: contentType, Reason: "feed url returns HTML"}
	}

	trimmed := strings.TrimSpace(text)
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		switch t := v.(type) {
		case []any:
			return rowsFromObjects(t), nil
		case map[string]any:
			if data, ok := t["data"].([]any); ok {
				return rowsFromObjects(data), nil
			}
		}
		// valid JSON in an unrecognized shape falls through
	}

	if strings.Contains(text, gvizMarker) {
		return parseGviz(text)
	}

	return ParseCSV(text), nil
}

func isHTML(text, contentType string) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	t := strings.TrimSpace(text)
	return doctypeRe.MatchString(t) || htmlTagRe.MatchString(t)
}

func stripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
