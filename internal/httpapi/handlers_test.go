package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/feed"
	"jobboard-engine/internal/jobs"
)

const fixtureCSV = "Job Title,Business Name,City,State,Zip,Category,Apply URL\n" +
	"Plumber,Acme Plumbing,Boston,MA,02108,Trades,https://acme.example/apply\n" +
	"Electrician,Beta Electric,Salem,MA,01970,Trades,\n" +
	"Designer,Gamma Studio,Portland,ME,04101,Creative,\n"

// upstream serves the given body as the remote sheet export.
func upstream(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestDeps(t *testing.T, feedURL string) Deps {
	t.Helper()

	var cfg config.Config
	cfg.App.Port = 8787
	cfg.App.SiteURL = "https://jobs.example"
	cfg.Feed.URL = feedURL

	val := &atomic.Value{}
	val.Store(cfg)

	newFetcher := func(c config.Config) *feed.Fetcher {
		return feed.New(feed.Config{
			URL:     c.Feed.URL,
			Timeout: 5 * time.Second,
		}, nil)
	}

	return Deps{
		Hub:         events.NewHub(),
		CfgVal:      val,
		UserCfgPath: filepath.Join(t.TempDir(), "config.yml"),
		LoadCfg:     func() (config.Config, error) { return cfg, nil },
		NewFetcher:  newFetcher,
		NewRepo: func(c config.Config) *jobs.Repo {
			return jobs.NewRepo(newFetcher(c), nil)
		},
	}
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestJobsList(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/jobs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Jobs []domain.Job `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 3)
	assert.Equal(t, "acme-plumbing-plumber-boston-ma", body.Jobs[0].ID)
	assert.Equal(t, "https://acme.example/apply", body.Jobs[0].ApplyURL)
}

func TestJobsList_NotConfigured(t *testing.T) {
	mux := NewMux(newTestDeps(t, ""))

	rec := get(t, mux, "/jobs")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "feed_not_configured", decodeAPIError(t, rec).Error.Code)
}

func TestJobsList_HTMLUpstream(t *testing.T) {
	srv := upstream(t, "text/html", "<!doctype html><html><body>sign in</body></html>")
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/jobs")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream_format", decodeAPIError(t, rec).Error.Code)
}

func TestJobsList_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/jobs")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "upstream_decode", decodeAPIError(t, rec).Error.Code)
}

func TestJobByID(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/jobs/acme-plumbing-plumber-boston-ma")
	require.Equal(t, http.StatusOK, rec.Code)

	var j domain.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &j))
	assert.Equal(t, "Plumber", j.Title)

	rec = get(t, mux, "/jobs/no-such-job")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", decodeAPIError(t, rec).Error.Code)

	rec = get(t, mux, "/jobs/bad/nested/path")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategories_DedupedAndSorted(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Creative", "Trades"}, body.Categories)
}

func TestJSONLD(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/jobs/acme-plumbing-plumber-boston-ma/jsonld")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/ld+json", rec.Header().Get("Content-Type"))

	var p struct {
		Context string `json:"@context"`
		Type    string `json:"@type"`
		Title   string `json:"title"`
		URL     string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "https://schema.org", p.Context)
	assert.Equal(t, "JobPosting", p.Type)
	assert.Equal(t, "Plumber", p.Title)
	assert.Equal(t, "https://acme.example/apply", p.URL)

	rec = get(t, mux, "/jobs/no-such-job/jsonld")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSitemapAndRobots(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<loc>https://jobs.example/job/acme-plumbing-plumber-boston-ma</loc>")

	rec = get(t, mux, "/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://jobs.example/sitemap.xml")
}

func TestDebugRows(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/debug/rows")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int                 `json:"count"`
		Rows  []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "Plumber", body.Rows[0]["Job Title"])
}

func TestDebugSource(t *testing.T) {
	srv := upstream(t, "text/csv", fixtureCSV)
	mux := NewMux(newTestDeps(t, srv.URL))

	rec := get(t, mux, "/debug/source")
	require.Equal(t, http.StatusOK, rec.Code)

	var probe feed.Probe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &probe))
	assert.Equal(t, http.StatusOK, probe.Status)
	assert.Contains(t, probe.ContentType, "text/csv")
	assert.Contains(t, probe.Head, "Job Title")
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("SHEET_URL", "")
	d := newTestDeps(t, "https://sheets.example/export")
	loaded := false
	d.LoadCfg = func() (config.Config, error) {
		loaded = true
		return config.Load(d.UserCfgPath)
	}
	mux := NewMux(d)

	rec := get(t, mux, "/config")
	require.Equal(t, http.StatusOK, rec.Code)

	var cur config.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cur))
	assert.Equal(t, "https://sheets.example/export", cur.Feed.URL)

	cur.Feed.URL = "https://sheets.example/v2"
	body, err := json.Marshal(cur)
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, loaded, "PUT must reload the saved file")
	assert.Equal(t, "https://sheets.example/v2", d.cfg().Feed.URL)
}

func TestConfigPut_RejectsInvalid(t *testing.T) {
	d := newTestDeps(t, "https://sheets.example/export")
	mux := NewMux(d)

	var bad config.Config // port 0
	body, _ := json.Marshal(bad)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(string(body))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "https://sheets.example/export", d.cfg().Feed.URL, "config must be unchanged")
}

func TestHealth(t *testing.T) {
	mux := NewMux(newTestDeps(t, ""))
	rec := get(t, mux, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"feedConfigured":false}`, rec.Body.String())

	mux = NewMux(newTestDeps(t, "https://sheets.example/export"))
	rec = get(t, mux, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"feedConfigured":true}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewMux(newTestDeps(t, ""))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/jobs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
