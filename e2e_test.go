package folio_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/stanjdev/folio"
	"github.com/stanjdev/folio/internal/config"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

func normalizeHTML(html string) string {
	return regexp.MustCompile(`\s+`).ReplaceAllString(html, " ")
}

func matchSnapshot(t *testing.T, html string) {
	t.Helper()
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, normalizeHTML(html))
}

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Config{SiteHost: "stanjdev.com", SiteName: "Stan J Dev", Lang: "en", Stylesheet: "/static/site.css"}
	defs, err := folio.LoadProjects(cfg)
	if err != nil {
		t.Fatalf("LoadProjects() error = %v", err)
	}
	app, err := folio.New(cfg, nil, folio.ProjectRoutes(defs)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("failed to get %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, string(body)
}

func TestGoodReadsPage(t *testing.T) {
	srv := startServer(t)

	resp, body := get(t, srv.URL+"/projects/goodreads")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `<section class="container"><h2>Final Result:</h2>`) {
		t.Error("expected final result section")
	}

	matchSnapshot(t, body)
}

func TestProjectsIndexPage(t *testing.T) {
	srv := startServer(t)

	resp, body := get(t, srv.URL+"/projects")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `href="/projects/goodreads"`) {
		t.Error("expected goodreads in index")
	}

	matchSnapshot(t, body)
}

func TestConditionalRequest(t *testing.T) {
	srv := startServer(t)

	resp, _ := get(t, srv.URL+"/projects/goodreads")
	etag := resp.Header.Get("ETag")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/projects/goodreads", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("If-None-Match", etag)
	second, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Body.Close()

	if second.StatusCode != http.StatusNotModified {
		t.Errorf("expected status 304, got %d", second.StatusCode)
	}
}
