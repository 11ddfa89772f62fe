package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/sitemap"
)

const sitemapTestBase = "https://example.com"

func newSitemapFixture(t *testing.T, published int, opts ...SitemapOption) *http.ServeMux {
	t.Helper()
	repo := pages.NewMemoryRepository()
	svc := pages.NewService(repo)
	ctx := context.Background()
	for i := 0; i < published; i++ {
		page, err := svc.Create(ctx, pages.CreatePageRequest{
			CountySlug: "la",
			Zip:        fmt.Sprintf("9%04d", i),
			ServiceKey: "roof-repair",
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if _, err := svc.Publish(ctx, pages.PublishPageRequest{ID: page.ID}); err != nil {
			t.Fatalf("publish %d: %v", i, err)
		}
	}

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{sitemap.RoutesConfig(sitemapTestBase)},
	})
	urls, err := sitemap.NewURLBuilder(sitemapTestBase, manager)
	if err != nil {
		t.Fatalf("url builder: %v", err)
	}
	partitioner := sitemap.NewPartitioner(repo, urls, sitemap.WithChunkSize(2))

	mux := http.NewServeMux()
	NewSitemapAPI(partitioner, sitemapTestBase, opts...).Register(mux)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestSitemapIndexEnumeratesShards(t *testing.T) {
	mux := newSitemapFixture(t, 5)
	rec := get(t, mux, "/sitemap-index.xml")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Fatalf("content type %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != sitemapCacheControl {
		t.Fatalf("cache control %q", cc)
	}

	body := rec.Body.String()
	for i := 0; i < 3; i++ {
		loc := fmt.Sprintf("<loc>%s/sitemaps/%d</loc>", sitemapTestBase, i)
		if !strings.Contains(body, loc) {
			t.Fatalf("missing %s in:\n%s", loc, body)
		}
	}
	if strings.Contains(body, "/sitemaps/3") {
		t.Fatalf("extra shard in:\n%s", body)
	}
}

func TestSitemapShardServesCanonicalURLs(t *testing.T) {
	mux := newSitemapFixture(t, 3)
	rec := get(t, mux, "/sitemaps/0")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Count(body, "<url>") != 2 {
		t.Fatalf("want 2 urls:\n%s", body)
	}
	if !strings.Contains(body, "<lastmod>") {
		t.Fatalf("missing lastmod:\n%s", body)
	}
}

func TestSitemapShardUnknownIndex(t *testing.T) {
	mux := newSitemapFixture(t, 1)
	if rec := get(t, mux, "/sitemaps/notanumber"); rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	// Past-the-end shards are valid, just empty.
	rec := get(t, mux, "/sitemaps/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<url>") {
		t.Fatalf("expected empty shard:\n%s", rec.Body.String())
	}
}

func TestFullSitemapExpandsHierarchy(t *testing.T) {
	mux := newSitemapFixture(t, 1)
	rec := get(t, mux, "/sitemap.xml")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	// One zip+service record yields the zip hub and the service page.
	if !strings.Contains(body, "<loc>https://example.com/la/90000</loc>") {
		t.Fatalf("missing hub:\n%s", body)
	}
	if !strings.Contains(body, "<loc>https://example.com/la/90000/s/roof-repair</loc>") {
		t.Fatalf("missing service url:\n%s", body)
	}
}

func TestSitemapEndpointsWhenIndexingDisabled(t *testing.T) {
	mux := newSitemapFixture(t, 3, WithIndexingEnabled(false))

	for _, path := range []string{"/sitemap.xml", "/sitemap-index.xml", "/sitemaps/0"} {
		rec := get(t, mux, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", path, rec.Code)
		}
		body := rec.Body.String()
		if strings.Contains(body, "<url>") || strings.Contains(body, "<sitemap>") {
			t.Fatalf("%s: expected minimal body:\n%s", path, body)
		}
	}

	rec := get(t, mux, "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("robots status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Disallow: /") {
		t.Fatalf("robots body:\n%s", rec.Body.String())
	}
}

func TestRobotsAdvertisesSitemapIndex(t *testing.T) {
	mux := newSitemapFixture(t, 1)
	rec := get(t, mux, "/robots.txt")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sitemap: https://example.com/sitemap-index.xml") {
		t.Fatalf("robots body:\n%s", rec.Body.String())
	}
}
