package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
)

func TestBuildEntriesExpandsHierarchy(t *testing.T) {
	urls := testURLBuilder(t)
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*pages.Page{{
		DocKey:     "pg-winnetka",
		CountySlug: "la-county",
		Zip:        "91306",
		PlaceSlug:  "winnetka",
		PlaceKind:  pages.PlaceKindNeighborhood,
		ServiceKey: "roof-repair",
		UpdatedAt:  updated,
	}}

	entries := BuildEntries(records, urls)

	want := []string{
		"https://example.com/la-county/91306",
		"https://example.com/la-county/91306/n/winnetka",
		"https://example.com/la-county/91306/n/winnetka/roof-repair",
		"https://example.com/la-county/91306/s/roof-repair",
	}
	if len(entries) != len(want) {
		got := make([]string, 0, len(entries))
		for _, e := range entries {
			got = append(got, e.URL)
		}
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, e := range entries {
		if e.URL != want[i] {
			t.Fatalf("entry %d = %q, want %q", i, e.URL, want[i])
		}
		if !e.LastModified.Equal(updated) {
			t.Fatalf("entry %d lastmod %s", i, e.LastModified)
		}
	}
}

func TestBuildEntriesDedupesSharedHubs(t *testing.T) {
	urls := testURLBuilder(t)
	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	records := []*pages.Page{
		{CountySlug: "la", Zip: "91306", ServiceKey: "roof-repair", UpdatedAt: older},
		{CountySlug: "la", Zip: "91306", ServiceKey: "siding", UpdatedAt: newer},
	}

	entries := BuildEntries(records, urls)

	var hub *Entry
	for i := range entries {
		if entries[i].URL == "https://example.com/la/91306" {
			if hub != nil {
				t.Fatal("hub emitted twice")
			}
			hub = &entries[i]
		}
	}
	if hub == nil {
		t.Fatal("hub missing")
	}
	if !hub.LastModified.Equal(newer) {
		t.Fatalf("hub lastmod %s, want newest contributor %s", hub.LastModified, newer)
	}
}

func TestBuildEntriesCityRecords(t *testing.T) {
	urls := testURLBuilder(t)
	records := []*pages.Page{{
		CountySlug: "la",
		PlaceSlug:  "los-angeles",
		PlaceKind:  pages.PlaceKindCity,
		ServiceKey: "roof-repair",
		UpdatedAt:  time.Now().UTC(),
	}}

	entries := BuildEntries(records, urls)
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].URL != "https://example.com/la/los-angeles/s/roof-repair" {
		t.Fatalf("url %q", entries[0].URL)
	}
}

func TestBuildEntriesSkipsInvalidGeography(t *testing.T) {
	urls := testURLBuilder(t)
	records := []*pages.Page{
		{CountySlug: "admin", Zip: "91306", ServiceKey: "roof-repair", UpdatedAt: time.Now()},
		{Zip: "91306", ServiceKey: "roof-repair", UpdatedAt: time.Now()},
	}
	if entries := BuildEntries(records, urls); len(entries) != 0 {
		t.Fatalf("got %d entries, want 0", len(entries))
	}
}

func TestRenderURLSet(t *testing.T) {
	set := NewURLSet([]Entry{
		{URL: "https://example.com/la/91306", LastModified: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		{URL: "https://example.com/la/91307"},
	})
	out, err := Render(set)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(out)

	for _, want := range []string{
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://example.com/la/91306</loc>",
		"<lastmod>2026-03-01T12:00:00Z</lastmod>",
		"<loc>https://example.com/la/91307</loc>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("output missing %q:\n%s", want, body)
		}
	}
	// Unknown lastmod is omitted, not emitted empty.
	if strings.Count(body, "<lastmod>") != 1 {
		t.Fatalf("unexpected lastmod count:\n%s", body)
	}
}

func TestRenderIndex(t *testing.T) {
	idx := NewIndex([]string{
		"https://example.com/sitemaps/0",
		"https://example.com/sitemaps/1",
	})
	out, err := Render(idx)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(out)
	if !strings.HasPrefix(body, xmlHeaderPrefix) {
		t.Fatalf("missing xml declaration:\n%s", body)
	}
	if !strings.Contains(body, `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`) {
		t.Fatalf("missing sitemapindex root:\n%s", body)
	}
	if strings.Count(body, "<sitemap>") != 2 {
		t.Fatalf("want 2 sitemap refs:\n%s", body)
	}
}

const xmlHeaderPrefix = `<?xml version="1.0" encoding="UTF-8"?>`
