package routing

import "testing"

func TestIsValidSlug(t *testing.T) {
	valid := []string{"la", "la-county", "winnetka", "roof-repair", "91306", "a"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Fatalf("expected %q to be a valid slug", s)
		}
	}

	invalid := []string{"", "La", "la_county", "la county", "café", "roof.repair", "a/b"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestIsValidZip(t *testing.T) {
	if !IsValidZip("91306") {
		t.Fatal("expected 91306 to validate")
	}
	for _, s := range []string{"", "123", "123456", "9130a", "91 06", "９１３０６"} {
		if IsValidZip(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestIsReservedTopSegment(t *testing.T) {
	reserved := []string{"favicon.ico", "robots.txt", "sitemap.xml", "sitemap-index.xml", "manifest.json", "api", "admin", "_next"}
	for _, s := range reserved {
		if !IsReservedTopSegment(s) {
			t.Fatalf("expected %q to be reserved", s)
		}
	}
	for _, s := range []string{"", "la-county", "sitemap", "apis"} {
		if IsReservedTopSegment(s) {
			t.Fatalf("expected %q not to be reserved", s)
		}
	}
}

func TestNormalizeSlugDisplayNames(t *testing.T) {
	got, err := NormalizeSlug("Roof Repair")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "roof-repair" {
		t.Fatalf("expected roof-repair, got %q", got)
	}
	if !IsValidSlug(got) {
		t.Fatalf("normalized slug %q must satisfy the segment grammar", got)
	}
}
