package routing

import "testing"

func TestCanonicalPathPriorityOrder(t *testing.T) {
	cases := []struct {
		name string
		loc  PageLocator
		want string
	}{
		{
			name: "zip neighborhood service wins over everything",
			loc: PageLocator{
				CountySlug:       "la",
				Zip:              "91306",
				CitySlug:         "los-angeles",
				NeighborhoodSlug: "winnetka",
				ServiceKey:       "roof-repair",
			},
			want: "/la/91306/n/winnetka/roof-repair",
		},
		{
			name: "zip service without neighborhood",
			loc:  PageLocator{CountySlug: "la", Zip: "91306", ServiceKey: "roof-repair"},
			want: "/la/91306/s/roof-repair",
		},
		{
			name: "zip hub without service",
			loc:  PageLocator{CountySlug: "la", Zip: "91306"},
			want: "/la/91306",
		},
		{
			name: "legacy city service without zip",
			loc:  PageLocator{CountySlug: "la", CitySlug: "winnetka", ServiceKey: "roof-repair"},
			want: "/la/winnetka/s/roof-repair",
		},
		{
			name: "neighborhood hub without zip or service",
			loc:  PageLocator{CountySlug: "la", CitySlug: "los-angeles", NeighborhoodSlug: "winnetka"},
			want: "/la/los-angeles/n/winnetka",
		},
		{
			name: "zip service outranks city service when both available",
			loc:  PageLocator{CountySlug: "la", Zip: "91306", CitySlug: "winnetka", ServiceKey: "roof-repair"},
			want: "/la/91306/s/roof-repair",
		},
	}

	for _, tc := range cases {
		got, ok := CanonicalPath(tc.loc)
		if !ok {
			t.Fatalf("%s: expected a canonical path", tc.name)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCanonicalPathIdempotent(t *testing.T) {
	loc := PageLocator{CountySlug: "la", Zip: "91306", NeighborhoodSlug: "winnetka", ServiceKey: "roof-repair"}
	first, ok := CanonicalPath(loc)
	if !ok {
		t.Fatal("expected canonical path")
	}
	second, ok := CanonicalPath(loc)
	if !ok || first != second {
		t.Fatalf("expected identical result on repeat call, got %q then %q", first, second)
	}
}

func TestCanonicalPathInvalidSegmentFallsThrough(t *testing.T) {
	// A malformed zip must not poison the record: the city form still applies.
	loc := PageLocator{CountySlug: "la", Zip: "123", CitySlug: "winnetka", ServiceKey: "roof-repair"}
	got, ok := CanonicalPath(loc)
	if !ok {
		t.Fatal("expected fallthrough to city scheme, got none")
	}
	if got != "/la/winnetka/s/roof-repair" {
		t.Fatalf("got %q, want /la/winnetka/s/roof-repair", got)
	}
}

func TestCanonicalPathInsufficientData(t *testing.T) {
	cases := []PageLocator{
		{},
		{CountySlug: "la"},
		{CountySlug: "la", ServiceKey: "roof-repair"},
		{Zip: "91306", ServiceKey: "roof-repair"},
		{CountySlug: "La County", Zip: "91306"},
		{CountySlug: "admin", Zip: "91306"},
	}
	for i, loc := range cases {
		if got, ok := CanonicalPath(loc); ok {
			t.Fatalf("case %d: expected no canonical path, got %q", i, got)
		}
	}
}

func TestCanonicalSchemeMatchesPathSelection(t *testing.T) {
	loc := PageLocator{CountySlug: "la", Zip: "91306", NeighborhoodSlug: "winnetka", ServiceKey: "roof-repair"}
	scheme, ok := CanonicalScheme(loc)
	if !ok || scheme != SchemeZipNeighborhoodService {
		t.Fatalf("expected %s, got %s (ok=%v)", SchemeZipNeighborhoodService, scheme, ok)
	}

	if _, ok := CanonicalScheme(PageLocator{}); ok {
		t.Fatal("expected no scheme for empty locator")
	}
}
