package routing

import "strings"

// Scheme identifies one of the URL shapes the platform serves. Several
// generations of routing coexist; only some shapes are canonical.
type Scheme string

const (
	SchemeZipNeighborhoodService Scheme = "zip_neighborhood_service"
	SchemeZipNeighborhood        Scheme = "zip_neighborhood"
	SchemeZipService             Scheme = "zip_service"
	SchemeZip                    Scheme = "zip"
	SchemeCityService            Scheme = "city_service"
	SchemeCityNeighborhood       Scheme = "city_neighborhood"
	SchemeLegacyDocID            Scheme = "legacy_doc_id"
	SchemeOpaqueID               Scheme = "opaque_id"
)

// legacyJoiner glues the segments of first-generation document ids, which
// doubled as URL paths.
const legacyJoiner = "__"

// LocationParams holds the typed location parameters extracted from a path.
type LocationParams struct {
	County       string
	City         string
	Neighborhood string
	Zip          string
}

// RouteMatch describes which scheme an inbound path matched and the
// parameters it carried. For SchemeLegacyDocID, RedirectPath holds the
// canonical target for a 301; canonical schemes never redirect further.
type RouteMatch struct {
	Scheme       Scheme
	Location     LocationParams
	ServiceKey   string
	DocID        string
	Canonical    bool
	RedirectPath string
}

// IsRedirect reports whether this match must answer with a permanent redirect
// instead of rendering.
func (m RouteMatch) IsRedirect() bool {
	return m.RedirectPath != ""
}

// schemeMatcher pairs a scheme with its segment matcher. Matchers are
// evaluated in declaration order, most specific shape first, so the priority
// order is data rather than control flow.
type schemeMatcher struct {
	scheme Scheme
	match  func(segments []string) (RouteMatch, bool)
}

var schemeMatchers = []schemeMatcher{
	{SchemeZipNeighborhoodService, matchZipNeighborhoodService},
	{SchemeZipNeighborhood, matchZipNeighborhood},
	{SchemeZipService, matchZipService},
	{SchemeCityService, matchCityService},
	{SchemeCityNeighborhood, matchCityNeighborhood},
	{SchemeZip, matchZip},
	{SchemeLegacyDocID, matchLegacyDocID},
	{SchemeOpaqueID, matchOpaqueID},
}

// MatchPath resolves an inbound URL path against the supported schemes. It
// returns false when no scheme matches; callers answer 404. Validation
// failures inside a structured scheme fall through to the next scheme rather
// than erroring, so a malformed zip can still match a city-shaped route.
func MatchPath(path string) (RouteMatch, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return RouteMatch{}, false
	}
	if IsReservedTopSegment(segments[0]) {
		return RouteMatch{}, false
	}

	for _, m := range schemeMatchers {
		if match, ok := m.match(segments); ok {
			return match, true
		}
	}
	return RouteMatch{}, false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchZipNeighborhoodService(segments []string) (RouteMatch, bool) {
	if len(segments) != 5 || segments[2] != "n" {
		return RouteMatch{}, false
	}
	if !IsValidSlug(segments[0]) || !IsValidZip(segments[1]) || !IsValidSlug(segments[3]) || !IsValidSlug(segments[4]) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme:     SchemeZipNeighborhoodService,
		Location:   LocationParams{County: segments[0], Zip: segments[1], Neighborhood: segments[3]},
		ServiceKey: segments[4],
		Canonical:  true,
	}, true
}

func matchZipNeighborhood(segments []string) (RouteMatch, bool) {
	if len(segments) != 4 || segments[2] != "n" {
		return RouteMatch{}, false
	}
	if !IsValidSlug(segments[0]) || !IsValidZip(segments[1]) || !IsValidSlug(segments[3]) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme:    SchemeZipNeighborhood,
		Location:  LocationParams{County: segments[0], Zip: segments[1], Neighborhood: segments[3]},
		Canonical: true,
	}, true
}

func matchZipService(segments []string) (RouteMatch, bool) {
	if len(segments) != 4 || segments[2] != "s" {
		return RouteMatch{}, false
	}
	if !IsValidSlug(segments[0]) || !IsValidZip(segments[1]) || !IsValidSlug(segments[3]) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme:     SchemeZipService,
		Location:   LocationParams{County: segments[0], Zip: segments[1]},
		ServiceKey: segments[3],
		Canonical:  true,
	}, true
}

// matchCityService serves the city+service generation. Still routable, no
// longer generated; not a redirect because the city form has its own records.
func matchCityService(segments []string) (RouteMatch, bool) {
	if len(segments) != 4 || segments[2] != "s" {
		return RouteMatch{}, false
	}
	if !IsValidSlug(segments[0]) || !IsValidSlug(segments[1]) || IsValidZip(segments[1]) || !IsValidSlug(segments[3]) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme:     SchemeCityService,
		Location:   LocationParams{County: segments[0], City: segments[1]},
		ServiceKey: segments[3],
	}, true
}

func matchCityNeighborhood(segments []string) (RouteMatch, bool) {
	if len(segments) != 4 || segments[2] != "n" {
		return RouteMatch{}, false
	}
	if !IsValidSlug(segments[0]) || !IsValidSlug(segments[1]) || IsValidZip(segments[1]) || !IsValidSlug(segments[3]) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme:    SchemeCityNeighborhood,
		Location:  LocationParams{County: segments[0], City: segments[1], Neighborhood: segments[3]},
		Canonical: true,
	}, true
}

func matchZip(segments []string) (RouteMatch, bool) {
	if len(segments) != 2 {
		return RouteMatch{}, false
	}
	if !IsValidSlug(segments[0]) || !IsValidZip(segments[1]) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme:    SchemeZip,
		Location:  LocationParams{County: segments[0], Zip: segments[1]},
		Canonical: true,
	}, true
}

// matchLegacyDocID recognizes first-generation single-segment paths whose
// document id doubled as the URL: county__zipOrCity__place__service. Exactly
// four parts or it is a non-match. A hit always answers with a 301 to the
// canonical form so link equity consolidates on one URL.
func matchLegacyDocID(segments []string) (RouteMatch, bool) {
	if len(segments) != 1 || !strings.Contains(segments[0], legacyJoiner) {
		return RouteMatch{}, false
	}
	parts := strings.Split(segments[0], legacyJoiner)
	if len(parts) != 4 {
		return RouteMatch{}, false
	}

	loc := PageLocator{
		CountySlug:       parts[0],
		NeighborhoodSlug: parts[2],
		ServiceKey:       parts[3],
	}
	if IsValidZip(parts[1]) {
		loc.Zip = parts[1]
	} else {
		loc.CitySlug = parts[1]
	}

	target, ok := CanonicalPath(loc)
	if !ok {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme: SchemeLegacyDocID,
		Location: LocationParams{
			County:       parts[0],
			City:         loc.CitySlug,
			Neighborhood: parts[2],
			Zip:          loc.Zip,
		},
		ServiceKey:   parts[3],
		DocID:        segments[0],
		RedirectPath: target,
	}, true
}

// matchOpaqueID is the storage-key fallback: a single segment looked up
// directly by document id. Segments carrying the legacy joiner were already
// handled (or rejected) above and never reach here as opaque ids.
func matchOpaqueID(segments []string) (RouteMatch, bool) {
	if len(segments) != 1 || segments[0] == "" {
		return RouteMatch{}, false
	}
	if strings.Contains(segments[0], legacyJoiner) {
		return RouteMatch{}, false
	}
	return RouteMatch{
		Scheme: SchemeOpaqueID,
		DocID:  segments[0],
	}, true
}
