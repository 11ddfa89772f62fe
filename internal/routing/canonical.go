package routing

// PageLocator carries the location and service fields a page record can
// supply. Fields may be empty or malformed; the resolver treats any segment
// that fails validation as absent.
type PageLocator struct {
	CountySlug       string
	CitySlug         string
	NeighborhoodSlug string
	Zip              string
	ServiceKey       string
}

func (l PageLocator) county() string {
	if IsValidSlug(l.CountySlug) && !IsReservedTopSegment(l.CountySlug) {
		return l.CountySlug
	}
	return ""
}

func (l PageLocator) city() string {
	if IsValidSlug(l.CitySlug) {
		return l.CitySlug
	}
	return ""
}

func (l PageLocator) neighborhood() string {
	if IsValidSlug(l.NeighborhoodSlug) {
		return l.NeighborhoodSlug
	}
	return ""
}

func (l PageLocator) zip() string {
	if IsValidZip(l.Zip) {
		return l.Zip
	}
	return ""
}

func (l PageLocator) service() string {
	if IsValidSlug(l.ServiceKey) {
		return l.ServiceKey
	}
	return ""
}

// pathRule pairs a scheme with its applicability predicate and path builder.
// Rules are evaluated in declaration order; the first applicable rule wins.
type pathRule struct {
	scheme  Scheme
	applies func(PageLocator) bool
	build   func(PageLocator) string
}

// canonicalRules is the priority order for canonical form selection. More
// specific geography (zip, then neighborhood) outranks city-level legacy
// routes: zip-level pages are the current generation target and must win when
// the data supports them.
var canonicalRules = []pathRule{
	{
		scheme: SchemeZipNeighborhoodService,
		applies: func(l PageLocator) bool {
			return l.county() != "" && l.zip() != "" && l.neighborhood() != "" && l.service() != ""
		},
		build: func(l PageLocator) string {
			return "/" + l.county() + "/" + l.zip() + "/n/" + l.neighborhood() + "/" + l.service()
		},
	},
	{
		scheme: SchemeZipService,
		applies: func(l PageLocator) bool {
			return l.county() != "" && l.zip() != "" && l.service() != ""
		},
		build: func(l PageLocator) string {
			return "/" + l.county() + "/" + l.zip() + "/s/" + l.service()
		},
	},
	{
		scheme: SchemeZip,
		applies: func(l PageLocator) bool {
			return l.county() != "" && l.zip() != ""
		},
		build: func(l PageLocator) string {
			return "/" + l.county() + "/" + l.zip()
		},
	},
	{
		scheme: SchemeCityService,
		applies: func(l PageLocator) bool {
			return l.county() != "" && l.city() != "" && l.service() != ""
		},
		build: func(l PageLocator) string {
			return "/" + l.county() + "/" + l.city() + "/s/" + l.service()
		},
	},
	{
		scheme: SchemeCityNeighborhood,
		applies: func(l PageLocator) bool {
			return l.county() != "" && l.city() != "" && l.neighborhood() != ""
		},
		build: func(l PageLocator) string {
			return "/" + l.county() + "/" + l.city() + "/n/" + l.neighborhood()
		},
	},
}

// CanonicalPath computes the single canonical URL path for the locator, or
// ("", false) when no rule applies. The function is total and pure: malformed
// segments fall through to the next rule instead of producing an error, and
// identical input always yields an identical path.
func CanonicalPath(loc PageLocator) (string, bool) {
	for _, rule := range canonicalRules {
		if rule.applies(loc) {
			return rule.build(loc), true
		}
	}
	return "", false
}

// CanonicalScheme reports which scheme CanonicalPath would select for the
// locator. Useful for sitemap generation and admin diagnostics.
func CanonicalScheme(loc PageLocator) (Scheme, bool) {
	for _, rule := range canonicalRules {
		if rule.applies(loc) {
			return rule.scheme, true
		}
	}
	return "", false
}
