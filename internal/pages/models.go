package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/routing"
)

// PlaceKind distinguishes the two place granularities a page can target.
type PlaceKind string

const (
	PlaceKindCity         PlaceKind = "city"
	PlaceKindNeighborhood PlaceKind = "neighborhood"
)

// IsValid reports whether the kind is one of the known granularities. Empty
// is valid only for records without a place.
func (k PlaceKind) IsValid() bool {
	switch k {
	case "", PlaceKindCity, PlaceKindNeighborhood:
		return true
	default:
		return false
	}
}

// Page is the stored entity behind one landing page: a geographic target
// crossed with a service. DocKey is the opaque storage key; first-generation
// keys double as legacy URL paths, so the column also serves the opaque-id
// route lookup. SlugPath caches the last computed canonical path and may be
// stale; the resolver recomputes from location and service on every use.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	DocKey      string     `bun:"doc_key,notnull,unique" json:"doc_key"`
	CountySlug  string     `bun:"county_slug,notnull" json:"county_slug"`
	PlaceSlug   string     `bun:"place_slug" json:"place_slug,omitempty"`
	PlaceKind   PlaceKind  `bun:"place_kind" json:"place_kind,omitempty"`
	Zip         string     `bun:"zip" json:"zip,omitempty"`
	ServiceKey  string     `bun:"service_key" json:"service_key,omitempty"`
	ServiceName string     `bun:"service_name" json:"service_name,omitempty"`
	Status      string     `bun:"status,notnull,default:'draft'" json:"status"`
	SlugPath    *string    `bun:"slug_path" json:"slug_path,omitempty"`
	Title       string     `bun:"title" json:"title,omitempty"`
	Body        string     `bun:"body" json:"body,omitempty"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Locator maps the record's location and service fields into the resolver's
// input shape, splitting the place slug by kind.
func (p *Page) Locator() routing.PageLocator {
	loc := routing.PageLocator{
		CountySlug: p.CountySlug,
		Zip:        p.Zip,
		ServiceKey: p.ServiceKey,
	}
	switch p.PlaceKind {
	case PlaceKindNeighborhood:
		loc.NeighborhoodSlug = p.PlaceSlug
	default:
		loc.CitySlug = p.PlaceSlug
	}
	return loc
}

// Location identifies the geographic target used for route lookups. Empty
// fields mean absent and must match records with the same field absent.
type Location struct {
	CountySlug string
	PlaceSlug  string
	PlaceKind  PlaceKind
	Zip        string
}

// LocationFromRoute converts matched route parameters into a lookup location.
func LocationFromRoute(params routing.LocationParams) Location {
	loc := Location{
		CountySlug: params.County,
		Zip:        params.Zip,
	}
	switch {
	case params.Neighborhood != "":
		loc.PlaceSlug = params.Neighborhood
		loc.PlaceKind = PlaceKindNeighborhood
	case params.City != "":
		loc.PlaceSlug = params.City
		loc.PlaceKind = PlaceKindCity
	}
	return loc
}
