package http

import (
	"net/http"
	"time"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// PublicAPI serves the outward-facing routes: every canonical and legacy URL
// scheme, answered with either the page payload, a permanent redirect, or 404.
type PublicAPI struct {
	pages  pages.Service
	logger interfaces.Logger
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// WithPublicLogger installs the module logger.
func WithPublicLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// NewPublicAPI constructs the public route handler over the page service.
func NewPublicAPI(service pages.Service, opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		pages:  service,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// pagePayload is the render contract handed to the site's template layer.
type pagePayload struct {
	DocKey        string     `json:"doc_key"`
	CanonicalPath string     `json:"canonical_path"`
	Scheme        string     `json:"scheme"`
	Title         string     `json:"title"`
	Body          string     `json:"body,omitempty"`
	CountySlug    string     `json:"county_slug"`
	PlaceSlug     string     `json:"place_slug,omitempty"`
	PlaceKind     string     `json:"place_kind,omitempty"`
	Zip           string     `json:"zip,omitempty"`
	ServiceKey    string     `json:"service_key,omitempty"`
	ServiceName   string     `json:"service_name,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Register mounts the catch-all resolver. Sitemap and admin routes must be
// registered first; the mux prefers their more specific patterns.
func (api *PublicAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	mux.HandleFunc("GET /", api.handleResolve)
}

func (api *PublicAPI) handleResolve(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	path := r.URL.Path
	resolution, err := api.pages.ResolveRoute(r.Context(), path)
	if err != nil {
		if !pages.IsNotFound(err) {
			api.logger.Error("route resolution failed", "path", path, "error", err)
		}
		writeError(w, err)
		return
	}

	if resolution.IsRedirect() {
		// Permanent so crawlers consolidate link equity onto the canonical URL.
		http.Redirect(w, r, resolution.RedirectPath, http.StatusMovedPermanently)
		return
	}

	page := resolution.Page
	w.Header().Set("Link", `<`+resolution.CanonicalPath+`>; rel="canonical"`)
	writeJSON(w, http.StatusOK, pagePayload{
		DocKey:        page.DocKey,
		CanonicalPath: resolution.CanonicalPath,
		Scheme:        string(resolution.Match.Scheme),
		Title:         page.Title,
		Body:          page.Body,
		CountySlug:    page.CountySlug,
		PlaceSlug:     page.PlaceSlug,
		PlaceKind:     string(page.PlaceKind),
		Zip:           page.Zip,
		ServiceKey:    page.ServiceKey,
		ServiceName:   page.ServiceName,
		PublishedAt:   page.PublishedAt,
		UpdatedAt:     page.UpdatedAt,
	})
}
