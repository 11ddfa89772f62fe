package seo

import (
	"net/http"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/catalog"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/di"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/sitemap"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// PageService exports the page service contract for consumers of the seo package.
type PageService = pages.Service

// Page exports the page record.
type Page = pages.Page

// PageList exports the paginated page listing.
type PageList = pages.PageList

// ListOptions exports the page listing options.
type ListOptions = pages.ListOptions

// CreatePageRequest exports the page creation request.
type CreatePageRequest = pages.CreatePageRequest

// UpdatePageRequest exports the page update request.
type UpdatePageRequest = pages.UpdatePageRequest

// PublishPageRequest exports the publish request.
type PublishPageRequest = pages.PublishPageRequest

// Resolution exports the route resolution result.
type Resolution = pages.Resolution

// Partitioner exports the sitemap partitioner.
type Partitioner = sitemap.Partitioner

// SitemapEntry exports a single sitemap URL entry.
type SitemapEntry = sitemap.Entry

// SitemapShard exports a bounded sitemap shard.
type SitemapShard = sitemap.Shard

// ServiceCatalog exports the loaded service definition catalog.
type ServiceCatalog = catalog.Catalog

// ServiceDefinition exports a single catalog entry.
type ServiceDefinition = catalog.ServiceDefinition

// Logger exports the structured logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Authorizer exports the admin request gate contract.
type Authorizer = interfaces.Authorizer

// Module represents the top level routing and sitemap runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional
// dependency overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying dependency container for advanced
// integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Sitemaps returns the sitemap partitioner.
func (m *Module) Sitemaps() *Partitioner {
	return m.container.Partitioner()
}

// Catalog returns the loaded service catalog, or nil when the catalog
// feature is disabled.
func (m *Module) Catalog() *ServiceCatalog {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ServiceCatalog()
}

// Routes exposes the merged route manager so hosts can build URLs with the
// same groups the module serves.
func (m *Module) Routes() *urlkit.RouteManager {
	return m.container.RouteManager()
}

// Logger returns the resolved logger provider, or nil when logging is
// disabled.
func (m *Module) Logger() LoggerProvider {
	return m.container.LoggerProvider()
}

// Mount registers every configured HTTP surface on the mux: public route
// resolution, sitemap and robots endpoints, and the admin API when enabled.
func (m *Module) Mount(mux *http.ServeMux) {
	m.container.SitemapAPI().Register(mux)
	if admin := m.container.AdminAPI(); admin != nil {
		admin.Register(mux)
	}
	m.container.PublicAPI().Register(mux)
}
