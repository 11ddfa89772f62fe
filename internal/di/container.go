package di

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/catalog"
	pagescmd "github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/commands/pages"
	seohttp "github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/http"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging/console"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging/gologger"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/runtimeconfig"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/sitemap"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// Container wires the page store, route resolution, sitemap partitioning and
// HTTP surfaces from a single configuration value. Defaults favour local
// development: an in-memory repository and a no-op logger.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	clock          func() time.Time
	authorizer     interfaces.Authorizer

	bunDB         *bun.DB
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	pageRepo pages.Repository
	pageSvc  pages.Service

	routeManager *urlkit.RouteManager
	urls         *sitemap.URLBuilder
	partitioner  *sitemap.Partitioner

	catalogFS      fs.FS
	serviceCatalog *catalog.Catalog

	publishHandler   *pagescmd.PublishPageHandler
	unpublishHandler *pagescmd.UnpublishPageHandler
	archiveHandler   *pagescmd.ArchivePageHandler

	publicAPI  *seohttp.PublicAPI
	sitemapAPI *seohttp.SitemapAPI
	adminAPI   *seohttp.AdminAPI
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithDB installs a bun database handle. The page repository switches from
// the in-memory default to the bun-backed implementation.
func WithDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithRepository overrides the page repository entirely.
func WithRepository(repo pages.Repository) Option {
	return func(c *Container) {
		c.pageRepo = repo
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the logger provider resolved from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithClock overrides the time source used by the page service.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithAuthorizer installs the admin API request gate.
func WithAuthorizer(authorizer interfaces.Authorizer) Option {
	return func(c *Container) {
		c.authorizer = authorizer
	}
}

// WithCatalogFS overrides the filesystem the service catalog loads from.
// Useful for tests and embedded definition sets.
func WithCatalogFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.catalogFS = fsys
	}
}

// NewContainer validates the configuration and assembles the module graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:     cfg,
		authorizer: interfaces.AllowAll(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepository()
	c.configureRoutes()

	if err := c.configureSitemap(); err != nil {
		return nil, err
	}
	if err := c.configureCatalog(); err != nil {
		return nil, err
	}

	c.configureServices()
	c.configureHTTP()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure logging: %w", err)
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{MinLevel: &level})
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cacheCfg := repocache.DefaultConfig()
		if ttl := c.Config.Cache.DefaultTTL; ttl > 0 {
			cacheCfg.TTL = ttl
		}
		service, err := repocache.NewCacheService(cacheCfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepository() {
	if c.pageRepo != nil {
		return
	}
	if c.bunDB != nil {
		c.pageRepo = pages.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		return
	}
	c.pageRepo = pages.NewMemoryRepository()
}

// configureRoutes merges host-supplied route groups with the sitemap group so
// every emitted URL flows through one route manager.
func (c *Container) configureRoutes() {
	routeCfg := &urlkit.Config{}
	if c.Config.Routes != nil {
		routeCfg.Groups = append(routeCfg.Groups, c.Config.Routes.Groups...)
	}

	hasSitemapGroup := false
	for _, group := range routeCfg.Groups {
		if group.Name == sitemap.RouteGroup {
			hasSitemapGroup = true
			break
		}
	}
	if !hasSitemapGroup {
		routeCfg.Groups = append(routeCfg.Groups, sitemap.RoutesConfig(c.Config.Site.BaseURL))
	}

	c.routeManager = urlkit.NewRouteManager(routeCfg)
}

func (c *Container) configureSitemap() error {
	urls, err := sitemap.NewURLBuilder(c.Config.Site.BaseURL, c.routeManager)
	if err != nil {
		return fmt.Errorf("di: configure sitemap: %w", err)
	}
	c.urls = urls

	partitionerOpts := []sitemap.Option{
		sitemap.WithLogger(logging.SitemapLogger(c.loggerProvider)),
	}
	if c.Config.Sitemap.ChunkSize > 0 {
		partitionerOpts = append(partitionerOpts, sitemap.WithChunkSize(c.Config.Sitemap.ChunkSize))
	}
	c.partitioner = sitemap.NewPartitioner(c.pageRepo, urls, partitionerOpts...)
	return nil
}

func (c *Container) configureCatalog() error {
	if !c.Config.Catalog.Enabled {
		return nil
	}

	fsys := c.catalogFS
	if fsys == nil {
		fsys = os.DirFS(c.Config.Catalog.Dir)
	}

	loader := catalog.NewLoader(fsys, catalog.WithLogger(logging.CatalogLogger(c.loggerProvider)))
	loaded, err := loader.Load(context.Background())
	if err != nil {
		return fmt.Errorf("di: load service catalog: %w", err)
	}
	c.serviceCatalog = loaded
	return nil
}

func (c *Container) configureServices() {
	pageLogger := logging.PagesLogger(c.loggerProvider)

	svcOpts := []pages.ServiceOption{pages.WithLogger(pageLogger)}
	if c.clock != nil {
		svcOpts = append(svcOpts, pages.WithClock(c.clock))
	}
	c.pageSvc = pages.NewService(c.pageRepo, svcOpts...)

	c.publishHandler = pagescmd.NewPublishPageHandler(c.pageSvc, pageLogger)
	c.unpublishHandler = pagescmd.NewUnpublishPageHandler(c.pageSvc, pageLogger)
	c.archiveHandler = pagescmd.NewArchivePageHandler(c.pageSvc, pageLogger)
}

func (c *Container) configureHTTP() {
	httpLogger := logging.HTTPLogger(c.loggerProvider)

	c.publicAPI = seohttp.NewPublicAPI(c.pageSvc, seohttp.WithPublicLogger(httpLogger))
	c.sitemapAPI = seohttp.NewSitemapAPI(c.partitioner, c.Config.Site.BaseURL,
		seohttp.WithIndexingEnabled(c.Config.Site.IndexingEnabled),
		seohttp.WithSitemapLogger(httpLogger),
	)

	if c.Config.Features.Admin {
		adminOpts := []seohttp.AdminOption{
			seohttp.WithAuthorizer(c.authorizer),
			seohttp.WithAdminLogger(httpLogger),
			seohttp.WithPublishHandler(c.publishHandler),
			seohttp.WithUnpublishHandler(c.unpublishHandler),
			seohttp.WithArchiveHandler(c.archiveHandler),
		}
		if c.serviceCatalog != nil {
			adminOpts = append(adminOpts, seohttp.WithServiceCatalog(c.serviceCatalog))
		}
		c.adminAPI = seohttp.NewAdminAPI(c.pageSvc, adminOpts...)
	}
}

// PageService returns the configured page service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// PageRepository returns the configured page repository.
func (c *Container) PageRepository() pages.Repository {
	return c.pageRepo
}

// Partitioner returns the sitemap partitioner.
func (c *Container) Partitioner() *sitemap.Partitioner {
	return c.partitioner
}

// URLBuilder returns the sitemap URL builder.
func (c *Container) URLBuilder() *sitemap.URLBuilder {
	return c.urls
}

// RouteManager exposes the merged route manager for host integrations.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// ServiceCatalog returns the loaded service catalog, nil when disabled.
func (c *Container) ServiceCatalog() *catalog.Catalog {
	return c.serviceCatalog
}

// LoggerProvider returns the resolved logger provider, nil when logging is
// disabled and no override was supplied.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// PublishHandler returns the publish command handler.
func (c *Container) PublishHandler() *pagescmd.PublishPageHandler {
	return c.publishHandler
}

// UnpublishHandler returns the unpublish command handler.
func (c *Container) UnpublishHandler() *pagescmd.UnpublishPageHandler {
	return c.unpublishHandler
}

// ArchiveHandler returns the archive command handler.
func (c *Container) ArchiveHandler() *pagescmd.ArchivePageHandler {
	return c.archiveHandler
}

// PublicAPI returns the public resolution API.
func (c *Container) PublicAPI() *seohttp.PublicAPI {
	return c.publicAPI
}

// SitemapAPI returns the sitemap and robots API.
func (c *Container) SitemapAPI() *seohttp.SitemapAPI {
	return c.sitemapAPI
}

// AdminAPI returns the admin API, nil when the admin feature is disabled.
func (c *Container) AdminAPI() *seohttp.AdminAPI {
	return c.adminAPI
}
