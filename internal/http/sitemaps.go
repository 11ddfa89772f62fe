package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/sitemap"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// Sitemap and shard responses change slowly; let CDNs serve stale copies
// while revalidating.
const sitemapCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// SitemapAPI serves the crawler-facing XML endpoints: the hierarchical
// single-file sitemap, the shard index, individual shards, and robots.txt.
type SitemapAPI struct {
	partitioner *sitemap.Partitioner
	baseURL     string
	indexing    bool
	logger      interfaces.Logger
}

// SitemapOption mutates the SitemapAPI configuration.
type SitemapOption func(*SitemapAPI)

// WithIndexingEnabled toggles crawler indexing. When disabled every endpoint
// answers 200 with minimal content: "nothing to index", not "broken".
func WithIndexingEnabled(enabled bool) SitemapOption {
	return func(api *SitemapAPI) {
		api.indexing = enabled
	}
}

// WithSitemapLogger installs the module logger.
func WithSitemapLogger(logger interfaces.Logger) SitemapOption {
	return func(api *SitemapAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// NewSitemapAPI constructs the sitemap handler.
func NewSitemapAPI(partitioner *sitemap.Partitioner, baseURL string, opts ...SitemapOption) *SitemapAPI {
	api := &SitemapAPI{
		partitioner: partitioner,
		baseURL:     strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		indexing:    true,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// Register mounts the sitemap endpoints.
func (api *SitemapAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	mux.HandleFunc("GET /sitemap.xml", api.handleFullSitemap)
	mux.HandleFunc("GET /sitemap-index.xml", api.handleIndex)
	mux.HandleFunc("GET /sitemaps/{index}", api.handleShard)
	mux.HandleFunc("GET /robots.txt", api.handleRobots)
}

func (api *SitemapAPI) handleFullSitemap(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", sitemapCacheControl)
	if !api.indexing {
		api.renderXML(w, sitemap.NewURLSet(nil))
		return
	}

	entries, err := api.partitioner.Hierarchy(r.Context())
	if err != nil {
		api.logger.Error("sitemap hierarchy build failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}
	api.renderXML(w, sitemap.NewURLSet(entries))
}

func (api *SitemapAPI) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", sitemapCacheControl)
	if !api.indexing {
		api.renderXML(w, sitemap.NewIndex(nil))
		return
	}

	locs, err := api.partitioner.ShardLocs(r.Context())
	if err != nil {
		api.logger.Error("sitemap index build failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}
	api.renderXML(w, sitemap.NewIndex(locs))
}

func (api *SitemapAPI) handleShard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", sitemapCacheControl)
	if !api.indexing {
		api.renderXML(w, sitemap.NewURLSet(nil))
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: "unknown sitemap shard"})
		return
	}

	shard, err := api.partitioner.BuildShard(r.Context(), index)
	if err != nil {
		api.logger.Error("sitemap shard build failed", "shard", index, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}
	api.renderXML(w, sitemap.NewURLSet(shard.Entries))
}

func (api *SitemapAPI) handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", sitemapCacheControl)
	if !api.indexing {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /\n"))
		return
	}
	body := "User-agent: *\nAllow: /\n\nSitemap: " + api.baseURL + "/sitemap-index.xml\n"
	_, _ = w.Write([]byte(body))
}

func (api *SitemapAPI) renderXML(w http.ResponseWriter, doc any) {
	body, err := sitemap.Render(doc)
	if err != nil {
		api.logger.Error("sitemap render failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal_error"})
		return
	}
	writeXML(w, http.StatusOK, body)
}
