package sitemap

import (
	"fmt"
	"strconv"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route group and route names used when constructing absolute sitemap URLs.
const (
	RouteGroup = "sitemaps"
	RouteIndex = "index"
	RouteShard = "shard"
	RouteFull  = "full"
)

// RoutesConfig returns the urlkit group wiring the public sitemap endpoints
// for a site. Callers merge it into the route manager configuration so the
// builder and the HTTP layer agree on paths.
func RoutesConfig(baseURL string) urlkit.GroupConfig {
	return urlkit.GroupConfig{
		Name:    RouteGroup,
		BaseURL: baseURL,
		Paths: map[string]string{
			RouteFull:  "/sitemap.xml",
			RouteIndex: "/sitemap-index.xml",
			RouteShard: "/sitemaps/:index",
		},
	}
}

// URLBuilder renders the absolute URLs that appear inside sitemap documents.
// Shard and index locations go through the route manager; page locations are
// canonical paths already, so they only need the site base joined on.
type URLBuilder struct {
	base  string
	group *urlkit.Group
}

// NewURLBuilder constructs a builder for the given site base URL. The manager
// must carry the group from RoutesConfig.
func NewURLBuilder(baseURL string, manager *urlkit.RouteManager) (*URLBuilder, error) {
	b := &URLBuilder{base: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
	if b.base == "" {
		return nil, fmt.Errorf("sitemap: base URL is required")
	}
	group, err := lookupGroup(manager, RouteGroup)
	if err != nil {
		return nil, err
	}
	b.group = group
	return b, nil
}

// Page joins a canonical path onto the site base.
func (b *URLBuilder) Page(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return b.base + path
}

// ShardLoc returns the absolute URL of one shard document.
func (b *URLBuilder) ShardLoc(index int) (string, error) {
	return b.build(RouteShard, map[string]any{"index": strconv.Itoa(index)})
}

// IndexLoc returns the absolute URL of the sitemap index document.
func (b *URLBuilder) IndexLoc() (string, error) {
	return b.build(RouteIndex, nil)
}

func (b *URLBuilder) build(route string, params map[string]any) (string, error) {
	builder, err := safeBuilder(b.group, route)
	if err != nil {
		return "", err
	}
	for key, val := range params {
		builder.WithParam(key, val)
	}
	return builder.Build()
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("sitemap: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sitemap: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("sitemap: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sitemap: route %q not found: %v", route, rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}
