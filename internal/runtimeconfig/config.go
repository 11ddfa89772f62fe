package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrBaseURLRequired = errors.New("seo config: site base URL is required")
var ErrBaseURLInvalid = errors.New("seo config: site base URL is invalid")
var ErrChunkSizeInvalid = errors.New("seo config: sitemap chunk size must be zero or positive")
var ErrStorageDriverUnknown = errors.New("seo config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("seo config: storage DSN is required")
var ErrCatalogDirRequired = errors.New("seo config: catalog directory is required when the catalog is enabled")
var ErrLoggingProviderRequired = errors.New("seo config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("seo config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("seo config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("seo config: logging format is invalid")

// Config aggregates runtime settings for the routing and sitemap platform.
// The value is immutable after construction and threaded through call sites;
// there are no configuration singletons.
type Config struct {
	Site     SiteConfig
	Sitemap  SitemapConfig
	Routes   *urlkit.Config
	Storage  StorageConfig
	Cache    CacheConfig
	Catalog  CatalogConfig
	Logging  LoggingConfig
	Features Features
}

// SiteConfig identifies the public site being served.
type SiteConfig struct {
	BaseURL string
	// IndexingEnabled gates sitemap and robots output. When false the
	// endpoints answer with minimal 200 responses so crawlers see an empty
	// site rather than a broken one.
	IndexingEnabled bool
}

// SitemapConfig controls shard partitioning.
type SitemapConfig struct {
	ChunkSize int
}

// StorageConfig selects the document store backing the page repository.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// CatalogConfig locates the service definition documents.
type CatalogConfig struct {
	Enabled bool
	Dir     string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional functionality.
type Features struct {
	Admin  bool
	Logger bool
}

// DefaultConfig returns defaults suitable for local development: sqlite in
// memory, indexing on, console logging.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			BaseURL:         "http://localhost:8080",
			IndexingEnabled: true,
		},
		Sitemap: SitemapConfig{
			ChunkSize: 5000,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
			DSN:    "file::memory:?cache=shared",
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Catalog: CatalogConfig{
			Enabled: false,
			Dir:     "catalog",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Features: Features{
			Admin: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	base := strings.TrimSpace(cfg.Site.BaseURL)
	if base == "" {
		return ErrBaseURLRequired
	}
	if parsed, err := url.Parse(base); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: %s", ErrBaseURLInvalid, base)
	}
	if cfg.Sitemap.ChunkSize < 0 {
		return ErrChunkSizeInvalid
	}
	if driver := normalizeDriver(cfg.Storage.Driver); driver != "" {
		if !isSupportedDriver(driver) {
			return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	}
	if cfg.Catalog.Enabled && strings.TrimSpace(cfg.Catalog.Dir) == "" {
		return ErrCatalogDirRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case "sqlite", "postgres":
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty", "text", "logfmt":
		return true
	default:
		return false
	}
}
