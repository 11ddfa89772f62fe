package seo

import "github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/runtimeconfig"

var (
	ErrBaseURLRequired         = runtimeconfig.ErrBaseURLRequired
	ErrBaseURLInvalid          = runtimeconfig.ErrBaseURLInvalid
	ErrChunkSizeInvalid        = runtimeconfig.ErrChunkSizeInvalid
	ErrStorageDriverUnknown    = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired      = runtimeconfig.ErrStorageDSNRequired
	ErrCatalogDirRequired      = runtimeconfig.ErrCatalogDirRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	SiteConfig    = runtimeconfig.SiteConfig
	SitemapConfig = runtimeconfig.SitemapConfig
	StorageConfig = runtimeconfig.StorageConfig
	CacheConfig   = runtimeconfig.CacheConfig
	CatalogConfig = runtimeconfig.CatalogConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Features      = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
