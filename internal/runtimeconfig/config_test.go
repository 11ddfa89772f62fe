package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			"missing base url",
			func(c *Config) { c.Site.BaseURL = "" },
			ErrBaseURLRequired,
		},
		{
			"relative base url",
			func(c *Config) { c.Site.BaseURL = "/just-a-path" },
			ErrBaseURLInvalid,
		},
		{
			"negative chunk size",
			func(c *Config) { c.Sitemap.ChunkSize = -1 },
			ErrChunkSizeInvalid,
		},
		{
			"unknown storage driver",
			func(c *Config) { c.Storage.Driver = "mongo" },
			ErrStorageDriverUnknown,
		},
		{
			"missing dsn",
			func(c *Config) { c.Storage.DSN = "" },
			ErrStorageDSNRequired,
		},
		{
			"catalog without dir",
			func(c *Config) { c.Catalog.Enabled = true; c.Catalog.Dir = " " },
			ErrCatalogDirRequired,
		},
		{
			"logger without provider",
			func(c *Config) { c.Features.Logger = true; c.Logging.Provider = "" },
			ErrLoggingProviderRequired,
		},
		{
			"unknown logging provider",
			func(c *Config) { c.Features.Logger = true; c.Logging.Provider = "syslog" },
			ErrLoggingProviderUnknown,
		},
		{
			"invalid logging level",
			func(c *Config) { c.Features.Logger = true; c.Logging.Level = "verbose" },
			ErrLoggingLevelInvalid,
		},
		{
			"invalid gologger format",
			func(c *Config) {
				c.Features.Logger = true
				c.Logging.Provider = "gologger"
				c.Logging.Format = "xml"
			},
			ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidateAllowsEmptyStorageDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage = StorageConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("storage-less config should validate: %v", err)
	}
}
