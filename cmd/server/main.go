package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	seo "github.com/lookforpros2026-glitch/website-leads-project-sub001"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/di"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/storage"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "listen address")
		baseURL    = flag.String("base-url", envOr("SEO_BASE_URL", "http://localhost:8080"), "public base URL")
		driver     = flag.String("storage-driver", envOr("SEO_STORAGE_DRIVER", "sqlite"), "storage driver (sqlite or postgres)")
		dsn        = flag.String("storage-dsn", envOr("SEO_STORAGE_DSN", "file::memory:?cache=shared"), "storage DSN")
		catalogDir = flag.String("catalog-dir", envOr("SEO_CATALOG_DIR", ""), "service definition directory, empty disables the catalog")
		noIndex    = flag.Bool("no-index", false, "serve empty sitemaps and disallow crawling")
		logLevel   = flag.String("log-level", envOr("SEO_LOG_LEVEL", "info"), "log level")
	)
	flag.Parse()

	cfg := seo.DefaultConfig()
	cfg.Site.BaseURL = *baseURL
	cfg.Site.IndexingEnabled = !*noIndex
	cfg.Storage.Driver = *driver
	cfg.Storage.DSN = *dsn
	cfg.Logging.Level = *logLevel
	cfg.Features.Logger = true
	if *catalogDir != "" {
		cfg.Catalog.Enabled = true
		cfg.Catalog.Dir = *catalogDir
	}

	opts := []di.Option{}
	if cfg.Storage.Driver != "" {
		db, err := storage.Open(cfg.Storage.Driver, cfg.Storage.DSN)
		if err != nil {
			log.Fatalf("open storage: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := storage.CreateSchema(ctx, db); err != nil {
			log.Fatalf("create schema: %v", err)
		}
		opts = append(opts, di.WithDB(db))
	}

	module, err := seo.New(cfg, opts...)
	if err != nil {
		log.Fatalf("build module: %v", err)
	}

	mux := http.NewServeMux()
	module.Mount(mux)

	if provider := module.Logger(); provider != nil {
		provider.GetLogger("seo.server").Info("listening", "addr", *addr, "base_url", cfg.Site.BaseURL)
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
