package di_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/di"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/runtimeconfig"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

func baseConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = ""
	cfg.Storage.DSN = ""
	return cfg
}

func TestNewContainerDefaults(t *testing.T) {
	container, err := di.NewContainer(baseConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.PageService() == nil {
		t.Fatal("expected page service")
	}
	if container.Partitioner() == nil {
		t.Fatal("expected partitioner")
	}
	if container.AdminAPI() == nil {
		t.Fatal("expected admin API with default features")
	}
	if container.ServiceCatalog() != nil {
		t.Fatal("catalog should be nil when disabled")
	}

	ctx := context.Background()
	created, err := container.PageService().Create(ctx, pages.CreatePageRequest{
		CountySlug: "la-county",
		Zip:        "91306",
		ServiceKey: "roof-repair",
		Title:      "Roof Repair",
	})
	if err != nil {
		t.Fatalf("create through container service: %v", err)
	}
	if created.SlugPath == nil || *created.SlugPath != "/la-county/91306/s/roof-repair" {
		t.Fatalf("unexpected slug path %v", created.SlugPath)
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.Site.BaseURL = ""
	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrBaseURLRequired) {
		t.Fatalf("expected base URL error, got %v", err)
	}
}

func TestNewContainerAdminFeatureDisabled(t *testing.T) {
	cfg := baseConfig()
	cfg.Features.Admin = false

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if container.AdminAPI() != nil {
		t.Fatal("admin API must be nil when the feature is off")
	}
}

func TestNewContainerLoadsCatalog(t *testing.T) {
	cfg := baseConfig()
	cfg.Catalog.Enabled = true
	cfg.Catalog.Dir = "definitions"

	fsys := fstest.MapFS{
		"roof-repair.md": &fstest.MapFile{Data: []byte(`---
key: roof-repair
name: Roof Repair
---
Leak diagnosis and shingle replacement.
`)},
	}

	container, err := di.NewContainer(cfg, di.WithCatalogFS(fsys))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	cat := container.ServiceCatalog()
	if cat == nil {
		t.Fatal("expected loaded catalog")
	}
	if _, err := cat.Get("roof-repair"); err != nil {
		t.Fatalf("catalog lookup: %v", err)
	}
}

func TestNewContainerCatalogFailureSurfaces(t *testing.T) {
	cfg := baseConfig()
	cfg.Catalog.Enabled = true

	if _, err := di.NewContainer(cfg, di.WithCatalogFS(fstest.MapFS{})); err == nil {
		t.Fatal("expected empty catalog error")
	}
}

type recordingProvider struct {
	requested []string
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	p.requested = append(p.requested, name)
	return nil
}

func TestNewContainerUsesInjectedLoggerProvider(t *testing.T) {
	provider := &recordingProvider{}
	if _, err := di.NewContainer(baseConfig(), di.WithLoggerProvider(provider)); err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if len(provider.requested) == 0 {
		t.Fatal("expected module loggers to be requested from the provider")
	}
}

func TestNewContainerAuthorizerReachesAdminAPI(t *testing.T) {
	deny := interfaces.AuthorizerFunc(func(*http.Request, string) bool { return false })

	container, err := di.NewContainer(baseConfig(), di.WithAuthorizer(deny))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	mux := http.NewServeMux()
	container.AdminAPI().Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/api/pages", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 from denying authorizer, got %d", rec.Code)
	}
}
