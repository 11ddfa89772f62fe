package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func defFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

const roofRepairDoc = `---
key: roof-repair
name: Roof Repair
summary: Leak diagnosis and shingle replacement.
category: roofing
aliases:
  - roof-fix
  - roofing-repair
---
We repair **asphalt** and tile roofs.

- Leak detection
- Shingle replacement
`

func TestLoadCatalog(t *testing.T) {
	fsys := defFS(map[string]string{
		"roof-repair.md": roofRepairDoc,
		"siding.md": `---
name: Siding Installation
---
Vinyl and fiber cement siding.
`,
	})

	cat, err := NewLoader(fsys).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("len = %d, want 2", cat.Len())
	}

	def, err := cat.Get("roof-repair")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if def.Name != "Roof Repair" || def.Category != "roofing" {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if !strings.Contains(def.DescriptionHTML, "<strong>asphalt</strong>") {
		t.Fatalf("description not rendered: %q", def.DescriptionHTML)
	}
	if !strings.Contains(def.DescriptionHTML, "<li>Leak detection</li>") {
		t.Fatalf("list not rendered: %q", def.DescriptionHTML)
	}

	// Missing key falls back to the slugged display name.
	if !cat.Has("siding-installation") {
		t.Fatalf("keys: %v", cat.Keys())
	}
}

func TestResolveAliases(t *testing.T) {
	cat, err := NewLoader(defFS(map[string]string{"roof-repair.md": roofRepairDoc})).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	for _, probe := range []string{"roof-repair", "roof-fix", "Roofing-Repair", " roof-fix "} {
		def, err := cat.Resolve(probe)
		if err != nil {
			t.Fatalf("resolve %q: %v", probe, err)
		}
		if def.Key != "roof-repair" {
			t.Fatalf("resolve %q: got %s", probe, def.Key)
		}
	}

	if _, err := cat.Resolve("gutters"); !errors.Is(err, ErrServiceUnknown) {
		t.Fatalf("unknown service: got %v", err)
	}
}

func TestLoadRejectsInvalidDocument(t *testing.T) {
	fsys := defFS(map[string]string{
		"broken.md": `---
key: roof-repair
---
No name field.
`,
	})
	if _, err := NewLoader(fsys).Load(context.Background()); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("got %v, want ErrInvalidDocument", err)
	}
}

func TestLoadRejectsDuplicateKeys(t *testing.T) {
	doc := `---
key: roof-repair
name: Roof Repair
---
`
	fsys := defFS(map[string]string{"a.md": doc, "b.md": doc})
	if _, err := NewLoader(fsys).Load(context.Background()); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

func TestLoadEmptyCatalog(t *testing.T) {
	if _, err := NewLoader(defFS(nil)).Load(context.Background()); !errors.Is(err, ErrCatalogEmpty) {
		t.Fatalf("got %v, want ErrCatalogEmpty", err)
	}
}
