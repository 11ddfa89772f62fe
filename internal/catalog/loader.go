package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/routing"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// Loader reads service definitions from markdown files with YAML frontmatter.
// One file per service; the markdown body is the service description and is
// rendered to HTML at load time.
type Loader struct {
	fsys     fs.FS
	logger   interfaces.Logger
	markdown goldmark.Markdown
}

// LoaderOption configures the loader.
type LoaderOption func(*Loader)

// WithLogger installs the module logger.
func WithLogger(logger interfaces.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a loader over the given filesystem root.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:   fsys,
		logger: logging.NoOp(),
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type definitionEnvelope struct {
	Key      string   `yaml:"key" json:"key"`
	Name     string   `yaml:"name" json:"name"`
	Summary  string   `yaml:"summary" json:"summary,omitempty"`
	Category string   `yaml:"category" json:"category,omitempty"`
	Aliases  []string `yaml:"aliases" json:"aliases,omitempty"`
}

// Load walks the filesystem and assembles the catalog. Every .md file must
// carry valid frontmatter; a single bad document fails the whole load so a
// broken catalog never reaches production half applied.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	files, err := l.collectFiles()
	if err != nil {
		return nil, err
	}

	cat := newCatalog()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		def, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		if err := cat.add(def); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}

	if cat.Len() == 0 {
		return nil, ErrCatalogEmpty
	}
	l.logger.Info("service catalog loaded", "services", cat.Len())
	return cat, nil
}

func (l *Loader) collectFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walk definitions: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

func (l *Loader) loadFile(file string) (*ServiceDefinition, error) {
	source, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", file, err)
	}

	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, file, err)
	}

	env, err := normalizeEnvelope(raw, file)
	if err != nil {
		return nil, err
	}
	if err := validateEnvelope(env, file); err != nil {
		return nil, err
	}

	description := strings.TrimSpace(string(body))
	var html bytes.Buffer
	if description != "" {
		if err := l.markdown.Convert([]byte(description), &html); err != nil {
			return nil, fmt.Errorf("catalog: render %s: %w", file, err)
		}
	}

	return &ServiceDefinition{
		Key:             env.Key,
		Name:            env.Name,
		Summary:         env.Summary,
		Category:        env.Category,
		Aliases:         env.Aliases,
		Description:     description,
		DescriptionHTML: html.String(),
	}, nil
}

// normalizeEnvelope decodes the raw frontmatter and slugs the key and
// aliases, so documents may carry display names ("Roof Repair") and still
// validate against the slug pattern.
func normalizeEnvelope(raw map[string]any, file string) (*definitionEnvelope, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, file, err)
	}
	var env definitionEnvelope
	if err := json.Unmarshal(encoded, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, file, err)
	}

	if env.Key == "" {
		env.Key = env.Name
	}
	key, err := routing.NormalizeSlug(env.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: key: %v", ErrInvalidDocument, file, err)
	}
	env.Key = key

	aliases := make([]string, 0, len(env.Aliases))
	for _, alias := range env.Aliases {
		normalized, err := routing.NormalizeSlug(alias)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: alias %q: %v", ErrInvalidDocument, file, alias, err)
		}
		if normalized != env.Key {
			aliases = append(aliases, normalized)
		}
	}
	env.Aliases = aliases
	return &env, nil
}

func validateEnvelope(env *definitionEnvelope, file string) error {
	encoded, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, file, err)
	}
	var doc any
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, file, err)
	}
	if err := compiledDefinitionSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, file, err)
	}
	return nil
}
