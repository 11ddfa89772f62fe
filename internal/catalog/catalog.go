package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrServiceUnknown  = errors.New("catalog: service not found")
	ErrDuplicateKey    = errors.New("catalog: duplicate service key")
	ErrDuplicateAlias  = errors.New("catalog: duplicate service alias")
	ErrCatalogEmpty    = errors.New("catalog: no service definitions loaded")
	ErrInvalidDocument = errors.New("catalog: invalid service document")
)

// ServiceDefinition describes one offered service. Key is the canonical slug
// used in URL paths; aliases are alternative slugs that resolve to the same
// definition during imports and admin input.
type ServiceDefinition struct {
	Key             string
	Name            string
	Summary         string
	Category        string
	Aliases         []string
	Description     string
	DescriptionHTML string
}

// Catalog is the immutable set of service definitions a site offers. Built
// once at startup by the Loader and shared read-only across requests.
type Catalog struct {
	byKey   map[string]*ServiceDefinition
	byAlias map[string]string
}

func newCatalog() *Catalog {
	return &Catalog{
		byKey:   make(map[string]*ServiceDefinition),
		byAlias: make(map[string]string),
	}
}

func (c *Catalog) add(def *ServiceDefinition) error {
	if _, exists := c.byKey[def.Key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, def.Key)
	}
	c.byKey[def.Key] = def
	for _, alias := range def.Aliases {
		if owner, exists := c.byAlias[alias]; exists && owner != def.Key {
			return fmt.Errorf("%w: %s claimed by %s and %s", ErrDuplicateAlias, alias, owner, def.Key)
		}
		if _, shadow := c.byKey[alias]; shadow && alias != def.Key {
			return fmt.Errorf("%w: %s shadows a service key", ErrDuplicateAlias, alias)
		}
		c.byAlias[alias] = def.Key
	}
	return nil
}

// Get returns the definition for a canonical key.
func (c *Catalog) Get(key string) (*ServiceDefinition, error) {
	if def, ok := c.byKey[key]; ok {
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrServiceUnknown, key)
}

// Resolve returns the definition for a key or any of its aliases.
func (c *Catalog) Resolve(keyOrAlias string) (*ServiceDefinition, error) {
	keyOrAlias = strings.TrimSpace(strings.ToLower(keyOrAlias))
	if def, ok := c.byKey[keyOrAlias]; ok {
		return def, nil
	}
	if key, ok := c.byAlias[keyOrAlias]; ok {
		return c.byKey[key], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrServiceUnknown, keyOrAlias)
}

// Has reports whether the key names a known service.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Keys returns all canonical service keys, sorted.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.byKey))
	for key := range c.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns how many services the catalog holds.
func (c *Catalog) Len() int {
	return len(c.byKey)
}
