package pages

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/domain"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	records  map[uuid.UUID]*Page
	keyIndex map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory page repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records:  make(map[uuid.UUID]*Page),
		keyIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied page.
func (m *MemoryRepository) Create(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.keyIndex[record.DocKey]; exists {
		return nil, ErrDocKeyExists
	}
	copied := clonePage(record)
	m.records[copied.ID] = copied
	m.keyIndex[copied.DocKey] = copied.ID
	return clonePage(copied), nil
}

// Update replaces the stored page with the supplied record.
func (m *MemoryRepository) Update(_ context.Context, record *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: record.ID.String()}
	}
	delete(m.keyIndex, existing.DocKey)
	copied := clonePage(record)
	m.records[copied.ID] = copied
	m.keyIndex[copied.DocKey] = copied.ID
	return clonePage(copied), nil
}

// GetByID retrieves a page by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: id.String()}
	}
	return clonePage(rec), nil
}

// GetByDocKey retrieves a page by its opaque storage key.
func (m *MemoryRepository) GetByDocKey(_ context.Context, key string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.keyIndex[key]
	if !ok {
		return nil, &NotFoundError{Resource: "page", Key: key}
	}
	return clonePage(m.records[id]), nil
}

// FindByLocationAndService matches route-shaped lookups. When the lookup
// names a place it must match exactly; a zip lookup without a place covers
// every record whose canonical form is the zip route, so a stored city slug
// does not discriminate there. Neighborhood records never answer the zip
// route because their canonical form narrows to the neighborhood path.
// Ties resolve to the lowest doc key so lookups stay deterministic.
func (m *MemoryRepository) FindByLocationAndService(_ context.Context, loc Location, serviceKey string) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *Page
	for _, rec := range m.records {
		if rec.CountySlug != loc.CountySlug || rec.Zip != loc.Zip || rec.ServiceKey != serviceKey {
			continue
		}
		if !matchesPlace(rec, loc) {
			continue
		}
		if found == nil || rec.DocKey < found.DocKey {
			found = rec
		}
	}
	if found == nil {
		return nil, &NotFoundError{Resource: "page", Key: loc.CountySlug + "/" + loc.Zip + "/" + loc.PlaceSlug + "/" + serviceKey}
	}
	return clonePage(found), nil
}

func matchesPlace(rec *Page, loc Location) bool {
	if loc.PlaceSlug != "" {
		return rec.PlaceSlug == loc.PlaceSlug && rec.PlaceKind == loc.PlaceKind
	}
	if loc.Zip != "" {
		return rec.PlaceSlug == "" || rec.PlaceKind != PlaceKindNeighborhood
	}
	return rec.PlaceSlug == ""
}

// CountPublished returns the size of the published set.
func (m *MemoryRepository) CountPublished(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, rec := range m.records {
		if rec.Status == string(domain.StatusPublished) {
			count++
		}
	}
	return count, nil
}

// ListPublishedWindow returns published pages ordered by doc_key ascending.
func (m *MemoryRepository) ListPublishedWindow(_ context.Context, offset, limit int) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	published := make([]*Page, 0, len(m.records))
	for _, rec := range m.records {
		if rec.Status == string(domain.StatusPublished) {
			published = append(published, rec)
		}
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].DocKey < published[j].DocKey
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(published) {
		return nil, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(published) {
		end = len(published)
	}

	out := make([]*Page, 0, end-offset)
	for _, rec := range published[offset:end] {
		out = append(out, clonePage(rec))
	}
	return out, nil
}

// ListKeyset pages through all records ordered by (updated_at DESC, doc_key ASC).
func (m *MemoryRepository) ListKeyset(_ context.Context, after *CursorKey, limit int) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*Page, 0, len(m.records))
	for _, rec := range m.records {
		all = append(all, rec)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].UpdatedAt.After(all[j].UpdatedAt)
		}
		return all[i].DocKey < all[j].DocKey
	})

	start := 0
	if after != nil {
		ts, err := after.UpdatedAt()
		if err != nil {
			return nil, err
		}
		for i, rec := range all {
			if rec.UpdatedAt.Before(ts) || (rec.UpdatedAt.Equal(ts) && rec.DocKey > after.DocKey) {
				start = i
				break
			}
			start = len(all)
		}
	}

	end := len(all)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	out := make([]*Page, 0, end-start)
	for _, rec := range all[start:end] {
		out = append(out, clonePage(rec))
	}
	return out, nil
}

func clonePage(src *Page) *Page {
	if src == nil {
		return nil
	}
	copied := *src
	if src.SlugPath != nil {
		path := *src.SlugPath
		copied.SlugPath = &path
	}
	if src.PublishedAt != nil {
		ts := *src.PublishedAt
		copied.PublishedAt = &ts
	}
	return &copied
}
