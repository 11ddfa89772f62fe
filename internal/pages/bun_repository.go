package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewPageRepository builds the generic bun repository handlers for pages.
// DocKey is the secondary identifier so opaque-id lookups hit the unique index.
func NewPageRepository(db *bun.DB) repository.Repository[*Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Page]{
		NewRecord: func() *Page { return &Page{} },
		GetID: func(p *Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "doc_key"
		},
		GetIdentifierValue: func(p *Page) string {
			return p.DocKey
		},
	})
}

// BunRepository stores pages in a bun-backed document table.
type BunRepository struct {
	repo repository.Repository[*Page]
	db   *bun.DB
}

// NewBunRepository constructs the repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache constructs the repository with an optional cache wrap.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewPageRepository(db)
	wrapped := base
	if cacheService != nil && keySerializer != nil {
		wrapped = repositorycache.New(base, cacheService, keySerializer)
	}
	return &BunRepository{repo: wrapped, db: db}
}

func (r *BunRepository) Create(ctx context.Context, record *Page) (*Page, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("page repository create: %w", err)
	}
	return created, nil
}

func (r *BunRepository) Update(ctx context.Context, record *Page) (*Page, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"doc_key",
			"county_slug",
			"place_slug",
			"place_kind",
			"zip",
			"service_key",
			"service_name",
			"status",
			"slug_path",
			"title",
			"body",
			"published_at",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page", record.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Page, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "page", id.String())
	}
	return result, nil
}

func (r *BunRepository) GetByDocKey(ctx context.Context, key string) (*Page, error) {
	result, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, "page", key)
	}
	return result, nil
}

func (r *BunRepository) FindByLocationAndService(ctx context.Context, loc Location, serviceKey string) (*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Where("?TableAlias.county_slug = ?", loc.CountySlug).
				Where("?TableAlias.zip = ?", loc.Zip).
				Where("?TableAlias.service_key = ?", serviceKey)
			switch {
			case loc.PlaceSlug != "":
				q = q.Where("?TableAlias.place_slug = ?", loc.PlaceSlug).
					Where("?TableAlias.place_kind = ?", string(loc.PlaceKind))
			case loc.Zip != "":
				// A stored city slug does not narrow the zip route; only
				// neighborhood records canonicalize away from it.
				q = q.Where("(?TableAlias.place_slug = '' OR ?TableAlias.place_kind != ?)", string(PlaceKindNeighborhood))
			default:
				q = q.Where("?TableAlias.place_slug = ''")
			}
			return q.Order("doc_key ASC")
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page", loc.CountySlug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "page", Key: loc.CountySlug + "/" + loc.Zip + "/" + loc.PlaceSlug + "/" + serviceKey}
	}
	return records[0], nil
}

func (r *BunRepository) CountPublished(ctx context.Context) (int, error) {
	if r.db == nil {
		return 0, fmt.Errorf("page repository: database not configured")
	}
	count, err := r.db.NewSelect().
		Model((*Page)(nil)).
		Where("?TableAlias.status = ?", "published").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count published pages: %w", err)
	}
	return count, nil
}

func (r *BunRepository) ListPublishedWindow(ctx context.Context, offset, limit int) ([]*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.status = ?", "published").
				Order("doc_key ASC")
		}),
		repository.SelectPaginate(limit, offset),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page", "")
	}
	return records, nil
}

func (r *BunRepository) ListKeyset(ctx context.Context, after *CursorKey, limit int) ([]*Page, error) {
	var cursorTime *time.Time
	if after != nil {
		ts, err := after.UpdatedAt()
		if err != nil {
			return nil, err
		}
		cursorTime = &ts
	}

	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			q = q.Order("updated_at DESC").Order("doc_key ASC")
			if cursorTime != nil {
				q = q.Where("(?TableAlias.updated_at < ?) OR (?TableAlias.updated_at = ? AND ?TableAlias.doc_key > ?)",
					*cursorTime, *cursorTime, after.DocKey)
			}
			return q
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "page", "")
	}
	return records, nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) || errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
