package pages

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the document-store contract the routing and sitemap cores
// depend on. Implementations must keep ListPublishedWindow ordered by doc_key
// ascending: sitemap shard boundaries depend on that order being total and
// stable between calls.
type Repository interface {
	Create(ctx context.Context, record *Page) (*Page, error)
	Update(ctx context.Context, record *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	GetByDocKey(ctx context.Context, key string) (*Page, error)

	// FindByLocationAndService matches on exact field equality, empty meaning
	// absent. Status is NOT filtered here; consuming code paths check the
	// published status explicitly.
	FindByLocationAndService(ctx context.Context, loc Location, serviceKey string) (*Page, error)

	// CountPublished returns the size of the published set.
	CountPublished(ctx context.Context) (int, error)

	// ListPublishedWindow returns published records ordered by doc_key ASC,
	// skipping offset and returning at most limit records.
	ListPublishedWindow(ctx context.Context, offset, limit int) ([]*Page, error)

	// ListKeyset pages through all records ordered by (updated_at DESC,
	// doc_key ASC) resuming after the supplied key, for admin listing views.
	ListKeyset(ctx context.Context, after *CursorKey, limit int) ([]*Page, error)
}
