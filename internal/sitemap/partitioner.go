package sitemap

import (
	"context"
	"errors"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

const (
	// ProtocolMaxURLs is the per-file URL ceiling imposed by the sitemap
	// protocol. Configured chunk sizes are clamped to it.
	ProtocolMaxURLs = 50_000

	defaultChunkSize = 5_000
)

// ErrShardOutOfRange is returned for negative shard indexes. Indexes past the
// end of the published set are not an error; they yield an empty shard.
var ErrShardOutOfRange = errors.New("sitemap: shard index out of range")

// Shard is one bounded partition of the published URL set. Shards are
// disjoint, collectively cover the published set, and are stable for a given
// set: the windowing order is doc_key ascending.
type Shard struct {
	Index   int
	Entries []Entry
}

// Partitioner slices the published page set into cap-bounded shards and
// expands it into the hierarchical single-file sitemap.
type Partitioner struct {
	repo   pages.Repository
	urls   *URLBuilder
	chunk  int
	logger interfaces.Logger
}

// Option configures the partitioner at construction time.
type Option func(*Partitioner)

// WithChunkSize sets the per-shard URL cap. Values above the protocol ceiling
// are clamped; zero or negative selects the default.
func WithChunkSize(n int) Option {
	return func(p *Partitioner) {
		p.chunk = n
	}
}

// WithLogger installs the module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Partitioner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPartitioner constructs a partitioner over the page repository.
func NewPartitioner(repo pages.Repository, urls *URLBuilder, opts ...Option) *Partitioner {
	p := &Partitioner{
		repo:   repo,
		urls:   urls,
		chunk:  defaultChunkSize,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.chunk = normalizeChunkSize(p.chunk)
	return p
}

// ShardCount computes how many shards cover a published set of the given
// size. The count is never zero: an empty set still publishes one empty
// shard so the index document stays well formed.
func ShardCount(totalPublished, chunkSize int) int {
	chunkSize = normalizeChunkSize(chunkSize)
	if totalPublished <= 0 {
		return 1
	}
	return (totalPublished + chunkSize - 1) / chunkSize
}

// CountShards queries the published total and derives the shard count. A
// failing count query degrades to a single shard instead of failing the
// whole index; a stale index is recoverable, a 5xx index is not.
func (p *Partitioner) CountShards(ctx context.Context) int {
	total, err := p.repo.CountPublished(ctx)
	if err != nil {
		p.logger.Warn("sitemap count query failed, degrading to one shard", "error", err)
		return 1
	}
	return ShardCount(total, p.chunk)
}

// BuildShard assembles the index-th shard: one offset window over the stable
// published order, each record mapped to its canonical URL. Records without
// a resolvable canonical path are skipped; they are mid-migration pages that
// will join the sitemap once their location data is complete.
func (p *Partitioner) BuildShard(ctx context.Context, index int) (*Shard, error) {
	if index < 0 {
		return nil, ErrShardOutOfRange
	}

	records, err := p.repo.ListPublishedWindow(ctx, index*p.chunk, p.chunk)
	if err != nil {
		return nil, err
	}

	shard := &Shard{Index: index, Entries: make([]Entry, 0, len(records))}
	skipped := 0
	for _, rec := range records {
		path := pages.CanonicalPathFor(rec)
		if path == "" {
			skipped++
			continue
		}
		shard.Entries = append(shard.Entries, Entry{
			URL:          p.urls.Page(path),
			LastModified: rec.UpdatedAt,
		})
	}
	if skipped > 0 {
		p.logger.Debug("skipped records without canonical path", "shard", index, "skipped", skipped)
	}
	return shard, nil
}

// ShardLocs returns the absolute location of every shard for the index
// document.
func (p *Partitioner) ShardLocs(ctx context.Context) ([]string, error) {
	count := p.CountShards(ctx)
	locs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		loc, err := p.urls.ShardLoc(i)
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

// Hierarchy walks the entire published set and expands it into hub and
// service URLs for the single-file sitemap. This path intentionally stays
// separate from BuildShard: shards carry one canonical URL per record, the
// hierarchy advertises every discoverable page above and beside them.
func (p *Partitioner) Hierarchy(ctx context.Context) ([]Entry, error) {
	var all []*pages.Page
	for offset := 0; ; offset += p.chunk {
		window, err := p.repo.ListPublishedWindow(ctx, offset, p.chunk)
		if err != nil {
			return nil, err
		}
		all = append(all, window...)
		if len(window) < p.chunk {
			break
		}
	}
	return BuildEntries(all, p.urls), nil
}

func normalizeChunkSize(n int) int {
	if n <= 0 {
		return defaultChunkSize
	}
	if n > ProtocolMaxURLs {
		return ProtocolMaxURLs
	}
	return n
}
