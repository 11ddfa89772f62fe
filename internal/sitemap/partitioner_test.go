package sitemap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
)

func testURLBuilder(t *testing.T) *URLBuilder {
	t.Helper()
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{RoutesConfig("https://example.com")},
	})
	builder, err := NewURLBuilder("https://example.com", manager)
	if err != nil {
		t.Fatalf("url builder: %v", err)
	}
	return builder
}

func seedPublished(t *testing.T, repo *pages.MemoryRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("pg-%05d", i)
		_, err := repo.Create(ctx, &pages.Page{
			ID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)),
			DocKey:     key,
			CountySlug: "la",
			Zip:        fmt.Sprintf("9%04d", i),
			ServiceKey: "roof-repair",
			Status:     "published",
			UpdatedAt:  time.Date(2026, 3, 1, 0, 0, i, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}
}

func TestShardCount(t *testing.T) {
	cases := []struct {
		total, chunk, want int
	}{
		{0, 5000, 1},
		{1, 5000, 1},
		{5000, 5000, 1},
		{5001, 5000, 2},
		{12345, 5000, 3},
		{100_000, 50_000, 2},
		{200_000, 999_999, 4}, // chunk clamps to the protocol ceiling
		{10, 0, 1},
	}
	for _, tc := range cases {
		if got := ShardCount(tc.total, tc.chunk); got != tc.want {
			t.Fatalf("ShardCount(%d, %d) = %d, want %d", tc.total, tc.chunk, got, tc.want)
		}
	}
}

func TestBuildShardWindows(t *testing.T) {
	repo := pages.NewMemoryRepository()
	seedPublished(t, repo, 5)
	p := NewPartitioner(repo, testURLBuilder(t), WithChunkSize(2))
	ctx := context.Background()

	if got := p.CountShards(ctx); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}

	seen := map[string]int{}
	for i := 0; i < 3; i++ {
		shard, err := p.BuildShard(ctx, i)
		if err != nil {
			t.Fatalf("shard %d: %v", i, err)
		}
		if i < 2 && len(shard.Entries) != 2 {
			t.Fatalf("shard %d has %d entries", i, len(shard.Entries))
		}
		for _, e := range shard.Entries {
			seen[e.URL]++
			if !strings.HasPrefix(e.URL, "https://example.com/la/") {
				t.Fatalf("unexpected loc %q", e.URL)
			}
			if e.LastModified.IsZero() {
				t.Fatalf("missing lastmod for %q", e.URL)
			}
		}
	}
	if len(seen) != 5 {
		t.Fatalf("covered %d urls, want 5", len(seen))
	}
	for url, n := range seen {
		if n != 1 {
			t.Fatalf("%q appeared in %d shards", url, n)
		}
	}

	// Past the end is an empty shard, not an error.
	tail, err := p.BuildShard(ctx, 9)
	if err != nil {
		t.Fatalf("tail shard: %v", err)
	}
	if len(tail.Entries) != 0 {
		t.Fatalf("tail shard has %d entries", len(tail.Entries))
	}

	if _, err := p.BuildShard(ctx, -1); !errors.Is(err, ErrShardOutOfRange) {
		t.Fatalf("negative index: got %v", err)
	}
}

func TestBuildShardIsReproducible(t *testing.T) {
	repo := pages.NewMemoryRepository()
	seedPublished(t, repo, 7)
	p := NewPartitioner(repo, testURLBuilder(t), WithChunkSize(3))
	ctx := context.Background()

	first, err := p.BuildShard(ctx, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := p.BuildShard(ctx, 1)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(first.Entries) != len(second.Entries) {
		t.Fatalf("entry counts differ: %d vs %d", len(first.Entries), len(second.Entries))
	}
	for i := range first.Entries {
		if first.Entries[i] != second.Entries[i] {
			t.Fatalf("entry %d differs: %+v vs %+v", i, first.Entries[i], second.Entries[i])
		}
	}
}

func TestBuildShardSkipsUnresolvableRecords(t *testing.T) {
	repo := pages.NewMemoryRepository()
	ctx := context.Background()
	// No county, no cached path: unresolvable, silently excluded.
	_, err := repo.Create(ctx, &pages.Page{
		ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte("pg-broken")),
		DocKey:    "pg-broken",
		Zip:       "91306",
		Status:    "published",
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	seedPublished(t, repo, 1)

	p := NewPartitioner(repo, testURLBuilder(t))
	shard, err := p.BuildShard(ctx, 0)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(shard.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(shard.Entries))
	}
}

type failingCountRepo struct {
	*pages.MemoryRepository
}

func (f failingCountRepo) CountPublished(context.Context) (int, error) {
	return 0, errors.New("store down")
}

func TestCountShardsDegradesToOne(t *testing.T) {
	repo := failingCountRepo{pages.NewMemoryRepository()}
	p := NewPartitioner(repo, testURLBuilder(t), WithChunkSize(10))
	if got := p.CountShards(context.Background()); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
}

func TestShardLocs(t *testing.T) {
	repo := pages.NewMemoryRepository()
	seedPublished(t, repo, 5)
	p := NewPartitioner(repo, testURLBuilder(t), WithChunkSize(2))

	locs, err := p.ShardLocs(context.Background())
	if err != nil {
		t.Fatalf("locs: %v", err)
	}
	want := []string{
		"https://example.com/sitemaps/0",
		"https://example.com/sitemaps/1",
		"https://example.com/sitemaps/2",
	}
	if len(locs) != len(want) {
		t.Fatalf("got %v, want %v", locs, want)
	}
	for i := range want {
		if locs[i] != want[i] {
			t.Fatalf("loc %d = %q, want %q", i, locs[i], want[i])
		}
	}
}
