package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursorRoundTrip(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	page := &Page{DocKey: "pg-abc", UpdatedAt: updated}

	encoded := EncodeCursor(CursorForPage(page))
	if encoded == "" {
		t.Fatal("empty cursor")
	}

	decoded, err := DecodeCursor(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.DocKey != "pg-abc" {
		t.Fatalf("doc key %q", decoded.DocKey)
	}
	ts, err := decoded.UpdatedAt()
	if err != nil {
		t.Fatalf("timestamp: %v", err)
	}
	if !ts.Equal(updated) {
		t.Fatalf("timestamp %s, want %s", ts, updated)
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	decoded, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("empty cursor must be accepted: %v", err)
	}
	if decoded != nil {
		t.Fatal("empty cursor decodes to nil")
	}
}

func TestDecodeCursorMalformed(t *testing.T) {
	for _, raw := range []string{"%%%", "bm90LWpzb24"} {
		if _, err := DecodeCursor(raw); !errors.Is(err, ErrCursorInvalid) {
			t.Fatalf("%q: got %v, want ErrCursorInvalid", raw, err)
		}
	}
}

func TestListOptionsLimitBounds(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, defaultListLimit},
		{-3, defaultListLimit},
		{25, 25},
		{maxListLimit + 1, maxListLimit},
	}
	for _, tc := range cases {
		if got := (ListOptions{Limit: tc.in}).limit(); got != tc.want {
			t.Fatalf("limit(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMemoryListKeysetOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Two records share an updated_at so the doc key tiebreak is exercised.
	seed := []struct {
		key    string
		offset time.Duration
	}{
		{"pg-a", 2 * time.Hour},
		{"pg-b", time.Hour},
		{"pg-c", time.Hour},
		{"pg-d", 0},
	}
	for _, s := range seed {
		_, err := repo.Create(ctx, &Page{
			ID:        uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.key)),
			DocKey:    s.key,
			UpdatedAt: base.Add(s.offset),
		})
		if err != nil {
			t.Fatalf("seed %s: %v", s.key, err)
		}
	}

	var got []string
	var after *CursorKey
	for {
		window, err := repo.ListKeyset(ctx, after, 2)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(window) == 0 {
			break
		}
		for _, p := range window {
			got = append(got, p.DocKey)
		}
		cur := CursorForPage(window[len(window)-1])
		after = &cur
	}

	want := []string{"pg-a", "pg-b", "pg-c", "pg-d"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMemoryListPublishedWindow(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for i, key := range []string{"pg-c", "pg-a", "pg-b", "pg-draft"} {
		status := "published"
		if key == "pg-draft" {
			status = "draft"
		}
		_, err := repo.Create(ctx, &Page{
			ID:     uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)),
			DocKey: key,
			Status: status,
			UpdatedAt: time.Date(2026, 3, 1, i, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}

	total, err := repo.CountPublished(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 3 {
		t.Fatalf("count = %d, want 3", total)
	}

	window, err := repo.ListPublishedWindow(ctx, 1, 2)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if len(window) != 2 || window[0].DocKey != "pg-b" || window[1].DocKey != "pg-c" {
		keys := make([]string, 0, len(window))
		for _, p := range window {
			keys = append(keys, p.DocKey)
		}
		t.Fatalf("window keys %v, want [pg-b pg-c]", keys)
	}
}
