package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDDeterministic(t *testing.T) {
	a := UUID("seo:page:la:91306:winnetka:roof-repair")
	b := UUID("seo:page:la:91306:winnetka:roof-repair")
	if a != b {
		t.Fatalf("expected identical UUIDs, got %s and %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("expected non-nil UUID")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("expected nil UUID for blank key, got %s", got)
	}
}

func TestPageUUIDDistinguishesFields(t *testing.T) {
	base := PageUUID("la", "91306", "winnetka", "roof-repair")
	if base == PageUUID("la", "91306", "winnetka", "siding") {
		t.Fatal("different services must produce different ids")
	}
	if base == PageUUID("la", "91307", "winnetka", "roof-repair") {
		t.Fatal("different zips must produce different ids")
	}
	if base != PageUUID("la", "91306", "winnetka", "roof-repair") {
		t.Fatal("identical inputs must reuse the same id")
	}
}

func TestServiceUUIDNormalizesCase(t *testing.T) {
	if ServiceUUID("Roof-Repair") != ServiceUUID("roof-repair") {
		t.Fatal("service ids are case-insensitive on the key")
	}
}
