package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PageUUID derives the stable identifier for a generated page. Regenerating
// the same county/zip/place/service combination must reuse the same storage
// key so republishing never duplicates records.
func PageUUID(countySlug, zip, placeSlug, serviceKey string) uuid.UUID {
	parts := []string{
		strings.TrimSpace(countySlug),
		strings.TrimSpace(zip),
		strings.TrimSpace(placeSlug),
		strings.TrimSpace(serviceKey),
	}
	return UUID("seo:page:" + strings.Join(parts, ":"))
}

// ServiceUUID derives the stable identifier for a catalog service.
func ServiceUUID(serviceKey string) uuid.UUID {
	return UUID("seo:service:" + strings.ToLower(strings.TrimSpace(serviceKey)))
}
