package pages

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// CursorKey is the composite keyset position for admin listing: the sort
// value (updated_at, RFC3339Nano) plus the doc key tiebreaker. Cursors are
// caller-opaque base64 JSON and round-trip exactly.
type CursorKey struct {
	SortValue string `json:"s"`
	DocKey    string `json:"k"`
}

// UpdatedAt parses the cursor's sort value.
func (k CursorKey) UpdatedAt() (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, k.SortValue)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrCursorInvalid, err)
	}
	return ts, nil
}

// CursorForPage produces the continuation key pointing just past the record.
func CursorForPage(p *Page) CursorKey {
	return CursorKey{
		SortValue: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		DocKey:    p.DocKey,
	}
}

// EncodeCursor serializes a keyset position into an opaque token.
func EncodeCursor(key CursorKey) string {
	raw, _ := json.Marshal(key)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses an opaque token back into a keyset position. Malformed
// tokens yield ErrCursorInvalid; an empty token means "from the start".
func DecodeCursor(token string) (*CursorKey, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCursorInvalid, err)
	}
	var key CursorKey
	if err := json.Unmarshal(raw, &key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCursorInvalid, err)
	}
	if key.SortValue == "" || key.DocKey == "" {
		return nil, ErrCursorInvalid
	}
	if _, err := key.UpdatedAt(); err != nil {
		return nil, err
	}
	return &key, nil
}

// ListOptions configures admin listing calls.
type ListOptions struct {
	Limit  int
	Cursor string
}

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return defaultListLimit
	}
	if o.Limit > maxListLimit {
		return maxListLimit
	}
	return o.Limit
}
