package pages

import (
	"errors"
	"fmt"
)

var (
	ErrCountyRequired       = errors.New("pages: county slug is required")
	ErrLocationRequired     = errors.New("pages: at least one of place slug or zip is required")
	ErrCountyInvalid        = errors.New("pages: county slug contains invalid characters")
	ErrPlaceInvalid         = errors.New("pages: place slug contains invalid characters")
	ErrPlaceKindInvalid     = errors.New("pages: place kind must be city or neighborhood")
	ErrZipInvalid           = errors.New("pages: zip must be exactly five digits")
	ErrServiceKeyInvalid    = errors.New("pages: service key contains invalid characters")
	ErrServiceKeyImmutable  = errors.New("pages: service key cannot change on a published page")
	ErrStatusInvalid        = errors.New("pages: unknown status")
	ErrStatusTransition     = errors.New("pages: status transition not allowed")
	ErrPageIDRequired       = errors.New("pages: page id required")
	ErrCursorInvalid        = errors.New("pages: list cursor is malformed")
	ErrStoreUnavailable     = errors.New("pages: document store unavailable")
	ErrDocKeyExists         = errors.New("pages: doc key already exists")
	ErrUnresolvableLocation = errors.New("pages: location cannot produce a canonical path")
)

// NotFoundError reports a missing or unpublished record. Route handlers map
// it to 404 without distinguishing the two cases, so draft existence never
// leaks.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err represents a missing record.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
