package domain

import "strings"

// Status represents lifecycle states for generated pages
type Status string

const (
	// StatusDraft indicates a page still under preparation
	StatusDraft Status = "draft"
	// StatusReview marks a page awaiting QA sign-off before publication
	StatusReview Status = "review"
	// StatusPublished identifies a page that is externally routable
	StatusPublished Status = "published"
	// StatusArchived marks a page retained for history but not publicly visible
	StatusArchived Status = "archived"
)

// ParseStatus coerces arbitrary status strings into a known state, defaulting
// to draft for empty input. Unknown values are returned trimmed and lowercased
// so callers can reject them explicitly.
func ParseStatus(input string) Status {
	if strings.TrimSpace(input) == "" {
		return StatusDraft
	}
	return Status(strings.ToLower(strings.TrimSpace(input)))
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// CanTransition reports whether a page may move from its current status to the
// target status. Pages enter as drafts, pass through optional review, publish,
// and may be archived once published. Archived pages can be restored to draft.
func (s Status) CanTransition(target Status) bool {
	if s == target {
		return false
	}
	switch target {
	case StatusReview:
		return s == StatusDraft
	case StatusPublished:
		return s == StatusDraft || s == StatusReview
	case StatusDraft:
		return s == StatusReview || s == StatusArchived || s == StatusPublished
	case StatusArchived:
		return s == StatusPublished
	default:
		return false
	}
}
