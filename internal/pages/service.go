package pages

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/domain"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/identity"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/routing"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// Service manages page records and resolves inbound routes against them.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	Update(ctx context.Context, req UpdatePageRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	List(ctx context.Context, opts ListOptions) (*PageList, error)
	Publish(ctx context.Context, req PublishPageRequest) (*Page, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*Page, error)
	Archive(ctx context.Context, id uuid.UUID) (*Page, error)
	ResolveRoute(ctx context.Context, path string) (*Resolution, error)
}

// CreatePageRequest captures the payload required to create a page record.
type CreatePageRequest struct {
	DocKey      string
	CountySlug  string
	PlaceSlug   string
	PlaceKind   PlaceKind
	Zip         string
	ServiceKey  string
	ServiceName string
	Status      string
	Title       string
	Body        string
}

// UpdatePageRequest captures the mutable fields of an existing page.
type UpdatePageRequest struct {
	ID          uuid.UUID
	PlaceSlug   *string
	PlaceKind   *PlaceKind
	Zip         *string
	ServiceKey  *string
	ServiceName *string
	Title       *string
	Body        *string
}

// PublishPageRequest publishes a page, optionally recording when.
type PublishPageRequest struct {
	ID          uuid.UUID
	PublishedAt *time.Time
}

// PageList is one window of the admin listing plus its continuation cursor.
type PageList struct {
	Pages      []*Page `json:"pages"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

// Resolution is the outcome of matching an inbound path: either a redirect or
// a published page plus its canonical path.
type Resolution struct {
	Match         routing.RouteMatch
	RedirectPath  string
	Page          *Page
	CanonicalPath string
}

// IsRedirect reports whether the caller must answer 301.
func (r *Resolution) IsRedirect() bool {
	return r != nil && r.RedirectPath != ""
}

type service struct {
	repo   Repository
	logger interfaces.Logger
	clock  func() time.Time
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger installs the module logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs a page service backed by the supplied repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreatePageRequest) (*Page, error) {
	if err := validateLocation(req.CountySlug, req.PlaceSlug, req.Zip, req.ServiceKey); err != nil {
		return nil, err
	}
	if !req.PlaceKind.IsValid() {
		return nil, ErrPlaceKindInvalid
	}

	status := domain.ParseStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrStatusInvalid
	}

	now := s.clock().UTC()
	record := &Page{
		ID:          identity.PageUUID(req.CountySlug, req.Zip, req.PlaceSlug, req.ServiceKey),
		DocKey:      strings.TrimSpace(req.DocKey),
		CountySlug:  req.CountySlug,
		PlaceSlug:   req.PlaceSlug,
		PlaceKind:   req.PlaceKind,
		Zip:         req.Zip,
		ServiceKey:  req.ServiceKey,
		ServiceName: req.ServiceName,
		Status:      string(status),
		Title:       req.Title,
		Body:        req.Body,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if record.DocKey == "" {
		record.DocKey = "pg-" + record.ID.String()
	}
	if record.PlaceSlug != "" && record.PlaceKind == "" {
		record.PlaceKind = PlaceKindCity
	}

	refreshSlugPath(record)

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page.created", "doc_key", created.DocKey, "status", created.Status)
	return created, nil
}

func (s *service) Update(ctx context.Context, req UpdatePageRequest) (*Page, error) {
	if req.ID == uuid.Nil {
		return nil, ErrPageIDRequired
	}
	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ServiceKey != nil && *req.ServiceKey != record.ServiceKey {
		// Changing the service key changes the canonical URL; a published page
		// must be unpublished first so the move is deliberate.
		if record.Status == string(domain.StatusPublished) {
			return nil, ErrServiceKeyImmutable
		}
		if !routing.IsValidSlug(*req.ServiceKey) {
			return nil, ErrServiceKeyInvalid
		}
		record.ServiceKey = *req.ServiceKey
	}
	if req.PlaceSlug != nil {
		if *req.PlaceSlug != "" && !routing.IsValidSlug(*req.PlaceSlug) {
			return nil, ErrPlaceInvalid
		}
		record.PlaceSlug = *req.PlaceSlug
	}
	if req.PlaceKind != nil {
		if !req.PlaceKind.IsValid() {
			return nil, ErrPlaceKindInvalid
		}
		record.PlaceKind = *req.PlaceKind
	}
	if req.Zip != nil {
		if *req.Zip != "" && !routing.IsValidZip(*req.Zip) {
			return nil, ErrZipInvalid
		}
		record.Zip = *req.Zip
	}
	if record.PlaceSlug == "" && record.Zip == "" {
		return nil, ErrLocationRequired
	}
	if req.ServiceName != nil {
		record.ServiceName = *req.ServiceName
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.Body != nil {
		record.Body = *req.Body
	}

	record.UpdatedAt = s.clock().UTC()
	refreshSlugPath(record)
	return s.repo.Update(ctx, record)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrPageIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, opts ListOptions) (*PageList, error) {
	after, err := DecodeCursor(opts.Cursor)
	if err != nil {
		return nil, err
	}
	limit := opts.limit()
	records, err := s.repo.ListKeyset(ctx, after, limit)
	if err != nil {
		return nil, err
	}

	list := &PageList{Pages: records}
	if len(records) == limit {
		list.NextCursor = EncodeCursor(CursorForPage(records[len(records)-1]))
	}
	return list, nil
}

func (s *service) Publish(ctx context.Context, req PublishPageRequest) (*Page, error) {
	record, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(record, domain.StatusPublished); err != nil {
		return nil, err
	}

	publishedAt := s.clock().UTC()
	if req.PublishedAt != nil {
		publishedAt = req.PublishedAt.UTC()
	}
	record.PublishedAt = &publishedAt
	refreshSlugPath(record)

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page.published", "doc_key", updated.DocKey, "slug_path", stringOrEmpty(updated.SlugPath))
	return updated, nil
}

func (s *service) Unpublish(ctx context.Context, id uuid.UUID) (*Page, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(record, domain.StatusDraft); err != nil {
		return nil, err
	}
	record.PublishedAt = nil
	return s.repo.Update(ctx, record)
}

func (s *service) Archive(ctx context.Context, id uuid.UUID) (*Page, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(record, domain.StatusArchived); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page.archived", "doc_key", updated.DocKey)
	return updated, nil
}

// ResolveRoute performs the full inbound pipeline: match the path, follow a
// legacy redirect, or look up the record and verify it is published. Every
// consuming path checks the published status here regardless of upstream
// filtering; unpublished content is indistinguishable from absent content.
func (s *service) ResolveRoute(ctx context.Context, path string) (*Resolution, error) {
	match, ok := routing.MatchPath(path)
	if !ok {
		return nil, &NotFoundError{Resource: "route", Key: path}
	}
	if match.IsRedirect() {
		return &Resolution{Match: match, RedirectPath: match.RedirectPath}, nil
	}

	var (
		record *Page
		err    error
	)
	if match.Scheme == routing.SchemeOpaqueID {
		record, err = s.repo.GetByDocKey(ctx, match.DocID)
	} else {
		record, err = s.repo.FindByLocationAndService(ctx, LocationFromRoute(match.Location), match.ServiceKey)
	}
	if err != nil {
		return nil, err
	}
	if record.Status != string(domain.StatusPublished) {
		return nil, &NotFoundError{Resource: "page", Key: path}
	}

	return &Resolution{
		Match:         match,
		Page:          record,
		CanonicalPath: CanonicalPathFor(record),
	}, nil
}

func (s *service) transition(record *Page, target domain.Status) error {
	current := domain.Status(record.Status)
	if !current.IsValid() {
		return ErrStatusInvalid
	}
	if !current.CanTransition(target) {
		return ErrStatusTransition
	}
	record.Status = string(target)
	record.UpdatedAt = s.clock().UTC()
	return nil
}

// refreshSlugPath recomputes the canonical path cache. The cache is never a
// source of truth: readers recompute through CanonicalPathFor and only fall
// back to the stored value when recomputation is impossible.
func refreshSlugPath(record *Page) {
	if path, ok := routing.CanonicalPath(record.Locator()); ok {
		record.SlugPath = &path
	}
}

// CanonicalPathFor recomputes the canonical path from location and service,
// falling back to the stored slug path only when it looks like a servable
// path (absolute, not a legacy doc id). An empty return means the record has
// no routable address yet.
func CanonicalPathFor(record *Page) string {
	if path, ok := routing.CanonicalPath(record.Locator()); ok {
		return path
	}
	if record.SlugPath != nil {
		cached := *record.SlugPath
		if strings.HasPrefix(cached, "/") && !strings.Contains(cached, "__") {
			return cached
		}
	}
	return ""
}

func validateLocation(county, place, zip, serviceKey string) error {
	if strings.TrimSpace(county) == "" {
		return ErrCountyRequired
	}
	if !routing.IsValidSlug(county) || routing.IsReservedTopSegment(county) {
		return ErrCountyInvalid
	}
	if place == "" && zip == "" {
		return ErrLocationRequired
	}
	if place != "" && !routing.IsValidSlug(place) {
		return ErrPlaceInvalid
	}
	if zip != "" && !routing.IsValidZip(zip) {
		return ErrZipInvalid
	}
	if serviceKey != "" && !routing.IsValidSlug(serviceKey) {
		return ErrServiceKeyInvalid
	}
	return nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
