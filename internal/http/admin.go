package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/catalog"
	pagescmd "github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/commands/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/logging"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/internal/pages"
	"github.com/lookforpros2026-glitch/website-leads-project-sub001/pkg/interfaces"
)

// Admin actions checked against the installed Authorizer.
const (
	ActionPagesRead  = "pages:read"
	ActionPagesWrite = "pages:write"
)

// AdminAPI registers the management endpoints for page records. Lifecycle
// mutations run through the command layer so they share validation, timeout,
// and logging behaviour with any other dispatch path.
type AdminAPI struct {
	basePath   string
	pages      pages.Service
	catalog    *catalog.Catalog
	publish    *pagescmd.PublishPageHandler
	unpublish  *pagescmd.UnpublishPageHandler
	archive    *pagescmd.ArchivePageHandler
	authorizer interfaces.Authorizer
	logger     interfaces.Logger
}

// AdminOption mutates the AdminAPI configuration.
type AdminOption func(*AdminAPI)

// NewAdminAPI constructs an AdminAPI instance.
func NewAdminAPI(service pages.Service, opts ...AdminOption) *AdminAPI {
	api := &AdminAPI{
		basePath:   "/admin/api",
		pages:      service,
		authorizer: interfaces.AllowAll(),
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	if api.publish == nil {
		api.publish = pagescmd.NewPublishPageHandler(service, api.logger)
	}
	if api.unpublish == nil {
		api.unpublish = pagescmd.NewUnpublishPageHandler(service, api.logger)
	}
	if api.archive == nil {
		api.archive = pagescmd.NewArchivePageHandler(service, api.logger)
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/admin/api").
func WithBasePath(path string) AdminOption {
	return func(api *AdminAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithAuthorizer installs the request gate for admin actions.
func WithAuthorizer(authorizer interfaces.Authorizer) AdminOption {
	return func(api *AdminAPI) {
		if authorizer != nil {
			api.authorizer = authorizer
		}
	}
}

// WithAdminLogger installs the module logger.
func WithAdminLogger(logger interfaces.Logger) AdminOption {
	return func(api *AdminAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// WithPublishHandler overrides the publish command handler.
func WithPublishHandler(h *pagescmd.PublishPageHandler) AdminOption {
	return func(api *AdminAPI) {
		api.publish = h
	}
}

// WithUnpublishHandler overrides the unpublish command handler.
func WithUnpublishHandler(h *pagescmd.UnpublishPageHandler) AdminOption {
	return func(api *AdminAPI) {
		api.unpublish = h
	}
}

// WithArchiveHandler overrides the archive command handler.
func WithArchiveHandler(h *pagescmd.ArchivePageHandler) AdminOption {
	return func(api *AdminAPI) {
		api.archive = h
	}
}

// WithServiceCatalog installs the service catalog. When present, create and
// update payloads must name a known service; aliases resolve to the canonical
// key and the display name fills in from the definition when omitted.
func WithServiceCatalog(cat *catalog.Catalog) AdminOption {
	return func(api *AdminAPI) {
		api.catalog = cat
	}
}

// Register mounts the admin endpoints.
func (api *AdminAPI) Register(mux *http.ServeMux) {
	if api == nil || mux == nil {
		return
	}
	root := joinPath(api.basePath, "pages")
	mux.HandleFunc("GET "+root, api.handlePageList)
	mux.HandleFunc("POST "+root, api.handlePageCreate)
	mux.HandleFunc("GET "+root+"/{id}", api.handlePageGet)
	mux.HandleFunc("PUT "+root+"/{id}", api.handlePageUpdate)
	mux.HandleFunc("POST "+root+"/{id}/publish", api.handlePagePublish)
	mux.HandleFunc("POST "+root+"/{id}/unpublish", api.handlePageUnpublish)
	mux.HandleFunc("POST "+root+"/{id}/archive", api.handlePageArchive)
}

type pageCreatePayload struct {
	DocKey      string `json:"doc_key,omitempty"`
	CountySlug  string `json:"county_slug"`
	PlaceSlug   string `json:"place_slug,omitempty"`
	PlaceKind   string `json:"place_kind,omitempty"`
	Zip         string `json:"zip,omitempty"`
	ServiceKey  string `json:"service_key,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
	Status      string `json:"status,omitempty"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"body,omitempty"`
}

type pageUpdatePayload struct {
	PlaceSlug   *string `json:"place_slug,omitempty"`
	PlaceKind   *string `json:"place_kind,omitempty"`
	Zip         *string `json:"zip,omitempty"`
	ServiceKey  *string `json:"service_key,omitempty"`
	ServiceName *string `json:"service_name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Body        *string `json:"body,omitempty"`
}

type publishPayload struct {
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func (api *AdminAPI) handlePageList(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesRead) {
		return
	}

	opts := pages.ListOptions{Cursor: strings.TrimSpace(r.URL.Query().Get("cursor"))}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "limit must be a non-negative integer"})
			return
		}
		opts.Limit = limit
	}

	list, err := api.pages.List(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *AdminAPI) handlePageCreate(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesWrite) {
		return
	}

	var payload pageCreatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	if api.catalog != nil && payload.ServiceKey != "" {
		def, err := api.catalog.Resolve(payload.ServiceKey)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "unknown service " + payload.ServiceKey})
			return
		}
		payload.ServiceKey = def.Key
		if payload.ServiceName == "" {
			payload.ServiceName = def.Name
		}
	}

	page, err := api.pages.Create(r.Context(), pages.CreatePageRequest{
		DocKey:      payload.DocKey,
		CountySlug:  payload.CountySlug,
		PlaceSlug:   payload.PlaceSlug,
		PlaceKind:   pages.PlaceKind(payload.PlaceKind),
		Zip:         payload.Zip,
		ServiceKey:  payload.ServiceKey,
		ServiceName: payload.ServiceName,
		Status:      payload.Status,
		Title:       payload.Title,
		Body:        payload.Body,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

func (api *AdminAPI) handlePageGet(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesRead) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid page id"})
		return
	}
	page, err := api.pages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (api *AdminAPI) handlePageUpdate(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesWrite) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid page id"})
		return
	}

	var payload pageUpdatePayload
	if err := decodeJSON(r, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
		return
	}

	if api.catalog != nil && payload.ServiceKey != nil && *payload.ServiceKey != "" {
		def, err := api.catalog.Resolve(*payload.ServiceKey)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "unknown service " + *payload.ServiceKey})
			return
		}
		payload.ServiceKey = &def.Key
		if payload.ServiceName == nil {
			payload.ServiceName = &def.Name
		}
	}

	req := pages.UpdatePageRequest{
		ID:          id,
		PlaceSlug:   payload.PlaceSlug,
		Zip:         payload.Zip,
		ServiceKey:  payload.ServiceKey,
		ServiceName: payload.ServiceName,
		Title:       payload.Title,
		Body:        payload.Body,
	}
	if payload.PlaceKind != nil {
		kind := pages.PlaceKind(*payload.PlaceKind)
		req.PlaceKind = &kind
	}

	page, err := api.pages.Update(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (api *AdminAPI) handlePagePublish(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesWrite) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid page id"})
		return
	}

	var payload publishPayload
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &payload); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid JSON payload"})
			return
		}
	}

	if err := api.publish.Execute(r.Context(), pagescmd.PublishPageCommand{
		PageID:      id,
		PublishedAt: payload.PublishedAt,
	}); err != nil {
		writeError(w, err)
		return
	}
	api.respondWithPage(w, r, id)
}

func (api *AdminAPI) handlePageUnpublish(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesWrite) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid page id"})
		return
	}
	if err := api.unpublish.Execute(r.Context(), pagescmd.UnpublishPageCommand{PageID: id}); err != nil {
		writeError(w, err)
		return
	}
	api.respondWithPage(w, r, id)
}

func (api *AdminAPI) handlePageArchive(w http.ResponseWriter, r *http.Request) {
	if !api.allow(w, r, ActionPagesWrite) {
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid page id"})
		return
	}
	if err := api.archive.Execute(r.Context(), pagescmd.ArchivePageCommand{PageID: id}); err != nil {
		writeError(w, err)
		return
	}
	api.respondWithPage(w, r, id)
}

func (api *AdminAPI) respondWithPage(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	page, err := api.pages.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (api *AdminAPI) allow(w http.ResponseWriter, r *http.Request, action string) bool {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return false
	}
	if api.authorizer != nil && !api.authorizer.Allow(r, action) {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
		return false
	}
	return true
}
